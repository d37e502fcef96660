package market

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type StoreSuite struct {
	suite.Suite
	ctx context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *StoreSuite) writeSeed(body string) string {
	path := filepath.Join(s.T().TempDir(), "seed.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *StoreSuite) TestMemStoreDemoCatalog() {
	m, err := BuildMarket(s.ctx, NewStore())
	s.Require().NoError(err)

	s.Len(m.Wines(), 3)
	s.Len(m.Beers(), 3)
	s.True(m.HasDrinkWithTitle("Beer black alco 0%"))
	s.False(m.HasDrinkWithTitle("Beer alco"))
}

func (s *StoreSuite) TestMemStorePut() {
	st := NewMemStore()
	s.Require().NoError(st.Put(CategoryBeer, "Stout", "2024-11-11"))
	s.Require().NoError(st.Put(CategoryWine, "", ""))
	s.ErrorIs(st.Put(CategoryWine, "Bad", "11/11/2024"), ErrInvalidDateFormat)

	wines, beers, err := st.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(wines, 1)
	s.Require().Len(beers, 1)
	s.Equal(TitleNotSpecified, wines[0].Title)
	s.Equal("Stout", beers[0].Title)
	s.NoError(st.Ping(s.ctx))
}

func (s *StoreSuite) TestFileStoreLoad() {
	path := s.writeSeed(`
wines:
  - title: Red
    production_date: "2025-01-01"
  - title: ""
beers:
  - title: Red
    production_date: "2025-05-05"
  - title: Lager
`)
	st := NewFileStore(path)
	s.Require().NoError(st.Ping(s.ctx))

	m, err := BuildMarket(s.ctx, st)
	s.Require().NoError(err)

	s.Equal([]string{"Lager", "Red", TitleNotSpecified}, m.DrinksSortedByTitle())

	red, ok := m.Lookup("Red")
	s.Require().True(ok)
	s.Equal(CategoryBeer, red.Category)
	s.Equal("2025-05-05", red.ProductionDate.String())

	lager, ok := m.Lookup("Lager")
	s.Require().True(ok)
	s.False(lager.ProductionDate.IsSpecified())
}

func (s *StoreSuite) TestFileStoreRejectsBadDate() {
	path := s.writeSeed(`
beers:
  - title: Ok
    production_date: "2025-01-01"
  - title: Broken
    production_date: "2025.01.02"
`)
	_, err := BuildMarket(s.ctx, NewFileStore(path))
	s.Require().Error(err)
	s.ErrorIs(err, ErrInvalidDateFormat)
	s.Contains(err.Error(), "beer #2")
}

func (s *StoreSuite) TestFileStoreMissingFile() {
	st := NewFileStore(filepath.Join(s.T().TempDir(), "nope.yaml"))

	s.Error(st.Ping(s.ctx))
	_, _, err := st.Load(s.ctx)
	s.ErrorIs(err, os.ErrNotExist)
}

func (s *StoreSuite) TestParseSeedRejectsMalformedYAML() {
	_, _, err := ParseSeed([]byte("wines: [title: :"))
	s.Error(err)
}

type fakeRow struct {
	title    sql.NullString
	category string
	produced sql.NullTime
	err      error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*sql.NullString) = r.title
	*dest[1].(*string) = r.category
	*dest[2].(*sql.NullTime) = r.produced
	return nil
}

func (s *StoreSuite) TestScanDrink() {
	day := time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)

	d, err := scanDrink(fakeRow{
		title:    sql.NullString{String: "White", Valid: true},
		category: "wine",
		produced: sql.NullTime{Time: day, Valid: true},
	})
	s.Require().NoError(err)
	s.Equal("Wine(title='White', production_date='2025-02-02')", d.String())

	d, err = scanDrink(fakeRow{category: "beer"})
	s.Require().NoError(err)
	s.Equal(TitleNotSpecified, d.Title)
	s.False(d.ProductionDate.IsSpecified())

	_, err = scanDrink(fakeRow{title: sql.NullString{String: "Cider", Valid: true}, category: "cider"})
	s.ErrorIs(err, ErrUnknownCategory)

	boom := errors.New("boom")
	_, err = scanDrink(fakeRow{err: boom})
	s.ErrorIs(err, boom)
}

type failingStore struct{ err error }

func (f failingStore) Ping(context.Context) error { return f.err }

func (f failingStore) Load(context.Context) ([]Drink, []Drink, error) { return nil, nil, f.err }

func (s *StoreSuite) TestBuildMarketWrapsLoadError() {
	boom := errors.New("connection refused")
	_, err := BuildMarket(s.ctx, failingStore{err: boom})
	s.ErrorIs(err, boom)
	s.Contains(err.Error(), "load drinks")
}

package market

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type seedEntry struct {
	Title          string `yaml:"title"`
	ProductionDate string `yaml:"production_date"`
}

type seedFile struct {
	Wines []seedEntry `yaml:"wines"`
	Beers []seedEntry `yaml:"beers"`
}

// FileStore reads drinks from a YAML seed file on every Load.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Ping(ctx context.Context) error {
	_, err := os.Stat(s.path)
	return err
}

func (s *FileStore) Load(ctx context.Context) ([]Drink, []Drink, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil, err
	}
	return ParseSeed(raw)
}

// ParseSeed decodes a YAML seed document into wines and beers.
func ParseSeed(raw []byte) ([]Drink, []Drink, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, nil, fmt.Errorf("decode seed: %w", err)
	}

	wines, err := seedDrinks(CategoryWine, f.Wines)
	if err != nil {
		return nil, nil, err
	}
	beers, err := seedDrinks(CategoryBeer, f.Beers)
	if err != nil {
		return nil, nil, err
	}
	return wines, beers, nil
}

func seedDrinks(c Category, entries []seedEntry) ([]Drink, error) {
	out := make([]Drink, 0, len(entries))
	for i, e := range entries {
		d, err := NewDrink(c, e.Title, e.ProductionDate)
		if err != nil {
			return nil, fmt.Errorf("%s #%d: %w", c, i+1, err)
		}
		out = append(out, d)
	}
	return out, nil
}

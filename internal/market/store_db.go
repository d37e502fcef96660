package market

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// OpenPostgres opens a pgx-backed database/sql pool for dsn.
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) Load(ctx context.Context) ([]Drink, []Drink, error) {
	var drinks []Drink

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT title, category, production_date
			FROM drinks
			ORDER BY id ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		drinks = make([]Drink, 0, 16)
		for rows.Next() {
			d, err := scanDrink(rows)
			if err != nil {
				return err
			}
			drinks = append(drinks, d)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, nil, err
	}

	wines, beers := split(drinks)
	return wines, beers, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDrink(r rowScanner) (Drink, error) {
	var (
		title    sql.NullString
		category string
		produced sql.NullTime
	)
	if err := r.Scan(&title, &category, &produced); err != nil {
		return Drink{}, err
	}

	var date string
	if produced.Valid {
		date = produced.Time.Format(DateLayout)
	}

	d, err := NewDrink(Category(category), title.String, date)
	if err != nil {
		return Drink{}, fmt.Errorf("drink row %q: %w", title.String, err)
	}
	return d, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}

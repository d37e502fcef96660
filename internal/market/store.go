package market

import (
	"context"
	"fmt"
)

type Store interface {
	Ping(ctx context.Context) error
	Load(ctx context.Context) (wines, beers []Drink, err error)
}

// BuildMarket loads both collections from s and indexes them.
func BuildMarket(ctx context.Context, s Store) (*Market, error) {
	wines, beers, err := s.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load drinks: %w", err)
	}
	return NewMarket(wines, beers), nil
}

// split routes drinks into wines and beers, preserving order.
func split(drinks []Drink) (wines, beers []Drink) {
	for _, d := range drinks {
		switch d.Category {
		case CategoryWine:
			wines = append(wines, d)
		case CategoryBeer:
			beers = append(beers, d)
		}
	}
	return wines, beers
}

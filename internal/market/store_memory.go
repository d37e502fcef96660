package market

import (
	"context"
	"sync"
)

type MemStore struct {
	mu     sync.RWMutex
	drinks []Drink
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

// NewStore returns a memory store holding the demo catalog.
func NewStore() *MemStore {
	s := NewMemStore()
	for _, e := range demoCatalog {
		// demo entries are valid by construction
		_ = s.Put(e.category, e.title, e.date)
	}
	return s
}

var demoCatalog = []struct {
	category    Category
	title, date string
}{
	{CategoryWine, "Red alco 0%", "2025-01-01"},
	{CategoryWine, "White alco 0%", "2025-02-02"},
	{CategoryWine, "Blue alco 0%", "2025-03-03"},
	{CategoryBeer, "Beer black alco 0%", "2025-01-01"},
	{CategoryBeer, "Beer purple alco 0%", "2025-02-02"},
	{CategoryBeer, "Beer green alco 0%", "2025-03-03"},
}

func (s *MemStore) Put(category Category, title, productionDate string) error {
	d, err := NewDrink(category, title, productionDate)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drinks = append(s.drinks, d)
	return nil
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Load(ctx context.Context) ([]Drink, []Drink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wines, beers := split(s.drinks)
	return wines, beers, nil
}

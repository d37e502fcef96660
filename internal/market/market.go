package market

import (
	"sort"
	"time"
)

type DatedDrink struct {
	Title          string `json:"title"`
	ProductionDate string `json:"production_date"`
}

// Market is a title-indexed catalog of wines and beers. It is built once and
// never mutated afterwards, so it is safe for concurrent reads.
type Market struct {
	wines []Drink
	beers []Drink

	drinks map[string]Drink
	// order holds titles in first-insertion order; an overwrite keeps the slot.
	order  []string
}

func NewMarket(wines, beers []Drink) *Market {
	m := &Market{
		wines:  append([]Drink{}, wines...),
		beers:  append([]Drink{}, beers...),
		drinks: make(map[string]Drink, len(wines)+len(beers)),
	}

	for _, w := range m.wines {
		m.put(w)
	}
	for _, b := range m.beers {
		m.put(b)
	}
	return m
}

func (m *Market) put(d Drink) {
	if _, ok := m.drinks[d.Title]; !ok {
		m.order = append(m.order, d.Title)
	}
	m.drinks[d.Title] = d
}

func (m *Market) Wines() []Drink { return append([]Drink{}, m.wines...) }

func (m *Market) Beers() []Drink { return append([]Drink{}, m.beers...) }

// Len returns the number of distinct titles.
func (m *Market) Len() int { return len(m.drinks) }

func (m *Market) HasDrinkWithTitle(title string) bool {
	_, ok := m.drinks[title]
	return ok
}

func (m *Market) Lookup(title string) (Drink, bool) {
	d, ok := m.drinks[title]
	return d, ok
}

func (m *Market) DrinksSortedByTitle() []string {
	out := make([]string, 0, len(m.drinks))
	for title := range m.drinks {
		out = append(out, title)
	}
	sort.Strings(out)
	return out
}

// DrinksByProductionDate returns drinks produced in [from, to], both given as
// YYYY-MM-DD, in catalog order. Drinks without a production date are skipped.
func (m *Market) DrinksByProductionDate(from, to string) ([]DatedDrink, error) {
	lo, hi, err := parseRange(from, to)
	if err != nil {
		return nil, err
	}

	out := make([]DatedDrink, 0)
	for _, title := range m.order {
		d := m.drinks[title]
		if !d.ProductionDate.Within(lo, hi) {
			continue
		}
		out = append(out, DatedDrink{Title: d.Title, ProductionDate: d.ProductionDate.String()})
	}
	return out, nil
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	if from == "" || to == "" {
		return time.Time{}, time.Time{}, ErrMissingRangeBound
	}

	lo, err := parseDay(from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	hi, err := parseDay(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if lo.After(hi) {
		return time.Time{}, time.Time{}, ErrInvertedRange
	}
	return lo, hi, nil
}

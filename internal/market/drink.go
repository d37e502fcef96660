package market

import "fmt"

type Category string

const (
	CategoryWine Category = "wine"
	CategoryBeer Category = "beer"
)

const TitleNotSpecified = "not specified"

func (c Category) Valid() bool {
	return c == CategoryWine || c == CategoryBeer
}

func (c Category) label() string {
	switch c {
	case CategoryWine:
		return "Wine"
	case CategoryBeer:
		return "Beer"
	default:
		return "Drink"
	}
}

type Drink struct {
	Title          string         `json:"title"`
	Category       Category       `json:"category"`
	ProductionDate ProductionDate `json:"production_date"`
}

// NewDrink builds a drink from raw input. An empty title falls back to
// TitleNotSpecified and an empty date leaves the production date unspecified.
func NewDrink(category Category, title, productionDate string) (Drink, error) {
	if !category.Valid() {
		return Drink{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	d := Drink{Title: title, Category: category}
	if d.Title == "" {
		d.Title = TitleNotSpecified
	}

	if productionDate != "" {
		pd, err := ParseProductionDate(productionDate)
		if err != nil {
			return Drink{}, err
		}
		d.ProductionDate = pd
	}
	return d, nil
}

func NewWine(title, productionDate string) (Drink, error) {
	return NewDrink(CategoryWine, title, productionDate)
}

func NewBeer(title, productionDate string) (Drink, error) {
	return NewDrink(CategoryBeer, title, productionDate)
}

func (d Drink) String() string {
	return fmt.Sprintf("%s(title='%s', production_date='%s')", d.Category.label(), d.Title, d.ProductionDate)
}

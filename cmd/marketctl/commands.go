package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"DrinkMarket/internal/market"
	"DrinkMarket/pkg/kit"
)

func loadMarket(cmd *cobra.Command) (*market.Market, error) {
	var store market.Store = market.NewStore()
	if seedPath != "" {
		store = market.NewFileStore(seedPath)
	}
	return market.BuildMarket(cmd.Context(), store)
}

func timer() *kit.Timer {
	return kit.NewTimer(logger, nil)
}

func runHas(cmd *cobra.Command, args []string) error {
	m, err := loadMarket(cmd)
	if err != nil {
		return err
	}

	ok, _ := kit.Time(timer(), "has_drink_with_title", func() (bool, error) {
		return m.HasDrinkWithTitle(args[0]), nil
	})
	fmt.Fprintln(cmd.OutOrStdout(), ok)
	return nil
}

func runSorted(cmd *cobra.Command, args []string) error {
	m, err := loadMarket(cmd)
	if err != nil {
		return err
	}

	titles, _ := kit.Time(timer(), "drinks_sorted_by_title", func() ([]string, error) {
		return m.DrinksSortedByTitle(), nil
	})
	for _, t := range titles {
		fmt.Fprintln(cmd.OutOrStdout(), t)
	}
	return nil
}

func runBetween(cmd *cobra.Command, args []string) error {
	m, err := loadMarket(cmd)
	if err != nil {
		return err
	}

	drinks, err := kit.Time(timer(), "drinks_by_production_date", func() ([]market.DatedDrink, error) {
		return m.DrinksByProductionDate(args[0], args[1])
	})
	if err != nil {
		return err
	}
	for _, d := range drinks {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", d.ProductionDate, d.Title)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	m, err := loadMarket(cmd)
	if err != nil {
		return err
	}

	for _, d := range m.Wines() {
		fmt.Fprintln(cmd.OutOrStdout(), d)
	}
	for _, d := range m.Beers() {
		fmt.Fprintln(cmd.OutOrStdout(), d)
	}
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	m, err := market.BuildMarket(cmd.Context(), market.NewStore())
	if err != nil {
		return err
	}
	t := timer()
	out := cmd.OutOrStdout()

	for _, title := range []string{"Beer black alco 0%", "Beer alco"} {
		ok, _ := kit.Time(t, "has_drink_with_title", func() (bool, error) {
			return m.HasDrinkWithTitle(title), nil
		})
		fmt.Fprintln(out, ok)
	}

	titles, _ := kit.Time(t, "drinks_sorted_by_title", func() ([]string, error) {
		return m.DrinksSortedByTitle(), nil
	})
	fmt.Fprintf(out, "[%s]\n", strings.Join(titles, ", "))

	dated, err := kit.Time(t, "drinks_by_production_date", func() ([]market.DatedDrink, error) {
		return m.DrinksByProductionDate("2025-02-02", "2025-03-03")
	})
	if err != nil {
		return err
	}
	parts := make([]string, 0, len(dated))
	for _, d := range dated {
		parts = append(parts, fmt.Sprintf("%s (%s)", d.Title, d.ProductionDate))
	}
	fmt.Fprintf(out, "[%s]\n", strings.Join(parts, ", "))

	samples := []struct{ title, date string }{
		{"", ""},
		{"Dragon 0%", "2025-01-11"},
		{"", "2025-01-11"},
	}
	for _, s := range samples {
		d, err := market.NewBeer(s.title, s.date)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, d)
	}
	return nil
}

package market

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"DrinkMarket/pkg/kit"
)

const readyTimeout = 1 * time.Second

type Server struct {
	Market *Market
	Store  Store
	Log    *zap.Logger
	Timer  *kit.Timer

	// SnapshotID identifies the catalog build being served.
	SnapshotID string
}

type snapshotResp struct {
	SnapshotID     string  `json:"snapshot_id"`
	DistinctTitles int     `json:"distinct_titles"`
	Wines          []Drink `json:"wines"`
	Beers          []Drink `json:"beers"`
}

type existsResp struct {
	Title  string `json:"title"`
	Exists bool   `json:"exists"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.readyz)

	r.Get("/market", s.snapshot)

	r.Route("/drinks", func(rr chi.Router) {
		rr.Get("/", s.sorted)
		rr.Get("/exists", s.exists)
		rr.Get("/by-production-date", s.byProductionDate)
		rr.Get("/{title}", s.get)
	})

	return r
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		if s.Log != nil {
			s.Log.Warn("readyz failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) snapshot(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, snapshotResp{
		SnapshotID:     s.SnapshotID,
		DistinctTitles: s.Market.Len(),
		Wines:          s.Market.Wines(),
		Beers:          s.Market.Beers(),
	})
}

func (s *Server) sorted(w http.ResponseWriter, _ *http.Request) {
	titles, _ := kit.Time(s.Timer, "drinks_sorted_by_title", func() ([]string, error) {
		return s.Market.DrinksSortedByTitle(), nil
	})
	kit.WriteJSON(w, http.StatusOK, titles)
}

func (s *Server) exists(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")

	ok, _ := kit.Time(s.Timer, "has_drink_with_title", func() (bool, error) {
		return s.Market.HasDrinkWithTitle(title), nil
	})
	kit.WriteJSON(w, http.StatusOK, existsResp{Title: title, Exists: ok})
}

func (s *Server) byProductionDate(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	drinks, err := kit.Time(s.Timer, "drinks_by_production_date", func() ([]DatedDrink, error) {
		return s.Market.DrinksByProductionDate(from, to)
	})
	if err != nil {
		if errors.Is(err, ErrValidation) {
			kit.WriteError(w, r, http.StatusBadRequest, err.Error(), map[string]any{"from": from, "to": to})
			return
		}
		if s.Log != nil {
			s.Log.Error("drinks by production date failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, drinks)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	d, ok := s.Market.Lookup(title)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"title": title})
		return
	}
	kit.WriteJSON(w, http.StatusOK, d)
}

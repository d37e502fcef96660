package market

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	unspecifiedDate = "unspecified"
)

// ProductionDate is either a calendar day or unspecified. The zero value is
// unspecified.
type ProductionDate struct {
	t   time.Time
	set bool
}

func ParseProductionDate(s string) (ProductionDate, error) {
	t, err := parseDay(s)
	if err != nil {
		return ProductionDate{}, err
	}
	return ProductionDate{t: t, set: true}, nil
}

func parseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return t, nil
}

func (d ProductionDate) IsSpecified() bool { return d.set }

func (d ProductionDate) Time() (time.Time, bool) { return d.t, d.set }

// Within reports whether d is a real date in [from, to].
func (d ProductionDate) Within(from, to time.Time) bool {
	if !d.set {
		return false
	}
	return !d.t.Before(from) && !d.t.After(to)
}

func (d ProductionDate) String() string {
	if !d.set {
		return unspecifiedDate
	}
	return d.t.Format(DateLayout)
}

func (d ProductionDate) MarshalJSON() ([]byte, error) {
	if !d.set {
		return []byte("null"), nil
	}
	return json.Marshal(d.t.Format(DateLayout))
}

func (d *ProductionDate) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		*d = ProductionDate{}
		return nil
	}
	pd, err := ParseProductionDate(*s)
	if err != nil {
		return err
	}
	*d = pd
	return nil
}

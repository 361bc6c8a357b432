package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Unit is the suffix carried by stored weight/rep values.
type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitReps     Unit = "回"
)

// Measure is a numeric value with its display unit. Stored records carry
// these as single strings ("60kg", "10回"), so JSON round-trips that form.
type Measure struct {
	Value float64
	Unit  Unit
}

// String renders the legacy string form, e.g. "1.25kg" or "10回".
func (m Measure) String() string {
	return strconv.FormatFloat(m.Value, 'f', -1, 64) + string(m.Unit)
}

// ParseMeasure parses a legacy measure string. A bare number is accepted and
// gets the fallback unit, so editing never corrupts a stored value.
func ParseMeasure(s string, fallback Unit) (Measure, error) {
	s = strings.TrimSpace(s)
	unit := fallback
	for _, u := range []Unit{UnitKilogram, UnitReps} {
		if strings.HasSuffix(s, string(u)) {
			unit = u
			s = strings.TrimSuffix(s, string(u))
			break
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Measure{}, fmt.Errorf("parsing measure %q: %w", s, err)
	}
	return Measure{Value: v, Unit: unit}, nil
}

// MarshalJSON emits the legacy string form.
func (m Measure) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts the legacy string form or a bare JSON number.
// The unit defaults to kg when absent; callers that know better (reps)
// normalize afterwards.
func (m *Measure) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var v float64
		if numErr := json.Unmarshal(data, &v); numErr == nil {
			m.Value = v
			m.Unit = UnitKilogram
			return nil
		}
		return err
	}
	parsed, err := ParseMeasure(s, UnitKilogram)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

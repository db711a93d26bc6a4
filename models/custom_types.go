package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// naiveTimeLayout renders registry timestamps without a zone designator.
const naiveTimeLayout = "2006-01-02T15:04:05"

// NaiveTime is a registry timestamp that carries no timezone. It marshals as
// "2006-01-02T15:04:05" rather than RFC 3339 so clients don't read UTC into it.
type NaiveTime time.Time

// NewNaiveTime converts an optional timestamp; nil stays nil.
func NewNaiveTime(t *time.Time) *NaiveTime {
	if t == nil {
		return nil
	}
	n := NaiveTime(*t)
	return &n
}

func (t NaiveTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(naiveTimeLayout))
}

func (t *NaiveTime) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := time.Parse(naiveTimeLayout, str)
	if err != nil {
		return fmt.Errorf("naive time %q: %w", str, err)
	}
	*t = NaiveTime(parsed)
	return nil
}

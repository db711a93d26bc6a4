package whois

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// naiveLayout is the strict dialect: an ISO date-time with no offset.
// time.Parse also accepts fractional seconds after the seconds field.
const naiveLayout = "2006-01-02T15:04:05"

var (
	ErrUnknownMonth  = errors.New("unknown month name")
	ErrMalformedDate = errors.New("malformed month-name date")
)

// DateError is returned by Parse when a month-name date cannot be read.
// Key is the normalized key of the offending line.
type DateError struct {
	Key   string
	Value string
	Err   error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("whois: invalid %s date %q: %v", e.Key, e.Value, e.Err)
}

func (e *DateError) Unwrap() error {
	return e.Err
}

var months = map[string]string{
	"January":   "01",
	"February":  "02",
	"March":     "03",
	"April":     "04",
	"May":       "05",
	"June":      "06",
	"July":      "07",
	"August":    "08",
	"September": "09",
	"October":   "10",
	"November":  "11",
	"December":  "12",
}

// parseNaive reads the strict dialect.
func parseNaive(value string) (time.Time, bool) {
	t, err := time.Parse(naiveLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// monthNameToISO rewrites "January 5 2020" as "2020-01-05T00:00:00".
func monthNameToISO(value string) (string, error) {
	fields := strings.Fields(value)
	if len(fields) != 3 {
		return "", ErrMalformedDate
	}

	month, ok := months[fields[0]]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMonth, fields[0])
	}

	return fmt.Sprintf("%s-%s-%sT00:00:00", fields[2], month, zeroPad(fields[1])), nil
}

func zeroPad(day string) string {
	if len(day) >= 2 {
		return day
	}
	return strings.Repeat("0", 2-len(day)) + day
}

// strictDate overwrites the slot when the value parses and keeps the
// previous value otherwise.
func strictDate(s slot) update {
	return func(b *builder, value string) error {
		if t, ok := parseNaive(value); ok {
			*s(b) = &t
		}
		return nil
	}
}

// altDate reads the month-name dialect. A month outside the table, or a
// value that is not three fields, fails the whole parse. Once rewritten,
// the value goes through the strict dialect and its lenient policy.
func altDate(s slot) update {
	return func(b *builder, value string) error {
		iso, err := monthNameToISO(value)
		if err != nil {
			return &DateError{Value: value, Err: err}
		}
		if t, ok := parseNaive(iso); ok {
			*s(b) = &t
		}
		return nil
	}
}

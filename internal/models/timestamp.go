package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// ISOLayout is the wire format for every date in a thread view.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// Stored dates may come back as native timestamps or as text, depending on driver
// and column type.
var stringLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Timestamp holds either a native time or its textual form.
type Timestamp struct {
	t     time.Time
	s     string
	isStr bool
}

// TimeOf wraps a native time.
func TimeOf(t time.Time) Timestamp { return Timestamp{t: t} }

// StringOf wraps a textual date.
func StringOf(s string) Timestamp { return Timestamp{s: s, isStr: true} }

// Scan implements sql.Scanner.
func (ts *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts = TimeOf(v)
	case string:
		*ts = StringOf(v)
	case []byte:
		*ts = StringOf(string(v))
	case nil:
		*ts = Timestamp{}
	default:
		return fmt.Errorf("timestamp: unsupported source type %T", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (ts Timestamp) Value() (driver.Value, error) {
	if ts.isStr {
		return ts.s, nil
	}
	return ts.t, nil
}

// ErrMissingDate is returned when a row carries no date at all.
var ErrMissingDate = errors.New("timestamp: missing date")

// Time resolves the timestamp to a time.Time. A NULL column or an unset native
// time resolves to ErrMissingDate.
func (ts Timestamp) Time() (time.Time, error) {
	if !ts.isStr {
		if ts.t.IsZero() {
			return time.Time{}, ErrMissingDate
		}
		return ts.t, nil
	}
	if ts.s == "" {
		return time.Time{}, ErrMissingDate
	}
	for _, layout := range stringLayouts {
		if t, err := time.Parse(layout, ts.s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("timestamp: cannot parse %q", ts.s)
}

// NormalizeDate renders ts as a UTC ISO-8601 string with millisecond precision.
// Normalizing an already normalized string returns it unchanged.
func NormalizeDate(ts Timestamp) (string, error) {
	t, err := ts.Time()
	if err != nil {
		return "", err
	}
	return t.UTC().Format(ISOLayout), nil
}

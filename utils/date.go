package utils

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateOnly holds a calendar date with no time component. It is exchanged as
// "YYYY-MM-DD" in JSON and stored in a date column, so values round-trip
// through the API and the database without any timezone shift.
type DateOnly struct {
	time.Time
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	if string(data) == `null` {
		*d = DateOnly{time.Time{}}
		return nil
	}

	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	t, err := time.Parse(dateLayout, str)
	if err != nil {
		return fmt.Errorf("invalid date format: %s", str)
	}
	*d = DateOnly{t}
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d DateOnly) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time.Format(dateLayout), nil
}

func (d *DateOnly) Scan(value interface{}) error {
	if value == nil {
		*d = DateOnly{time.Time{}}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = DateOnly{v}
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return fmt.Errorf("cannot parse date string: %v", err)
		}
		*d = DateOnly{t}
		return nil
	case []byte:
		t, err := time.Parse(dateLayout, string(v))
		if err != nil {
			return fmt.Errorf("cannot parse date bytes: %v", err)
		}
		*d = DateOnly{t}
		return nil
	default:
		return fmt.Errorf("unsupported scan type for DateOnly: %T", value)
	}
}

// Equal reports exact calendar-date equality, ignoring any time-of-day or
// location the underlying time.Time may carry.
func (d DateOnly) Equal(other DateOnly) bool {
	y1, m1, day1 := d.Date()
	y2, m2, day2 := other.Date()
	return y1 == y2 && m1 == m2 && day1 == day2
}

func (d DateOnly) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

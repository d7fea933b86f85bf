package sqlstore

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// sqliteTimeLayout is fixed width so stored values compare correctly as text.
const sqliteTimeLayout = "2006-01-02 15:04:05.000000"

var parseTimeLayouts = []string{
	sqliteTimeLayout,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999 -0700 MST",
}

// dbTime scans timestamps from drivers that return either time.Time or text.
type dbTime struct {
	Time  time.Time
	Valid bool
}

func (t *dbTime) Scan(v any) error {
	switch x := v.(type) {
	case nil:
		t.Time, t.Valid = time.Time{}, false

		return nil
	case time.Time:
		t.Time, t.Valid = x.UTC(), true

		return nil
	case string:
		return t.parse(x)
	case []byte:
		return t.parse(string(x))
	default:
		return fmt.Errorf("sqlstore: cannot scan %T into timestamp", v)
	}
}

func (t *dbTime) parse(s string) error {
	for _, layout := range parseTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time, t.Valid = parsed.UTC(), true

			return nil
		}
	}

	return fmt.Errorf("sqlstore: unparseable timestamp %q", s)
}

func (t dbTime) ptr() *time.Time {
	if !t.Valid {
		return nil
	}

	v := t.Time

	return &v
}

// timeEncoder turns timestamps into driver arguments for one dialect.
type timeEncoder func(time.Time) driver.Value

func encodeNative(t time.Time) driver.Value {
	return t.UTC()
}

func encodeSQLiteText(t time.Time) driver.Value {
	return t.UTC().Format(sqliteTimeLayout)
}

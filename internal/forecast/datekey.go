package forecast

import (
	"fmt"
	"time"
)

// offsetWidth is the length of the trailing "+08:00" style offset.
const offsetWidth = 6

var localLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatError means an upstream timestamp did not have the expected
// "<local date-time><±hh:mm>" shape.
type FormatError struct {
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed timestamp %q", e.Value)
	}
	return fmt.Sprintf("malformed timestamp %q: %s", e.Value, e.Err.Error())
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// DateKey drops the offset suffix and returns the local calendar date as
// YYYY-MM-DD. It is the join key across all daily field lists.
func DateKey(ts string) (string, error) {
	if len(ts) <= offsetWidth {
		return "", &FormatError{Value: ts}
	}
	local := ts[:len(ts)-offsetWidth]

	var lastErr error
	for _, layout := range localLayouts {
		t, err := time.Parse(layout, local)
		if err == nil {
			return t.Format("2006-01-02"), nil
		}
		lastErr = err
	}
	return "", &FormatError{Value: ts, Err: lastErr}
}

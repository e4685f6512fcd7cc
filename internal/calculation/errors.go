package calculation

import (
	"errors"
	"fmt"
	"strings"
)

// Validation failures are local, user-recoverable conditions: the
// computation does not run and no partial result is produced. Nothing in
// the engines panics or returns a partial breakdown.

// ErrDeMinimisNotTested signals that a QFZP liability was requested before
// the de-minimis test was explicitly run.
var ErrDeMinimisNotTested = errors.New("run the de-minimis test before calculating the liability")

// ErrLastTransactionRow signals an attempt to remove the only remaining
// transaction row. At least one row must always exist.
var ErrLastTransactionRow = errors.New("at least one transaction row must remain")

// ErrNoExciseItems signals an excise computation requested with an empty
// item list.
var ErrNoExciseItems = errors.New("at least one excise item is required")

// MissingFieldsError lists required inputs that are still blank, by their
// human-readable labels.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// IsMissingFields reports whether err is a missing-fields validation
// failure and returns the field labels if so.
func IsMissingFields(err error) ([]string, bool) {
	var mfe *MissingFieldsError
	if errors.As(err, &mfe) {
		return mfe.Fields, true
	}
	return nil, false
}

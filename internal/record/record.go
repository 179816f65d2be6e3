package record

import (
	"errors"
	"math"
)

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidForm is returned when submitted record fields fail validation.
	ErrInvalidForm = errors.New("invalid record")
)

// Record is a user-saved row of the countries table. ID is assigned by the
// store.
type Record struct {
	ID             int64
	Country        string
	TotalConfirmed int64
	TotalDeaths    int64
	TotalRecovered int64
	Date           string
}

// NewRecord carries the user-supplied fields of a record to create. Counts
// must fit the INTEGER columns of the countries table.
type NewRecord struct {
	Country        string `validate:"required"`
	TotalConfirmed int64  `validate:"gte=0,lte=2147483647"`
	TotalDeaths    int64  `validate:"gte=0,lte=2147483647"`
	TotalRecovered int64  `validate:"gte=0,lte=2147483647"`
	Date           string `validate:"required"`
}

// inIDRange reports whether id fits the INTEGER id column. Larger values
// cannot name any row.
func inIDRange(id int64) bool {
	return id >= math.MinInt32 && id <= math.MaxInt32
}

package validators

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/Leerling-hub/Booking/repositories"
)

// ErrInvalidQuery is returned for unknown, repeated or mistyped query parameters
var ErrInvalidQuery = errors.New("Invalid query parameters")

// FilterKind says how a query parameter is compared
type FilterKind int

const (
	// TextContains matches rows whose column contains the value
	TextContains FilterKind = iota
	// IntegerEquals matches rows whose column equals the integer value
	IntegerEquals
)

// QueryFilter describes the single filter a list endpoint accepts
type QueryFilter struct {
	Param  string
	Column string
	Kind   FilterKind
}

// ParseQuery validates the query of a list request against filter.
// It returns a nil filter when the parameter is absent or empty.
func ParseQuery(values url.Values, filter QueryFilter) (*repositories.Filter, error) {
	for key := range values {
		if key != filter.Param {
			return nil, ErrInvalidQuery
		}
	}

	raw, ok := values[filter.Param]
	if !ok {
		return nil, nil
	}
	if len(raw) != 1 {
		return nil, ErrInvalidQuery
	}
	if raw[0] == "" {
		return nil, nil
	}

	switch filter.Kind {
	case IntegerEquals:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, ErrInvalidQuery
		}
		return &repositories.Filter{Column: filter.Column, Value: n}, nil
	default:
		return &repositories.Filter{Column: filter.Column, Value: raw[0], Contains: true}, nil
	}
}

package rest

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
)

// queryParser reads optional query parameters and collects every malformed
// one, so a request reports all of its bad parameters at once.
// Blank values count as absent.
type queryParser struct {
	values url.Values
	errs   []domain.FieldError
}

func newQueryParser(values url.Values) *queryParser {
	return &queryParser{values: values}
}

func (p *queryParser) raw(key string) (string, bool) {
	v := strings.TrimSpace(p.values.Get(key))
	return v, v != ""
}

func (p *queryParser) fail(key, message string) {
	p.errs = append(p.errs, domain.FieldError{Field: key, Message: message})
}

func (p *queryParser) String(key string) *string {
	v, ok := p.raw(key)
	if !ok {
		return nil
	}
	return &v
}

func (p *queryParser) Int(key string) *int {
	v, ok := p.raw(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, "must be an integer")
		return nil
	}
	return &n
}

func (p *queryParser) Int64(key string) *int64 {
	v, ok := p.raw(key)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		p.fail(key, "must be an integer")
		return nil
	}
	return &n
}

func (p *queryParser) Float(key string) *float64 {
	v, ok := p.raw(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		p.fail(key, "must be a number")
		return nil
	}
	return &f
}

// IntOr returns the parameter or def when it is absent or malformed.
func (p *queryParser) IntOr(key string, def int) int {
	if n := p.Int(key); n != nil {
		return *n
	}
	return def
}

// Err returns the collected errors as one ValidationError, or nil.
func (p *queryParser) Err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(p.errs)
}

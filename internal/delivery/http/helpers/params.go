package helpers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"eventlane/internal/domain"
)

// Pagination query parameter defaults.
const (
	DefaultFrom = 0
	DefaultSize = 10
)

// ParsePage reads from and size from the request query string. Missing values
// fall back to the defaults; a negative from or non-positive size is an error.
func ParsePage(r *http.Request) (domain.Page, error) {
	page := domain.Page{From: DefaultFrom, Size: DefaultSize}
	if s := r.URL.Query().Get("from"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return page, domain.BadRequestf("from must be an integer")
		}
		page.From = v
	}
	if s := r.URL.Query().Get("size"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return page, domain.BadRequestf("size must be an integer")
		}
		page.Size = v
	}
	if page.From < 0 {
		return page, domain.BadRequestf("from must not be negative")
	}
	if page.Size < 1 {
		return page, domain.BadRequestf("size must be positive")
	}
	return page, nil
}

// PathID parses the named path segment as an int64 id.
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, domain.BadRequestf("%s must be an integer", name)
	}
	return id, nil
}

// QueryInt64 parses an optional int64 query parameter. Returns 0 and false
// when the parameter is absent.
func QueryInt64(r *http.Request, name string) (int64, bool, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false, domain.BadRequestf("%s must be an integer", name)
	}
	return v, true, nil
}

// QueryInt64List parses a repeated or comma-separated int64 query parameter.
func QueryInt64List(r *http.Request, name string) ([]int64, error) {
	var out []int64
	for _, raw := range r.URL.Query()[name] {
		for _, s := range strings.Split(raw, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, domain.BadRequestf("%s must be a list of integers", name)
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// QueryBool parses an optional boolean query parameter. Returns nil when the
// parameter is absent.
func QueryBool(r *http.Request, name string) (*bool, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, domain.BadRequestf("%s must be a boolean", name)
	}
	return &v, nil
}

// QueryTime parses an optional timestamp query parameter in the wire format.
// Returns nil when the parameter is absent.
func QueryTime(r *http.Request, name string) (*time.Time, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	t, err := domain.ParseDateTime(s)
	if err != nil {
		return nil, domain.BadRequestf("%s must match the %s format", name, domain.DateTimeLayout)
	}
	return &t, nil
}

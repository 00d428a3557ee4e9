package pagination

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"article_cms/internal/domain"
)

type Operator string

const (
	Eq Operator = "$eq"
	In Operator = "$in"
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

type SortBy struct {
	Field     string
	Direction Direction
}

// Filter is one filter.<field> parameter. Raw keeps the value as received so
// links can reproduce it.
type Filter struct {
	Field    string
	Operator Operator
	Values   []string
	Raw      string
}

// Query is the parsed list request. Zero Page and Limit mean "not given".
// Extra holds the remaining parameters, such as status, so links keep them.
type Query struct {
	Path    string
	Page    int
	Limit   int
	SortBy  []SortBy
	Search  string
	Filters []Filter
	Extra   url.Values
}

func (q Query) HasFilter(field string) bool {
	for _, f := range q.Filters {
		if f.Field == field {
			return true
		}
	}
	return false
}

func badQuery(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrBadQuery, fmt.Sprintf(format, args...))
}

const filterPrefix = "filter."

func isPaginateKey(key string) bool {
	switch key {
	case "page", "limit", "sortBy", "search":
		return true
	}
	return strings.HasPrefix(key, filterPrefix)
}

// ParseQuery reads page, limit, sortBy, search and filter.* from a query
// string. Unrelated parameters are kept in Extra untouched.
func ParseQuery(path string, values url.Values) (Query, error) {
	q := Query{Path: path}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return Query{}, badQuery("page must be an integer >= 1, got %q", raw)
		}
		q.Page = page
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return Query{}, badQuery("limit must be an integer >= 1, got %q", raw)
		}
		q.Limit = limit
	}

	for _, raw := range values["sortBy"] {
		idx := strings.LastIndex(raw, ":")
		if idx <= 0 {
			return Query{}, badQuery("sortBy must be field:ASC|DESC, got %q", raw)
		}
		dir := Direction(strings.ToUpper(raw[idx+1:]))
		if dir != Asc && dir != Desc {
			return Query{}, badQuery("sort direction must be ASC or DESC, got %q", raw[idx+1:])
		}
		q.SortBy = append(q.SortBy, SortBy{Field: raw[:idx], Direction: dir})
	}

	q.Search = strings.TrimSpace(values.Get("search"))

	keys := make([]string, 0)
	for key, vals := range values {
		if strings.HasPrefix(key, filterPrefix) {
			keys = append(keys, key)
			continue
		}
		if !isPaginateKey(key) {
			if q.Extra == nil {
				q.Extra = url.Values{}
			}
			q.Extra[key] = append([]string(nil), vals...)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		field := strings.TrimPrefix(key, filterPrefix)
		if field == "" {
			return Query{}, badQuery("empty filter field")
		}
		for _, raw := range values[key] {
			f, err := parseFilter(field, raw)
			if err != nil {
				return Query{}, err
			}
			q.Filters = append(q.Filters, f)
		}
	}

	return q, nil
}

func parseFilter(field, raw string) (Filter, error) {
	if !strings.HasPrefix(raw, "$") {
		return Filter{Field: field, Operator: Eq, Values: []string{raw}, Raw: raw}, nil
	}

	op, value, _ := strings.Cut(raw, ":")
	switch Operator(op) {
	case Eq:
		return Filter{Field: field, Operator: Eq, Values: []string{value}, Raw: raw}, nil
	case In:
		return Filter{Field: field, Operator: In, Values: strings.Split(value, ","), Raw: raw}, nil
	}
	return Filter{}, badQuery("unsupported filter operator %q on %q", op, field)
}

package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

type Meta struct {
	ItemsPerPage int                 `json:"itemsPerPage"`
	TotalItems   int                 `json:"totalItems"`
	CurrentPage  int                 `json:"currentPage"`
	TotalPages   int                 `json:"totalPages"`
	SortBy       [][2]string         `json:"sortBy"`
	SearchBy     []string            `json:"searchBy,omitempty"`
	Search       string              `json:"search,omitempty"`
	Filter       map[string][]string `json:"filter,omitempty"`
}

type Links struct {
	First    string `json:"first,omitempty"`
	Previous string `json:"previous,omitempty"`
	Current  string `json:"current"`
	Next     string `json:"next,omitempty"`
	Last     string `json:"last,omitempty"`
}

type Paginated[T any] struct {
	Data  []T   `json:"data"`
	Meta  Meta  `json:"meta"`
	Links Links `json:"links"`
}

// NewPaginated assembles a page response for a plan that matched total rows.
func NewPaginated[T any](plan *Plan, total int, data []T) *Paginated[T] {
	if data == nil {
		data = []T{}
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + plan.limit - 1) / plan.limit
	}

	meta := Meta{
		ItemsPerPage: plan.limit,
		TotalItems:   total,
		CurrentPage:  plan.page,
		TotalPages:   totalPages,
		SortBy:       make([][2]string, 0, len(plan.sortBy)),
		SearchBy:     plan.searchBy,
		Search:       plan.query.Search,
	}
	for _, s := range plan.sortBy {
		meta.SortBy = append(meta.SortBy, [2]string{s.Field, string(s.Direction)})
	}
	if len(plan.query.Filters) > 0 {
		meta.Filter = make(map[string][]string)
		for _, f := range plan.query.Filters {
			meta.Filter[f.Field] = append(meta.Filter[f.Field], f.Raw)
		}
	}

	return &Paginated[T]{
		Data:  data,
		Meta:  meta,
		Links: buildLinks(plan, totalPages, total),
	}
}

func buildLinks(plan *Plan, totalPages, total int) Links {
	page := plan.page
	links := Links{Current: linkFor(plan, page)}
	if page != 1 {
		links.First = linkFor(plan, 1)
	}
	if page-1 >= 1 {
		links.Previous = linkFor(plan, page-1)
	}
	if page < totalPages {
		links.Next = linkFor(plan, page+1)
	}
	if page != totalPages && total > 0 {
		links.Last = linkFor(plan, totalPages)
	}
	return links
}

func linkFor(plan *Plan, page int) string {
	var b strings.Builder
	b.WriteString(plan.query.Path)
	b.WriteString("?page=")
	b.WriteString(strconv.Itoa(page))
	b.WriteString("&limit=")
	b.WriteString(strconv.Itoa(plan.limit))
	for _, s := range plan.sortBy {
		b.WriteString("&sortBy=")
		b.WriteString(url.QueryEscape(s.Field))
		b.WriteString(":")
		b.WriteString(string(s.Direction))
	}
	if plan.query.Search != "" {
		b.WriteString("&search=")
		b.WriteString(url.QueryEscape(plan.query.Search))
	}
	for _, f := range plan.query.Filters {
		b.WriteString("&filter.")
		b.WriteString(url.QueryEscape(f.Field))
		b.WriteString("=")
		b.WriteString(url.QueryEscape(f.Raw))
	}
	if len(plan.query.Extra) > 0 {
		b.WriteString("&")
		b.WriteString(plan.query.Extra.Encode())
	}
	return b.String()
}

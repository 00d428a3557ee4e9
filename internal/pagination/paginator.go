package pagination

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

type Config struct {
	Entity            *Entity
	SortableColumns   []string
	DefaultSortBy     []SortBy
	SearchableColumns []string
	FilterableColumns map[string][]Operator
	DefaultLimit      int
	MaxLimit          int
}

// Paginator validates list queries against a Config and turns them into SQL.
// Every dot path in the Config is resolved once, in New.
type Paginator struct {
	cfg        Config
	sortable   map[string]column
	searchable []column
	filterable map[string]column
	primaryKey string
}

func New(cfg Config) (*Paginator, error) {
	if cfg.Entity == nil {
		return nil, fmt.Errorf("paginator: entity is required")
	}
	if cfg.DefaultLimit < 1 {
		cfg.DefaultLimit = 20
	}
	if cfg.MaxLimit < cfg.DefaultLimit {
		cfg.MaxLimit = cfg.DefaultLimit
	}

	p := &Paginator{
		cfg:        cfg,
		sortable:   make(map[string]column),
		filterable: make(map[string]column),
		primaryKey: qualify(cfg.Entity.Table, cfg.Entity.PrimaryKey),
	}

	for _, path := range cfg.SortableColumns {
		col, err := cfg.Entity.resolve(path)
		if err != nil {
			return nil, fmt.Errorf("paginator: sortable: %w", err)
		}
		p.sortable[path] = col
	}
	for _, s := range cfg.DefaultSortBy {
		if _, ok := p.sortable[s.Field]; !ok {
			return nil, fmt.Errorf("paginator: default sort %q is not sortable", s.Field)
		}
	}
	for _, path := range cfg.SearchableColumns {
		col, err := cfg.Entity.resolve(path)
		if err != nil {
			return nil, fmt.Errorf("paginator: searchable: %w", err)
		}
		p.searchable = append(p.searchable, col)
	}
	for path := range cfg.FilterableColumns {
		col, err := cfg.Entity.resolve(path)
		if err != nil {
			return nil, fmt.Errorf("paginator: filterable: %w", err)
		}
		p.filterable[path] = col
	}

	return p, nil
}

// Predicate is an extra condition ANDed into the WHERE clause.
type Predicate struct {
	relation string
	negate   bool
}

// Exists keeps rows that have at least one row in the given to-many relation.
func Exists(relation string) Predicate {
	return Predicate{relation: relation}
}

// NotExists keeps rows with no row in the given to-many relation.
func NotExists(relation string) Predicate {
	return Predicate{relation: relation, negate: true}
}

// Plan validates q and builds the count and page queries.
func (p *Paginator) Plan(q Query, extra ...Predicate) (*Plan, error) {
	plan := &Plan{
		query: q,
		page:  q.Page,
		limit: q.Limit,
	}
	if plan.page == 0 {
		plan.page = 1
	}
	if plan.limit == 0 {
		plan.limit = p.cfg.DefaultLimit
	}
	if plan.limit > p.cfg.MaxLimit {
		plan.limit = p.cfg.MaxLimit
	}

	var joins joinSet
	var conds []string
	var args []any

	plan.sortBy = q.SortBy
	if len(plan.sortBy) == 0 {
		plan.sortBy = p.cfg.DefaultSortBy
	}
	order := make([]string, 0, len(plan.sortBy)+1)
	for _, s := range plan.sortBy {
		col, ok := p.sortable[s.Field]
		if !ok {
			return nil, badQuery("field %q is not sortable", s.Field)
		}
		joins.add(col.joins)
		order = append(order, col.expr+" "+string(s.Direction))
	}
	if !slices.ContainsFunc(plan.sortBy, func(s SortBy) bool { return p.sortable[s.Field].expr == p.primaryKey }) {
		order = append(order, p.primaryKey+" ASC")
	}

	for _, f := range q.Filters {
		col, ok := p.filterable[f.Field]
		if !ok {
			return nil, badQuery("field %q is not filterable", f.Field)
		}
		if !slices.Contains(p.cfg.FilterableColumns[f.Field], f.Operator) {
			return nil, badQuery("operator %s is not allowed on %q", f.Operator, f.Field)
		}
		values, err := convert(col, f.Values)
		if err != nil {
			return nil, err
		}
		joins.add(col.joins)
		switch f.Operator {
		case Eq:
			conds = append(conds, col.expr+" = ?")
			args = append(args, values[0])
		case In:
			conds = append(conds, col.expr+" IN (?)")
			args = append(args, values)
		}
	}

	if q.Search != "" {
		if len(p.searchable) == 0 {
			return nil, badQuery("search is not supported on this resource")
		}
		term := "%" + escapeLike(q.Search) + "%"
		ors := make([]string, 0, len(p.searchable))
		for _, col := range p.searchable {
			joins.add(col.joins)
			expr := col.expr
			if col.typ != String {
				expr = "CAST(" + expr + " AS TEXT)"
			}
			ors = append(ors, expr+" ILIKE ?")
			args = append(args, term)
			plan.searchBy = append(plan.searchBy, col.path)
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}

	for _, pred := range extra {
		clause, err := p.cfg.Entity.existsClause(pred.relation, pred.negate)
		if err != nil {
			return nil, fmt.Errorf("paginator: %w", err)
		}
		conds = append(conds, clause)
	}

	var from strings.Builder
	from.WriteString(" FROM ")
	from.WriteString(quote(p.cfg.Entity.Table))
	for _, j := range joins.list {
		from.WriteString(" ")
		from.WriteString(j.sql)
	}
	if len(conds) > 0 {
		from.WriteString(" WHERE ")
		from.WriteString(strings.Join(conds, " AND "))
	}

	plan.from = from.String()
	plan.args = args
	plan.orderBy = strings.Join(order, ", ")
	plan.primaryKey = p.primaryKey

	return plan, nil
}

type joinSet struct {
	list []join
	seen map[string]bool
}

func (s *joinSet) add(joins []join) {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	for _, j := range joins {
		if s.seen[j.alias] {
			continue
		}
		s.seen[j.alias] = true
		s.list = append(s.list, j)
	}
}

func convert(col column, raw []string) ([]any, error) {
	out := make([]any, 0, len(raw))
	for _, v := range raw {
		switch col.typ {
		case Int:
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return nil, badQuery("filter %q expects an integer, got %q", col.path, v)
			}
			out = append(out, n)
		case Time:
			t, err := time.Parse(time.RFC3339, strings.TrimSpace(v))
			if err != nil {
				return nil, badQuery("filter %q expects an RFC 3339 timestamp, got %q", col.path, v)
			}
			out = append(out, t)
		default:
			out = append(out, v)
		}
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Plan is a validated list query ready to run.
type Plan struct {
	query      Query
	page       int
	limit      int
	sortBy     []SortBy
	searchBy   []string
	from       string
	orderBy    string
	primaryKey string
	args       []any
}

func (pl *Plan) Page() int   { return pl.page }
func (pl *Plan) Limit() int  { return pl.limit }

// Offset saturates at math.MaxInt so a huge page reads as past the end.
func (pl *Plan) Offset() int {
	if pl.page-1 > math.MaxInt/pl.limit {
		return math.MaxInt
	}
	return (pl.page - 1) * pl.limit
}

// CountSQL counts every matching row before pagination.
func (pl *Plan) CountSQL() (string, []any, error) {
	return bind("SELECT COUNT(*)"+pl.from, pl.args)
}

// PageSQL selects the primary keys of the requested page in order.
func (pl *Plan) PageSQL() (string, []any, error) {
	query := "SELECT " + pl.primaryKey + pl.from + " ORDER BY " + pl.orderBy + " LIMIT ? OFFSET ?"
	args := append(slices.Clone(pl.args), pl.limit, pl.Offset())
	return bind(query, args)
}

func bind(query string, args []any) (string, []any, error) {
	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return "", nil, fmt.Errorf("expand query: %w", err)
	}
	return sqlx.Rebind(sqlx.DOLLAR, query), args, nil
}

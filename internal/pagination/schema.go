package pagination

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

type FieldType int

const (
	Int FieldType = iota
	String
	Time
)

type Field struct {
	Column string
	Type   FieldType
}

// Relation links a parent entity to a child entity. LocalKey is a column on
// the parent and ForeignKey a column on the child. Many relations cannot be
// traversed by a dot path; they are only usable through Exists/NotExists.
type Relation struct {
	Entity     *Entity
	LocalKey   string
	ForeignKey string
	Many       bool
}

// Entity is the declarative mapping from API field names to a table.
type Entity struct {
	Table      string
	PrimaryKey string
	Fields     map[string]Field
	Relations  map[string]Relation
}

type join struct {
	alias string
	sql   string
}

// column is a dot path resolved to a qualified column plus the joins needed
// to reach it, parents first.
type column struct {
	path  string
	expr  string
	typ   FieldType
	joins []join
}

func quote(ident string) string {
	return pq.QuoteIdentifier(ident)
}

func qualify(alias, col string) string {
	return quote(alias) + "." + quote(col)
}

func (e *Entity) resolve(path string) (column, error) {
	segments := strings.Split(path, ".")
	current := e
	alias := e.Table
	var joins []join

	for i, seg := range segments[:len(segments)-1] {
		rel, ok := current.Relations[seg]
		if !ok {
			return column{}, fmt.Errorf("unknown relation %q in %q", seg, path)
		}
		if rel.Many {
			return column{}, fmt.Errorf("relation %q in %q is to-many", seg, path)
		}
		childAlias := strings.Join(segments[:i+1], "__")
		joins = append(joins, join{
			alias: childAlias,
			sql: fmt.Sprintf("INNER JOIN %s AS %s ON %s = %s",
				quote(rel.Entity.Table), quote(childAlias),
				qualify(childAlias, rel.ForeignKey), qualify(alias, rel.LocalKey)),
		})
		current = rel.Entity
		alias = childAlias
	}

	name := segments[len(segments)-1]
	field, ok := current.Fields[name]
	if !ok {
		return column{}, fmt.Errorf("unknown field %q in %q", name, path)
	}

	return column{
		path:  path,
		expr:  qualify(alias, field.Column),
		typ:   field.Type,
		joins: joins,
	}, nil
}

func (e *Entity) existsClause(relation string, negate bool) (string, error) {
	rel, ok := e.Relations[relation]
	if !ok {
		return "", fmt.Errorf("unknown relation %q", relation)
	}
	alias := "exists__" + relation
	clause := fmt.Sprintf("EXISTS (SELECT 1 FROM %s AS %s WHERE %s = %s)",
		quote(rel.Entity.Table), quote(alias),
		qualify(alias, rel.ForeignKey), qualify(e.Table, rel.LocalKey))
	if negate {
		clause = "NOT " + clause
	}
	return clause, nil
}

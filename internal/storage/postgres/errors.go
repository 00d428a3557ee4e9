package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"article_cms/internal/domain"
)

const (
	uniqueViolation     pq.ErrorCode = "23505"
	foreignKeyViolation pq.ErrorCode = "23503"
)

type constraint struct {
	field string
	table string // referencing table that owns the constraint
}

// Named constraints from migrations/001_create_schema.up.sql.
var constraints = map[string]constraint{
	"organizations_slug_key":     {field: "slug", table: "organizations"},
	"users_organization_id_fkey": {field: "organizationId", table: "users"},
	"articles_user_id_fkey":      {field: "userId", table: "articles"},
}

// translate turns constraint violations into validation errors and missing
// rows into domain.ErrNotFound. Anything else is returned unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	c, ok := constraints[pqErr.Constraint]
	if !ok {
		c = constraint{field: pqErr.Constraint}
	}

	switch pqErr.Code {
	case uniqueViolation:
		return domain.NewValidationError(c.field, "unique", "is already taken")
	case foreignKeyViolation:
		return domain.NewValidationError(c.field, "exists", "references a record that does not exist")
	}
	return err
}

// translateDelete is translate for DELETE statements, where a foreign key
// violation means a RESTRICT constraint still points at the row.
func translateDelete(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		table := pqErr.Table
		if c, ok := constraints[pqErr.Constraint]; ok {
			table = c.table
		}
		return domain.NewValidationError("id", "restrict", fmt.Sprintf("still referenced by %s", table))
	}
	return translate(err)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"article_cms/internal/domain"
	"article_cms/internal/pagination"
)

type OrganizationStore struct {
	db *sqlx.DB
}

func NewOrganizationStore(db *sqlx.DB) *OrganizationStore {
	return &OrganizationStore{db: db}
}

const organizationColumns = `id, name, slug, description, created_at, updated_at`

func (s *OrganizationStore) Create(ctx context.Context, input domain.NewOrganization) (*domain.Organization, error) {
	var org domain.Organization
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &org,
		`INSERT INTO organizations (name, slug, description) VALUES ($1, $2, $3) RETURNING `+organizationColumns,
		input.Name, input.Slug, input.Description,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &org, nil
}

func (s *OrganizationStore) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	var org domain.Organization
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &org,
		`SELECT `+organizationColumns+` FROM organizations WHERE id = $1`, id)
	if err != nil {
		return nil, translate(err)
	}
	return &org, nil
}

func (s *OrganizationStore) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	var org domain.Organization
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &org,
		`SELECT `+organizationColumns+` FROM organizations WHERE slug = $1`, slug)
	if err != nil {
		return nil, translate(err)
	}
	return &org, nil
}

func (s *OrganizationStore) Update(ctx context.Context, id int64, patch domain.OrganizationPatch) (*domain.Organization, error) {
	query := `
		UPDATE organizations SET
			name = COALESCE($1, name),
			slug = COALESCE($2, slug),
			description = CASE WHEN $3 THEN $4 ELSE description END,
			updated_at = NOW()
		WHERE id = $5
		RETURNING ` + organizationColumns

	var org domain.Organization
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &org, query,
		patch.Name, patch.Slug, patch.Description.Set, patch.Description.Value, id)
	if err != nil {
		return nil, translate(err)
	}
	return &org, nil
}

func (s *OrganizationStore) List(ctx context.Context, plan *pagination.Plan) (int, []domain.Organization, error) {
	exec := GetExecutor(ctx, s.db)

	query, args, err := plan.CountSQL()
	if err != nil {
		return 0, nil, err
	}
	var total int
	if err := sqlx.GetContext(ctx, exec, &total, query, args...); err != nil {
		return 0, nil, fmt.Errorf("count organizations: %w", err)
	}
	if plan.Offset() >= total {
		return total, []domain.Organization{}, nil
	}

	query, args, err = plan.PageSQL()
	if err != nil {
		return 0, nil, err
	}
	var ids []int64
	if err := sqlx.SelectContext(ctx, exec, &ids, query, args...); err != nil {
		return 0, nil, fmt.Errorf("select organization page: %w", err)
	}
	if len(ids) == 0 {
		return total, []domain.Organization{}, nil
	}

	// array_position keeps the page order chosen by the plan.
	orgs := []domain.Organization{}
	err = sqlx.SelectContext(ctx, exec, &orgs,
		`SELECT `+organizationColumns+` FROM organizations
		WHERE id = ANY($1)
		ORDER BY array_position($1, id)`, pq.Array(ids))
	if err != nil {
		return 0, nil, fmt.Errorf("select organizations: %w", err)
	}
	return total, orgs, nil
}

func (s *OrganizationStore) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM organizations WHERE id = $1`, id)
	if err != nil {
		return 0, translateDelete(err)
	}
	return res.RowsAffected()
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"article_cms/internal/domain"
	"article_cms/internal/pagination"
)

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

const userColumns = `id, name, thumbnail_image, organization_id, created_at, updated_at`

type userRow struct {
	domain.User
	Org domain.Organization `db:"organization"`
}

func (s *UserStore) Create(ctx context.Context, input domain.NewUser) (*domain.User, error) {
	var user domain.User
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &user,
		`INSERT INTO users (name, thumbnail_image, organization_id) VALUES ($1, $2, $3) RETURNING `+userColumns,
		input.Name, input.ThumbnailImage, input.OrganizationID,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	users, err := s.load(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrNotFound
	}
	return &users[0], nil
}

func (s *UserStore) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	query := `
		UPDATE users SET
			name = COALESCE($1, name),
			thumbnail_image = CASE WHEN $2 THEN $3 ELSE thumbnail_image END,
			organization_id = COALESCE($4, organization_id),
			updated_at = NOW()
		WHERE id = $5
		RETURNING ` + userColumns

	var user domain.User
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &user, query,
		patch.Name, patch.ThumbnailImage.Set, patch.ThumbnailImage.Value, patch.OrganizationID, id)
	if err != nil {
		return nil, translate(err)
	}
	return s.GetByID(ctx, user.ID)
}

func (s *UserStore) List(ctx context.Context, plan *pagination.Plan) (int, []domain.User, error) {
	exec := GetExecutor(ctx, s.db)

	query, args, err := plan.CountSQL()
	if err != nil {
		return 0, nil, err
	}
	var total int
	if err := sqlx.GetContext(ctx, exec, &total, query, args...); err != nil {
		return 0, nil, fmt.Errorf("count users: %w", err)
	}
	if plan.Offset() >= total {
		return total, []domain.User{}, nil
	}

	query, args, err = plan.PageSQL()
	if err != nil {
		return 0, nil, err
	}
	var ids []int64
	if err := sqlx.SelectContext(ctx, exec, &ids, query, args...); err != nil {
		return 0, nil, fmt.Errorf("select user page: %w", err)
	}

	users, err := s.load(ctx, ids)
	if err != nil {
		return 0, nil, err
	}
	return total, users, nil
}

func (s *UserStore) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return 0, translateDelete(err)
	}
	return res.RowsAffected()
}

func (s *UserStore) load(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	query := `
		SELECT
			u.id, u.name, u.thumbnail_image, u.organization_id, u.created_at, u.updated_at,
			o.id AS "organization.id", o.name AS "organization.name", o.slug AS "organization.slug",
			o.description AS "organization.description", o.created_at AS "organization.created_at",
			o.updated_at AS "organization.updated_at"
		FROM users u
		INNER JOIN organizations o ON o.id = u.organization_id
		WHERE u.id = ANY($1)`

	var rows []userRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}

	byID := make(map[int64]*userRow, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}

	users := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		row, ok := byID[id]
		if !ok {
			continue
		}
		user := row.User
		org := row.Org
		user.Organization = &org
		users = append(users, user)
	}
	return users, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"article_cms/internal/domain"
	"article_cms/internal/pagination"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

const draftColumns = `id, article_id, title, content, created_at, updated_at`

const publishedColumns = `id, article_id, title, content, published_at`

const aggregateQuery = `
	SELECT
		a.id, a.user_id, a.created_at, a.updated_at,
		d.id AS "draft.id", d.article_id AS "draft.article_id", d.title AS "draft.title",
		d.content AS "draft.content", d.created_at AS "draft.created_at", d.updated_at AS "draft.updated_at",
		u.id AS "user.id", u.name AS "user.name", u.thumbnail_image AS "user.thumbnail_image",
		u.organization_id AS "user.organization_id", u.created_at AS "user.created_at", u.updated_at AS "user.updated_at",
		o.id AS "organization.id", o.name AS "organization.name", o.slug AS "organization.slug",
		o.description AS "organization.description", o.created_at AS "organization.created_at",
		o.updated_at AS "organization.updated_at"
	FROM articles a
	INNER JOIN article_drafts d ON d.article_id = a.id
	INNER JOIN users u ON u.id = a.user_id
	INNER JOIN organizations o ON o.id = u.organization_id
	WHERE a.id = ANY($1)`

type articleRow struct {
	domain.Article
	ArticleDraft domain.ArticleDraft `db:"draft"`
	Author       domain.User         `db:"user"`
	Organization domain.Organization `db:"organization"`
}

func (s *ArticleStore) Create(ctx context.Context, userID int64) (*domain.Article, error) {
	var article domain.Article
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &article,
		`INSERT INTO articles (user_id) VALUES ($1) RETURNING id, user_id, created_at, updated_at`,
		userID,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &article, nil
}

func (s *ArticleStore) CreateDraft(ctx context.Context, articleID int64, title, content string) (*domain.ArticleDraft, error) {
	var draft domain.ArticleDraft
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &draft,
		`INSERT INTO article_drafts (article_id, title, content) VALUES ($1, $2, $3) RETURNING `+draftColumns,
		articleID, title, content,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &draft, nil
}

func (s *ArticleStore) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	articles, err := s.load(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, domain.ErrNotFound
	}
	return &articles[0], nil
}

func (s *ArticleStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1)`, id)
	return exists, err
}

func (s *ArticleStore) GetDraft(ctx context.Context, articleID int64) (*domain.ArticleDraft, error) {
	return s.getDraft(ctx, articleID, "")
}

// GetDraftForUpdate locks the draft row until the surrounding transaction ends.
func (s *ArticleStore) GetDraftForUpdate(ctx context.Context, articleID int64) (*domain.ArticleDraft, error) {
	return s.getDraft(ctx, articleID, " FOR UPDATE")
}

func (s *ArticleStore) getDraft(ctx context.Context, articleID int64, lock string) (*domain.ArticleDraft, error) {
	var draft domain.ArticleDraft
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &draft,
		`SELECT `+draftColumns+` FROM article_drafts WHERE article_id = $1`+lock, articleID)
	if err != nil {
		return nil, translate(err)
	}
	return &draft, nil
}

// UpdateDraft applies the non-nil fields of patch in a single statement.
func (s *ArticleStore) UpdateDraft(ctx context.Context, articleID int64, patch domain.DraftPatch) (*domain.ArticleDraft, error) {
	query := `
		UPDATE article_drafts SET
			title = COALESCE($1, title),
			content = COALESCE($2, content),
			updated_at = NOW()
		WHERE article_id = $3
		RETURNING ` + draftColumns

	var draft domain.ArticleDraft
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &draft, query, patch.Title, patch.Content, articleID)
	if err != nil {
		return nil, translate(err)
	}
	return &draft, nil
}

func (s *ArticleStore) CreatePublished(ctx context.Context, articleID int64, title, content string) (*domain.ArticlePublished, error) {
	var published domain.ArticlePublished
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &published,
		`INSERT INTO article_published (article_id, title, content) VALUES ($1, $2, $3) RETURNING `+publishedColumns,
		articleID, title, content,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &published, nil
}

// ListPublished returns every snapshot of an article, latest first.
func (s *ArticleStore) ListPublished(ctx context.Context, articleID int64) ([]domain.ArticlePublished, error) {
	versions := []domain.ArticlePublished{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &versions,
		`SELECT `+publishedColumns+` FROM article_published
		WHERE article_id = $1
		ORDER BY published_at DESC, id DESC`, articleID)
	if err != nil {
		return nil, err
	}
	return versions, nil
}

func (s *ArticleStore) LatestPublished(ctx context.Context, articleID int64) (*domain.ArticlePublished, error) {
	var published domain.ArticlePublished
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &published,
		`SELECT `+publishedColumns+` FROM article_published
		WHERE article_id = $1
		ORDER BY published_at DESC, id DESC
		LIMIT 1`, articleID)
	if err != nil {
		return nil, translate(err)
	}
	return &published, nil
}

// List runs a planned page query and returns the total match count with the
// hydrated aggregates of the requested page.
func (s *ArticleStore) List(ctx context.Context, plan *pagination.Plan) (int, []domain.Article, error) {
	exec := GetExecutor(ctx, s.db)

	query, args, err := plan.CountSQL()
	if err != nil {
		return 0, nil, err
	}
	var total int
	if err := sqlx.GetContext(ctx, exec, &total, query, args...); err != nil {
		return 0, nil, fmt.Errorf("count articles: %w", err)
	}
	if plan.Offset() >= total {
		return total, []domain.Article{}, nil
	}

	query, args, err = plan.PageSQL()
	if err != nil {
		return 0, nil, err
	}
	var ids []int64
	if err := sqlx.SelectContext(ctx, exec, &ids, query, args...); err != nil {
		return 0, nil, fmt.Errorf("select article page: %w", err)
	}

	articles, err := s.load(ctx, ids)
	if err != nil {
		return 0, nil, err
	}
	return total, articles, nil
}

// Delete removes an article; drafts and snapshots go with it via ON DELETE CASCADE.
func (s *ArticleStore) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// load hydrates full aggregates and returns them in the order of ids.
func (s *ArticleStore) load(ctx context.Context, ids []int64) ([]domain.Article, error) {
	if len(ids) == 0 {
		return []domain.Article{}, nil
	}
	exec := GetExecutor(ctx, s.db)

	var rows []articleRow
	if err := sqlx.SelectContext(ctx, exec, &rows, aggregateQuery, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("select articles: %w", err)
	}

	var versions []domain.ArticlePublished
	err := sqlx.SelectContext(ctx, exec, &versions,
		`SELECT `+publishedColumns+` FROM article_published
		WHERE article_id = ANY($1)
		ORDER BY published_at DESC, id DESC`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("select published versions: %w", err)
	}

	byArticle := make(map[int64][]domain.ArticlePublished, len(ids))
	for _, v := range versions {
		byArticle[v.ArticleID] = append(byArticle[v.ArticleID], v)
	}

	byID := make(map[int64]*articleRow, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}

	articles := make([]domain.Article, 0, len(ids))
	for _, id := range ids {
		row, ok := byID[id]
		if !ok {
			continue
		}
		article := row.Article
		draft := row.ArticleDraft
		author := row.Author
		org := row.Organization
		author.Organization = &org
		article.Draft = &draft
		article.User = &author
		article.PublishedVersions = byArticle[id]
		if article.PublishedVersions == nil {
			article.PublishedVersions = []domain.ArticlePublished{}
		}
		articles = append(articles, article)
	}
	return articles, nil
}

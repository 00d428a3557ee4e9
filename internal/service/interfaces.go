package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"article_cms/internal/domain"
	"article_cms/internal/pagination"
)

type ArticleStore interface {
	Create(ctx context.Context, userID int64) (*domain.Article, error)
	CreateDraft(ctx context.Context, articleID int64, title, content string) (*domain.ArticleDraft, error)
	GetByID(ctx context.Context, id int64) (*domain.Article, error)
	Exists(ctx context.Context, id int64) (bool, error)
	GetDraft(ctx context.Context, articleID int64) (*domain.ArticleDraft, error)
	GetDraftForUpdate(ctx context.Context, articleID int64) (*domain.ArticleDraft, error)
	UpdateDraft(ctx context.Context, articleID int64, patch domain.DraftPatch) (*domain.ArticleDraft, error)
	CreatePublished(ctx context.Context, articleID int64, title, content string) (*domain.ArticlePublished, error)
	ListPublished(ctx context.Context, articleID int64) ([]domain.ArticlePublished, error)
	LatestPublished(ctx context.Context, articleID int64) (*domain.ArticlePublished, error)
	List(ctx context.Context, plan *pagination.Plan) (int, []domain.Article, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type UserStore interface {
	Create(ctx context.Context, input domain.NewUser) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	List(ctx context.Context, plan *pagination.Plan) (int, []domain.User, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type OrganizationStore interface {
	Create(ctx context.Context, input domain.NewOrganization) (*domain.Organization, error)
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Organization, error)
	Update(ctx context.Context, id int64, patch domain.OrganizationPatch) (*domain.Organization, error)
	List(ctx context.Context, plan *pagination.Plan) (int, []domain.Organization, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishArticle(ctx context.Context, article *domain.Article, snapshot *domain.ArticlePublished) error
	Close() error
}

package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"article_cms/internal/domain"
	"article_cms/internal/pagination"
)

type ArticleService interface {
	Create(ctx context.Context, input domain.NewArticle) (*domain.Article, error)
	GetOne(ctx context.Context, id int64) (*domain.Article, error)
	ListAll(ctx context.Context, q pagination.Query, status domain.PublishStatus) (*pagination.Paginated[domain.Article], error)
	GetDraft(ctx context.Context, articleID int64) (*domain.ArticleDraft, error)
	UpdateDraft(ctx context.Context, articleID int64, patch domain.DraftPatch) (*domain.ArticleDraft, error)
	Publish(ctx context.Context, articleID int64) (*domain.ArticlePublished, error)
	GetPublishedVersions(ctx context.Context, articleID int64) ([]domain.ArticlePublished, error)
	GetLatestPublished(ctx context.Context, articleID int64) (*domain.ArticlePublished, error)
	Remove(ctx context.Context, articleID int64) (int64, error)
}

type UserService interface {
	Create(ctx context.Context, input domain.NewUser) (*domain.User, error)
	FindAll(ctx context.Context, q pagination.Query) (*pagination.Paginated[domain.User], error)
	FindOne(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	Remove(ctx context.Context, id int64) (int64, error)
}

type OrganizationService interface {
	Create(ctx context.Context, input domain.NewOrganization) (*domain.Organization, error)
	FindAll(ctx context.Context, q pagination.Query) (*pagination.Paginated[domain.Organization], error)
	FindOne(ctx context.Context, id int64) (*domain.Organization, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Organization, error)
	Update(ctx context.Context, id int64, patch domain.OrganizationPatch) (*domain.Organization, error)
	Remove(ctx context.Context, id int64) (int64, error)
}

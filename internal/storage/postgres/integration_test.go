//go:build integration

package postgres

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"article_cms/internal/config"
	"article_cms/internal/domain"
	"article_cms/internal/pagination"
	"article_cms/internal/service"
	"article_cms/internal/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
	seed      string

	articles      *ArticleStore
	users         *UserStore
	organizations *OrganizationStore
	articleSvc    *service.ArticleService
	userSvc       *service.UserService
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	seed, err := os.ReadFile(filepath.Join(migrationsPath, "002_seed.up.sql"))
	s.Require().NoError(err)
	s.seed = string(seed)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_schema.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	limits := config.PaginationConfig{DefaultLimit: 20, MaxLimit: 100}

	s.articles = NewArticleStore(db)
	s.users = NewUserStore(db)
	s.organizations = NewOrganizationStore(db)

	articlePaginator, err := pagination.New(service.ArticlePaginateConfig(ArticleSchema, limits))
	s.Require().NoError(err)
	userPaginator, err := pagination.New(service.UserPaginateConfig(UserSchema, limits))
	s.Require().NoError(err)

	s.articleSvc = service.NewArticleService(s.articles, NewTransactionManager(db), nil, articlePaginator, logger)
	s.userSvc = service.NewUserService(s.users, userPaginator, logger)
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, err := s.db.ExecContext(s.ctx,
		"TRUNCATE article_published, article_drafts, articles, users, organizations RESTART IDENTITY CASCADE")
	s.Require().NoError(err)
	_, err = s.db.ExecContext(s.ctx, s.seed)
	s.Require().NoError(err)
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) query(values url.Values) pagination.Query {
	q, err := pagination.ParseQuery("/articles", values)
	s.Require().NoError(err)
	return q
}

func (s *PostgresIntegrationSuite) countRows(table string, articleID int64) int {
	var n int
	err := s.db.GetContext(s.ctx, &n, "SELECT COUNT(*) FROM "+table+" WHERE article_id = $1", articleID)
	s.Require().NoError(err)
	return n
}

func (s *PostgresIntegrationSuite) TestScenario_CreateWithoutPublishing() {
	article, err := s.articleSvc.Create(s.ctx, domain.NewArticle{
		UserID:  1,
		Title:   "最初の投稿",
		Content: "これは初めての投稿です。",
	})
	s.Require().NoError(err)

	s.Require().NotNil(article.Draft)
	s.Equal("最初の投稿", article.Draft.Title)
	s.Equal("これは初めての投稿です。", article.Draft.Content)
	s.Require().NotNil(article.User)
	s.Require().NotNil(article.User.Organization)
	s.Equal("test-corp", article.User.Organization.Slug)
	s.False(article.IsPublished())

	versions, err := s.articleSvc.GetPublishedVersions(s.ctx, article.ID)
	s.NoError(err)
	s.Empty(versions)

	_, err = s.articleSvc.GetLatestPublished(s.ctx, article.ID)
	s.ErrorIs(err, domain.ErrNoPublishedVersion)
}

func (s *PostgresIntegrationSuite) TestScenario_PartialDraftUpdate() {
	draft, err := s.articleSvc.UpdateDraft(s.ctx, 2, domain.DraftPatch{Title: utils.Ptr("更新後のタイトル")})
	s.Require().NoError(err)

	s.Equal("更新後のタイトル", draft.Title)
	s.Equal("これは二つ目の投稿です", draft.Content)
	s.Equal(1, s.countRows("article_drafts", 2))
}

func (s *PostgresIntegrationSuite) TestScenario_PublishTwiceKeepsHistory() {
	first, err := s.articleSvc.Publish(s.ctx, 2)
	s.Require().NoError(err)

	_, err = s.articleSvc.UpdateDraft(s.ctx, 2, domain.DraftPatch{Title: utils.Ptr("第二版")})
	s.Require().NoError(err)

	second, err := s.articleSvc.Publish(s.ctx, 2)
	s.Require().NoError(err)

	versions, err := s.articleSvc.GetPublishedVersions(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(versions, 2)
	s.Equal(second.ID, versions[0].ID)
	s.Equal("第二版", versions[0].Title)
	s.Equal(first.ID, versions[1].ID)
	s.Equal("二つ目の投稿", versions[1].Title)
	s.False(versions[0].PublishedAt.Before(versions[1].PublishedAt))

	latest, err := s.articleSvc.GetLatestPublished(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal(versions[0].ID, latest.ID)
	s.Equal(versions[0].Title, latest.Title)
}

func (s *PostgresIntegrationSuite) TestScenario_ListScopedToOrganization() {
	page, err := s.articleSvc.ListAll(s.ctx, s.query(url.Values{
		"filter.user.organization.id": {"1"},
		"limit":                       {"20"},
	}), domain.PublishStatusAll)
	s.Require().NoError(err)

	s.Equal(2, page.Meta.TotalItems)
	s.Len(page.Data, 2)
	s.Equal(1, page.Meta.TotalPages)
	for _, a := range page.Data {
		s.Require().NotNil(a.User)
		s.Equal(int64(1), a.User.OrganizationID)
		s.NotNil(a.Draft)
	}
}

func (s *PostgresIntegrationSuite) TestScenario_ListWithoutScopeIsRejected() {
	_, err := s.articleSvc.ListAll(s.ctx, s.query(url.Values{"limit": {"20"}}), domain.PublishStatusAll)
	s.ErrorIs(err, domain.ErrBadQuery)
}

func (s *PostgresIntegrationSuite) TestList_StatusFilter() {
	scope := url.Values{"filter.user.organization.id": {"$in:1,2"}, "sortBy": {"id:ASC"}}

	published, err := s.articleSvc.ListAll(s.ctx, s.query(scope), domain.PublishStatusPublished)
	s.Require().NoError(err)
	s.Equal([]int64{1, 3}, articleIDs(published.Data))

	drafts, err := s.articleSvc.ListAll(s.ctx, s.query(scope), domain.PublishStatusDraft)
	s.Require().NoError(err)
	s.Equal([]int64{2}, articleIDs(drafts.Data))
	s.False(drafts.Data[0].IsPublished())
}

func (s *PostgresIntegrationSuite) TestList_SearchAndSortOnDraft() {
	page, err := s.articleSvc.ListAll(s.ctx, s.query(url.Values{
		"filter.user.organization.id": {"1"},
		"search":                      {"二つ目"},
	}), domain.PublishStatusAll)
	s.Require().NoError(err)
	s.Equal([]int64{2}, articleIDs(page.Data))

	page, err = s.articleSvc.ListAll(s.ctx, s.query(url.Values{
		"filter.user.organization.id": {"$in:1,2"},
		"sortBy":                      {"draft.title:ASC"},
	}), domain.PublishStatusAll)
	s.Require().NoError(err)
	s.Len(page.Data, 3)
	s.Equal([2]string{"draft.title", "ASC"}, page.Meta.SortBy[0])
}

func (s *PostgresIntegrationSuite) TestList_SearchEscapesWildcards() {
	page, err := s.articleSvc.ListAll(s.ctx, s.query(url.Values{
		"filter.user.organization.id": {"1"},
		"search":                      {"%"},
	}), domain.PublishStatusAll)
	s.Require().NoError(err)
	s.Equal(0, page.Meta.TotalItems)
}

func (s *PostgresIntegrationSuite) TestList_PagesCoverTotal() {
	for i := 0; i < 5; i++ {
		_, err := s.articleSvc.Create(s.ctx, domain.NewArticle{UserID: 2, Title: "記事" + strconv.Itoa(i)})
		s.Require().NoError(err)
	}

	seen := map[int64]bool{}
	sum := 0
	page := 1
	for {
		result, err := s.articleSvc.ListAll(s.ctx, s.query(url.Values{
			"filter.user.organization.id": {"1"},
			"limit":                       {"3"},
			"page":                        {strconv.Itoa(page)},
		}), domain.PublishStatusAll)
		s.Require().NoError(err)
		s.Equal(7, result.Meta.TotalItems)
		s.Equal(3, result.Meta.TotalPages)

		if page < result.Meta.TotalPages {
			s.Len(result.Data, 3)
		}
		for _, a := range result.Data {
			s.False(seen[a.ID], "article %d on two pages", a.ID)
			seen[a.ID] = true
		}
		sum += len(result.Data)

		if page == result.Meta.TotalPages {
			s.Empty(result.Links.Next)
			break
		}
		s.NotEmpty(result.Links.Next)
		page++
	}
	s.Equal(7, sum)
}

func (s *PostgresIntegrationSuite) TestPublish_AppendsSnapshots() {
	for i := 0; i < 3; i++ {
		_, err := s.articleSvc.Publish(s.ctx, 1)
		s.Require().NoError(err)
	}

	s.Equal(4, s.countRows("article_published", 1))
	s.Equal(1, s.countRows("article_drafts", 1))

	article, err := s.articleSvc.GetOne(s.ctx, 1)
	s.Require().NoError(err)
	s.True(article.IsPublished())
	s.Len(article.PublishedVersions, 4)
	s.Equal(article.PublishedVersions[0].ID, article.LatestPublished().ID)
}

func (s *PostgresIntegrationSuite) TestPublish_MissingArticle() {
	_, err := s.articleSvc.Publish(s.ctx, 999)
	s.ErrorIs(err, domain.ErrNotFound)

	_, err = s.articleSvc.GetLatestPublished(s.ctx, 999)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestRemove_Idempotent() {
	affected, err := s.articleSvc.Remove(s.ctx, 1)
	s.NoError(err)
	s.Equal(int64(1), affected)
	s.Zero(s.countRows("article_drafts", 1))
	s.Zero(s.countRows("article_published", 1))

	affected, err = s.articleSvc.Remove(s.ctx, 1)
	s.NoError(err)
	s.Zero(affected)

	_, err = s.articleSvc.GetOne(s.ctx, 1)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestUserStore_UnknownOrganization() {
	_, err := s.users.Create(s.ctx, domain.NewUser{Name: "n", OrganizationID: 42})

	var verr *domain.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal("organizationId", verr.Violations[0].Field)
	s.Equal("exists", verr.Violations[0].Rule)
}

func (s *PostgresIntegrationSuite) TestUserStore_DeleteWithArticles() {
	_, err := s.users.Delete(s.ctx, 1)

	var verr *domain.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal("restrict", verr.Violations[0].Rule)
	s.Equal("still referenced by articles", verr.Violations[0].Message)
}

func (s *PostgresIntegrationSuite) TestUserStore_UpdatePartial() {
	user, err := s.users.Update(s.ctx, 2, domain.UserPatch{ThumbnailImage: domain.NullableOf("https://example.com/user2.png")})
	s.Require().NoError(err)

	s.Equal("テストユーザー2", user.Name)
	s.Equal("https://example.com/user2.png", *user.ThumbnailImage)
	s.Require().NotNil(user.Organization)
	s.Equal("test-corp", user.Organization.Slug)
}

func (s *PostgresIntegrationSuite) TestUserStore_UpdateNullClearsThumbnail() {
	user, err := s.users.Update(s.ctx, 1, domain.UserPatch{ThumbnailImage: domain.Null[string]()})
	s.Require().NoError(err)
	s.Nil(user.ThumbnailImage)
	s.Equal("テストユーザー1", user.Name)
}

func (s *PostgresIntegrationSuite) TestOrganizationStore_UpdateDescription() {
	org, err := s.organizations.Update(s.ctx, 1, domain.OrganizationPatch{Name: utils.Ptr("renamed")})
	s.Require().NoError(err)
	s.Require().NotNil(org.Description)

	org, err = s.organizations.Update(s.ctx, 1, domain.OrganizationPatch{Description: domain.Null[string]()})
	s.Require().NoError(err)
	s.Nil(org.Description)
	s.Equal("renamed", org.Name)
}

func (s *PostgresIntegrationSuite) TestUserService_ListByOrganization() {
	q, err := pagination.ParseQuery("/users", url.Values{"filter.organization.id": {"2"}})
	s.Require().NoError(err)

	page, err := s.userSvc.FindAll(s.ctx, q)
	s.Require().NoError(err)
	s.Require().Len(page.Data, 1)
	s.Equal("サンプルユーザー", page.Data[0].Name)
	s.Require().NotNil(page.Data[0].Organization)
	s.Equal("sample-llc", page.Data[0].Organization.Slug)
}

func (s *PostgresIntegrationSuite) TestOrganizationStore_DuplicateSlug() {
	_, err := s.organizations.Create(s.ctx, domain.NewOrganization{Name: "dup", Slug: "test-corp"})

	var verr *domain.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal("slug", verr.Violations[0].Field)
	s.Equal("unique", verr.Violations[0].Rule)
}

func (s *PostgresIntegrationSuite) TestOrganizationStore_GetBySlug() {
	org, err := s.organizations.GetBySlug(s.ctx, "sample-llc")
	s.Require().NoError(err)
	s.Equal(int64(2), org.ID)
	s.Nil(org.Description)

	_, err = s.organizations.GetBySlug(s.ctx, "missing")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestOrganizationStore_DeleteWithUsers() {
	_, err := s.organizations.Delete(s.ctx, 2)
	var verr *domain.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal("restrict", verr.Violations[0].Rule)
	s.Equal("still referenced by users", verr.Violations[0].Message)

	_, err = s.articleSvc.Remove(s.ctx, 3)
	s.Require().NoError(err)
	_, err = s.users.Delete(s.ctx, 3)
	s.Require().NoError(err)

	affected, err := s.organizations.Delete(s.ctx, 2)
	s.NoError(err)
	s.Equal(int64(1), affected)
}

func articleIDs(articles []domain.Article) []int64 {
	ids := make([]int64, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ID)
	}
	return ids
}

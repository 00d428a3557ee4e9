package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"article_cms/internal/api/mocks"
	"article_cms/internal/domain"
	"article_cms/internal/pagination"
)

// routerSuite carries the engine and mocks shared by every handler suite.
type routerSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	articles      *mocks.MockArticleService
	users         *mocks.MockUserService
	organizations *mocks.MockOrganizationService
	router        *gin.Engine
}

func (s *routerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.articles = mocks.NewMockArticleService(s.ctrl)
	s.users = mocks.NewMockUserService(s.ctrl)
	s.organizations = mocks.NewMockOrganizationService(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = NewRouter(Handlers{
		Articles:      NewArticleHandler(s.articles, logger),
		Users:         NewUserHandler(s.users, logger),
		Organizations: NewOrganizationHandler(s.organizations, logger),
	}, "*", logger)
}

func (s *routerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *routerSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *routerSuite) decodeError(w *httptest.ResponseRecorder) ErrorBody {
	var body ErrorBody
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

type ArticleHandlerTestSuite struct {
	routerSuite
}

func TestArticleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleHandlerTestSuite))
}

func (s *ArticleHandlerTestSuite) TestCreate() {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.articles.EXPECT().
		Create(gomock.Any(), domain.NewArticle{UserID: 1, Title: "最初の投稿", Content: "本文"}).
		Return(&domain.Article{
			ID:        4,
			UserID:    1,
			Draft:     &domain.ArticleDraft{ID: 4, ArticleID: 4, Title: "最初の投稿", Content: "本文"},
			CreatedAt: now,
			UpdatedAt: now,
		}, nil)

	w := s.do(http.MethodPost, "/articles", `{"userId":1,"title":"最初の投稿","content":"本文"}`)

	s.Equal(http.StatusCreated, w.Code)
	var got map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal(float64(4), got["id"])
	s.Equal(false, got["isPublished"])
	s.Equal([]any{}, got["publishedVersions"])
}

func (s *ArticleHandlerTestSuite) TestCreate_MalformedBody() {
	w := s.do(http.MethodPost, "/articles", `{"userId":`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(CodeBadRequest, s.decodeError(w).Code)
}

func (s *ArticleHandlerTestSuite) TestCreate_ValidationFailure() {
	s.articles.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, &domain.ValidationError{Violations: []domain.FieldViolation{
			{Field: "title", Rule: "required", Message: "is required"},
		}})

	w := s.do(http.MethodPost, "/articles", `{"userId":1}`)

	s.Equal(http.StatusBadRequest, w.Code)
	body := s.decodeError(w)
	s.Equal(CodeValidation, body.Code)
	s.Require().Len(body.Violations, 1)
	s.Equal("title", body.Violations[0].Field)
}

func (s *ArticleHandlerTestSuite) TestList_PassesQueryAndStatus() {
	s.articles.EXPECT().
		ListAll(gomock.Any(), gomock.Any(), domain.PublishStatusPublished).
		DoAndReturn(func(_ any, q pagination.Query, _ domain.PublishStatus) (*pagination.Paginated[domain.Article], error) {
			s.Equal("/articles", q.Path)
			s.Equal(2, q.Page)
			s.Equal(5, q.Limit)
			s.True(q.HasFilter("user.organization.id"))
			return &pagination.Paginated[domain.Article]{
				Data: []domain.Article{{ID: 1}},
				Meta: pagination.Meta{ItemsPerPage: 5, TotalItems: 6, CurrentPage: 2, TotalPages: 2},
			}, nil
		})

	w := s.do(http.MethodGet, "/articles?page=2&limit=5&filter.user.organization.id=1&status=published", "")

	s.Equal(http.StatusOK, w.Code)
	var page pagination.Paginated[json.RawMessage]
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))
	s.Len(page.Data, 1)
	s.Equal(6, page.Meta.TotalItems)
}

func (s *ArticleHandlerTestSuite) TestList_UnknownStatus() {
	w := s.do(http.MethodGet, "/articles?filter.user.organization.id=1&status=archived", "")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(CodeBadQuery, s.decodeError(w).Code)
}

func (s *ArticleHandlerTestSuite) TestList_MalformedPage() {
	w := s.do(http.MethodGet, "/articles?page=0", "")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(CodeBadQuery, s.decodeError(w).Code)
}

func (s *ArticleHandlerTestSuite) TestGet_InvalidID() {
	for _, id := range []string{"abc", "0", "-3"} {
		w := s.do(http.MethodGet, "/articles/"+id, "")
		s.Equal(http.StatusBadRequest, w.Code, id)
	}
}

func (s *ArticleHandlerTestSuite) TestGet_NotFound() {
	s.articles.EXPECT().GetOne(gomock.Any(), int64(99)).Return(nil, fmt.Errorf("get article: %w", domain.ErrNotFound))

	w := s.do(http.MethodGet, "/articles/99", "")

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(CodeNotFound, s.decodeError(w).Code)
}

func (s *ArticleHandlerTestSuite) TestDelete_ReportsAffected() {
	s.articles.EXPECT().Remove(gomock.Any(), int64(404)).Return(int64(0), nil)

	w := s.do(http.MethodDelete, "/articles/404", "")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"affected":0}`, w.Body.String())
}

func (s *ArticleHandlerTestSuite) TestUpdateDraft_PartialPatch() {
	s.articles.EXPECT().
		UpdateDraft(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ any, _ int64, patch domain.DraftPatch) (*domain.ArticleDraft, error) {
			s.Require().NotNil(patch.Title)
			s.Equal("更新されたタイトル", *patch.Title)
			s.Nil(patch.Content)
			return &domain.ArticleDraft{ID: 1, ArticleID: 1, Title: *patch.Title, Content: "元の本文"}, nil
		})

	w := s.do(http.MethodPatch, "/articles/1/draft", `{"title":"更新されたタイトル"}`)

	s.Equal(http.StatusOK, w.Code)
	var draft domain.ArticleDraft
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &draft))
	s.Equal("元の本文", draft.Content)
}

func (s *ArticleHandlerTestSuite) TestPublish() {
	s.articles.EXPECT().Publish(gomock.Any(), int64(2)).Return(&domain.ArticlePublished{ID: 7, ArticleID: 2, Title: "t"}, nil)

	w := s.do(http.MethodPost, "/articles/2/publish", "")

	s.Equal(http.StatusCreated, w.Code)
	var snapshot domain.ArticlePublished
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &snapshot))
	s.Equal(int64(7), snapshot.ID)
}

func (s *ArticleHandlerTestSuite) TestListPublished_EmptyIsArray() {
	s.articles.EXPECT().GetPublishedVersions(gomock.Any(), int64(2)).Return(nil, nil)

	w := s.do(http.MethodGet, "/articles/2/published", "")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())
}

func (s *ArticleHandlerTestSuite) TestLatestPublished_NoVersion() {
	s.articles.EXPECT().GetLatestPublished(gomock.Any(), int64(2)).Return(nil, domain.ErrNoPublishedVersion)

	w := s.do(http.MethodGet, "/articles/2/published/latest", "")

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(CodeNoPublishedVersion, s.decodeError(w).Code)
}

func (s *ArticleHandlerTestSuite) TestInternalErrorIsMasked() {
	s.articles.EXPECT().GetDraft(gomock.Any(), int64(1)).Return(nil, errors.New("pq: connection refused"))

	w := s.do(http.MethodGet, "/articles/1/draft", "")

	s.Equal(http.StatusInternalServerError, w.Code)
	body := s.decodeError(w)
	s.Equal(CodeInternal, body.Code)
	s.NotContains(body.Error, "pq")
	s.NotEmpty(body.RequestID)
}

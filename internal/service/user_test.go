package service

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"article_cms/internal/domain"
	"article_cms/internal/pagination"
	"article_cms/internal/service/mocks"
	"article_cms/internal/storage/postgres"
	"article_cms/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	users   *mocks.MockUserStore
	service *UserService
}

func (s *UserServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = mocks.NewMockUserStore(s.ctrl)

	paginator, err := pagination.New(UserPaginateConfig(postgres.UserSchema, testLimits))
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewUserService(s.users, paginator, logger)
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestCreate() {
	ctx := context.Background()
	input := domain.NewUser{Name: "テストユーザー1", ThumbnailImage: utils.Ptr("https://example.com/user1.png"), OrganizationID: 1}

	s.users.EXPECT().Create(ctx, input).Return(&domain.User{ID: 1, Name: input.Name, OrganizationID: 1}, nil)

	user, err := s.service.Create(ctx, input)
	s.NoError(err)
	s.Equal(int64(1), user.ID)
}

func (s *UserServiceTestSuite) TestCreate_Validation() {
	cases := map[string]domain.NewUser{
		"missing name":       {OrganizationID: 1},
		"missing org":        {Name: "n"},
		"thumbnail too long": {Name: "n", OrganizationID: 1, ThumbnailImage: utils.Ptr(string(make([]byte, 256)))},
	}

	for name, input := range cases {
		_, err := s.service.Create(context.Background(), input)
		s.ErrorIs(err, domain.ErrValidation, name)
	}
}

func (s *UserServiceTestSuite) TestCreate_UnknownOrganization() {
	ctx := context.Background()
	input := domain.NewUser{Name: "n", OrganizationID: 42}

	s.users.EXPECT().Create(ctx, input).Return(nil, domain.NewValidationError("organizationId", "exists", "references a record that does not exist"))

	_, err := s.service.Create(ctx, input)
	s.ErrorIs(err, domain.ErrValidation)
}

func (s *UserServiceTestSuite) TestFindAll_RequiresOrganizationScope() {
	q, err := pagination.ParseQuery("/users", url.Values{"search": {"テスト"}})
	s.Require().NoError(err)

	_, err = s.service.FindAll(context.Background(), q)
	s.ErrorIs(err, domain.ErrBadQuery)
}

func (s *UserServiceTestSuite) TestFindAll_SearchesByName() {
	ctx := context.Background()
	q, err := pagination.ParseQuery("/users", url.Values{
		"filter.organization.id": {"$in:1,2"},
		"search":                 {"テスト"},
		"sortBy":                 {"name:ASC"},
	})
	s.Require().NoError(err)

	s.users.EXPECT().List(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, plan *pagination.Plan) (int, []domain.User, error) {
			sql, args, err := plan.PageSQL()
			s.Require().NoError(err)
			s.Contains(sql, `"organization"."id" IN ($1, $2)`)
			s.Contains(sql, `("users"."name" ILIKE $3)`)
			s.Contains(sql, `ORDER BY "users"."name" ASC, "users"."id" ASC`)
			s.Equal("%テスト%", args[2])
			return 2, []domain.User{{ID: 1}, {ID: 2}}, nil
		},
	)

	page, err := s.service.FindAll(ctx, q)

	s.NoError(err)
	s.Equal(2, page.Meta.TotalItems)
	s.Equal([]string{"name"}, page.Meta.SearchBy)
}

func (s *UserServiceTestSuite) TestUpdate_PartialPatch() {
	ctx := context.Background()
	patch := domain.UserPatch{Name: utils.Ptr("renamed")}

	s.users.EXPECT().Update(ctx, int64(1), patch).Return(&domain.User{ID: 1, Name: "renamed"}, nil)

	user, err := s.service.Update(ctx, 1, patch)
	s.NoError(err)
	s.Equal("renamed", user.Name)
}

func (s *UserServiceTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	patch := domain.UserPatch{Name: utils.Ptr("renamed")}

	s.users.EXPECT().Update(ctx, int64(404), patch).Return(nil, domain.ErrNotFound)

	_, err := s.service.Update(ctx, 404, patch)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *UserServiceTestSuite) TestUpdate_EmptyPatchReadsUser() {
	ctx := context.Background()
	s.users.EXPECT().GetByID(ctx, int64(1)).Return(&domain.User{ID: 1}, nil)

	_, err := s.service.Update(ctx, 1, domain.UserPatch{})
	s.NoError(err)
}

func (s *UserServiceTestSuite) TestFindOne_NotFound() {
	ctx := context.Background()
	s.users.EXPECT().GetByID(ctx, int64(5)).Return(nil, domain.ErrNotFound)

	_, err := s.service.FindOne(ctx, 5)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *UserServiceTestSuite) TestRemove() {
	ctx := context.Background()
	s.users.EXPECT().Delete(ctx, int64(3)).Return(int64(0), nil)

	affected, err := s.service.Remove(ctx, 3)
	s.NoError(err)
	s.Zero(affected)
}

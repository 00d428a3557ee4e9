package service

import (
	"context"
	"fmt"
	"log/slog"

	"article_cms/internal/domain"
	"article_cms/internal/pagination"
)

type UserService struct {
	users     UserStore
	paginator *pagination.Paginator
	logger    *slog.Logger
}

func NewUserService(users UserStore, paginator *pagination.Paginator, logger *slog.Logger) *UserService {
	return &UserService{
		users:     users,
		paginator: paginator,
		logger:    logger.With("component", "users"),
	}
}

func (s *UserService) Create(ctx context.Context, input domain.NewUser) (*domain.User, error) {
	if err := domain.Validate(input); err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user created", "user_id", user.ID, "organization_id", user.OrganizationID)
	return user, nil
}

// FindAll pages through the users of one organization. The query must carry
// filter.organization.id.
func (s *UserService) FindAll(ctx context.Context, q pagination.Query) (*pagination.Paginated[domain.User], error) {
	if !q.HasFilter(userScopeFilter) {
		return nil, fmt.Errorf("%w: filter.%s is required", domain.ErrBadQuery, userScopeFilter)
	}

	plan, err := s.paginator.Plan(q)
	if err != nil {
		return nil, err
	}

	total, users, err := s.users.List(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return pagination.NewPaginated(plan, total, users), nil
}

func (s *UserService) FindOne(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	if err := domain.Validate(patch); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return s.FindOne(ctx, id)
	}

	user, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return user, nil
}

func (s *UserService) Remove(ctx context.Context, id int64) (int64, error) {
	affected, err := s.users.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete user %d: %w", id, err)
	}
	return affected, nil
}

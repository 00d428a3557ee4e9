package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"article_cms/internal/domain"
	"article_cms/internal/pagination"
)

// OrganizationService manages tenants. Organizations are the scope of every
// other listing, so FindAll needs no scoping filter.
type OrganizationService struct {
	organizations OrganizationStore
	paginator     *pagination.Paginator
	logger        *slog.Logger
}

func NewOrganizationService(organizations OrganizationStore, paginator *pagination.Paginator, logger *slog.Logger) *OrganizationService {
	return &OrganizationService{
		organizations: organizations,
		paginator:     paginator,
		logger:        logger.With("component", "organizations"),
	}
}

func (s *OrganizationService) Create(ctx context.Context, input domain.NewOrganization) (*domain.Organization, error) {
	input.Slug = strings.ToLower(strings.TrimSpace(input.Slug))
	input.Name = strings.TrimSpace(input.Name)
	if err := domain.Validate(input); err != nil {
		return nil, err
	}

	org, err := s.organizations.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create organization: %w", err)
	}

	s.logger.Info("organization created", "organization_id", org.ID, "slug", org.Slug)
	return org, nil
}

func (s *OrganizationService) FindAll(ctx context.Context, q pagination.Query) (*pagination.Paginated[domain.Organization], error) {
	plan, err := s.paginator.Plan(q)
	if err != nil {
		return nil, err
	}

	total, orgs, err := s.organizations.List(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}

	return pagination.NewPaginated(plan, total, orgs), nil
}

func (s *OrganizationService) FindOne(ctx context.Context, id int64) (*domain.Organization, error) {
	org, err := s.organizations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get organization %d: %w", id, err)
	}
	return org, nil
}

func (s *OrganizationService) FindBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	org, err := s.organizations.GetBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		return nil, fmt.Errorf("get organization %q: %w", slug, err)
	}
	return org, nil
}

func (s *OrganizationService) Update(ctx context.Context, id int64, patch domain.OrganizationPatch) (*domain.Organization, error) {
	if patch.Slug != nil {
		slug := strings.ToLower(strings.TrimSpace(*patch.Slug))
		patch.Slug = &slug
	}
	if err := domain.Validate(patch); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return s.FindOne(ctx, id)
	}

	org, err := s.organizations.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update organization %d: %w", id, err)
	}
	return org, nil
}

// Remove fails with a validation error while users still belong to the
// organization.
func (s *OrganizationService) Remove(ctx context.Context, id int64) (int64, error) {
	affected, err := s.organizations.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete organization %d: %w", id, err)
	}
	return affected, nil
}

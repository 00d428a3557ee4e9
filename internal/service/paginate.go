package service

import (
	"article_cms/internal/config"
	"article_cms/internal/pagination"
)

const (
	articleScopeFilter = "user.organization.id"
	userScopeFilter    = "organization.id"

	publishedVersionsRelation = "publishedVersions"
)

func ArticlePaginateConfig(entity *pagination.Entity, limits config.PaginationConfig) pagination.Config {
	return pagination.Config{
		Entity:            entity,
		SortableColumns:   []string{"id", "createdAt", "updatedAt", "draft.title"},
		DefaultSortBy:     []pagination.SortBy{{Field: "updatedAt", Direction: pagination.Desc}},
		SearchableColumns: []string{"draft.title", "draft.content"},
		FilterableColumns: map[string][]pagination.Operator{
			"user.id":          {pagination.Eq, pagination.In},
			articleScopeFilter: {pagination.Eq, pagination.In},
		},
		DefaultLimit: limits.DefaultLimit,
		MaxLimit:     limits.MaxLimit,
	}
}

func UserPaginateConfig(entity *pagination.Entity, limits config.PaginationConfig) pagination.Config {
	return pagination.Config{
		Entity:            entity,
		SortableColumns:   []string{"id", "name", "createdAt", "updatedAt"},
		DefaultSortBy:     []pagination.SortBy{{Field: "createdAt", Direction: pagination.Desc}},
		SearchableColumns: []string{"name"},
		FilterableColumns: map[string][]pagination.Operator{
			userScopeFilter: {pagination.Eq, pagination.In},
		},
		DefaultLimit: limits.DefaultLimit,
		MaxLimit:     limits.MaxLimit,
	}
}

func OrganizationPaginateConfig(entity *pagination.Entity, limits config.PaginationConfig) pagination.Config {
	return pagination.Config{
		Entity:            entity,
		SortableColumns:   []string{"id", "name", "slug", "createdAt", "updatedAt"},
		DefaultSortBy:     []pagination.SortBy{{Field: "createdAt", Direction: pagination.Desc}},
		SearchableColumns: []string{"name", "slug"},
		FilterableColumns: map[string][]pagination.Operator{
			"id":   {pagination.Eq, pagination.In},
			"slug": {pagination.Eq, pagination.In},
		},
		DefaultLimit: limits.DefaultLimit,
		MaxLimit:     limits.MaxLimit,
	}
}

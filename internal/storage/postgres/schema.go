package postgres

import "article_cms/internal/pagination"

// Table mappings consumed by the list paginators.
var (
	OrganizationSchema = &pagination.Entity{
		Table:      "organizations",
		PrimaryKey: "id",
		Fields: map[string]pagination.Field{
			"id":        {Column: "id", Type: pagination.Int},
			"name":      {Column: "name", Type: pagination.String},
			"slug":      {Column: "slug", Type: pagination.String},
			"createdAt": {Column: "created_at", Type: pagination.Time},
			"updatedAt": {Column: "updated_at", Type: pagination.Time},
		},
	}

	UserSchema = &pagination.Entity{
		Table:      "users",
		PrimaryKey: "id",
		Fields: map[string]pagination.Field{
			"id":        {Column: "id", Type: pagination.Int},
			"name":      {Column: "name", Type: pagination.String},
			"createdAt": {Column: "created_at", Type: pagination.Time},
			"updatedAt": {Column: "updated_at", Type: pagination.Time},
		},
		Relations: map[string]pagination.Relation{
			"organization": {Entity: OrganizationSchema, LocalKey: "organization_id", ForeignKey: "id"},
		},
	}

	ArticleDraftSchema = &pagination.Entity{
		Table:      "article_drafts",
		PrimaryKey: "id",
		Fields: map[string]pagination.Field{
			"id":        {Column: "id", Type: pagination.Int},
			"title":     {Column: "title", Type: pagination.String},
			"content":   {Column: "content", Type: pagination.String},
			"updatedAt": {Column: "updated_at", Type: pagination.Time},
		},
	}

	ArticlePublishedSchema = &pagination.Entity{
		Table:      "article_published",
		PrimaryKey: "id",
		Fields: map[string]pagination.Field{
			"id":          {Column: "id", Type: pagination.Int},
			"title":       {Column: "title", Type: pagination.String},
			"publishedAt": {Column: "published_at", Type: pagination.Time},
		},
	}

	ArticleSchema = &pagination.Entity{
		Table:      "articles",
		PrimaryKey: "id",
		Fields: map[string]pagination.Field{
			"id":        {Column: "id", Type: pagination.Int},
			"createdAt": {Column: "created_at", Type: pagination.Time},
			"updatedAt": {Column: "updated_at", Type: pagination.Time},
		},
		Relations: map[string]pagination.Relation{
			"user":              {Entity: UserSchema, LocalKey: "user_id", ForeignKey: "id"},
			"draft":             {Entity: ArticleDraftSchema, LocalKey: "id", ForeignKey: "article_id"},
			"publishedVersions": {Entity: ArticlePublishedSchema, LocalKey: "id", ForeignKey: "article_id", Many: true},
		},
	}
)

package domain

import (
	"encoding/json"
	"time"
)

type Organization struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type User struct {
	ID             int64         `db:"id" json:"id"`
	Name           string        `db:"name" json:"name"`
	ThumbnailImage *string       `db:"thumbnail_image" json:"thumbnailImage"`
	OrganizationID int64         `db:"organization_id" json:"organizationId"`
	Organization   *Organization `db:"-" json:"organization,omitempty"`
	CreatedAt      time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time     `db:"updated_at" json:"updatedAt"`
}

// Article is the aggregate root. Draft is always present once the article
// has been created; PublishedVersions is ordered latest first.
type Article struct {
	ID                int64              `db:"id" json:"id"`
	UserID            int64              `db:"user_id" json:"userId"`
	User              *User              `db:"-" json:"user,omitempty"`
	Draft             *ArticleDraft      `db:"-" json:"draft"`
	PublishedVersions []ArticlePublished `db:"-" json:"publishedVersions"`
	CreatedAt         time.Time          `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time          `db:"updated_at" json:"updatedAt"`
}

// IsPublished reports whether at least one snapshot exists.
func (a *Article) IsPublished() bool {
	return len(a.PublishedVersions) > 0
}

// LatestPublished returns the newest snapshot, or nil when the article has
// never been published.
func (a *Article) LatestPublished() *ArticlePublished {
	if len(a.PublishedVersions) == 0 {
		return nil
	}
	return &a.PublishedVersions[0]
}

func (a Article) MarshalJSON() ([]byte, error) {
	type plain Article
	versions := a.PublishedVersions
	if versions == nil {
		versions = []ArticlePublished{}
	}
	p := plain(a)
	p.PublishedVersions = versions
	return json.Marshal(struct {
		plain
		IsPublished bool `json:"isPublished"`
	}{plain: p, IsPublished: len(versions) > 0})
}

type ArticleDraft struct {
	ID        int64     `db:"id" json:"id"`
	ArticleID int64     `db:"article_id" json:"articleId"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// ArticlePublished is an immutable snapshot of a draft.
type ArticlePublished struct {
	ID          int64     `db:"id" json:"id"`
	ArticleID   int64     `db:"article_id" json:"articleId"`
	Title       string    `db:"title" json:"title"`
	Content     string    `db:"content" json:"content"`
	PublishedAt time.Time `db:"published_at" json:"publishedAt"`
}

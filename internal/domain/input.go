package domain

type NewArticle struct {
	UserID  int64  `json:"userId" validate:"required,gt=0"`
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content"`
}

// DraftPatch carries a partial draft update. Nil fields are left untouched.
type DraftPatch struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=100"`
	Content *string `json:"content"`
}

func (p DraftPatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil
}

type NewUser struct {
	Name           string  `json:"name" validate:"required,max=100"`
	ThumbnailImage *string `json:"thumbnailImage" validate:"omitempty,max=255"`
	OrganizationID int64   `json:"organizationId" validate:"required,gt=0"`
}

// UserPatch carries a partial user update. ThumbnailImage may be set to
// null to clear it.
type UserPatch struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=100"`
	ThumbnailImage Nullable[string] `json:"thumbnailImage" validate:"omitempty,max=255"`
	OrganizationID *int64           `json:"organizationId" validate:"omitempty,gt=0"`
}

func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && !p.ThumbnailImage.Set && p.OrganizationID == nil
}

type NewOrganization struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Slug        string  `json:"slug" validate:"required,slug"`
	Description *string `json:"description"`
}

type OrganizationPatch struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Slug        *string          `json:"slug" validate:"omitempty,slug"`
	Description Nullable[string] `json:"description"`
}

func (p OrganizationPatch) IsEmpty() bool {
	return p.Name == nil && p.Slug == nil && !p.Description.Set
}

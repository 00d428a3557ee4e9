package domain

import "fmt"

// PublishStatus narrows an article listing by derived publication state.
type PublishStatus string

const (
	PublishStatusAll       PublishStatus = "all"
	PublishStatusDraft     PublishStatus = "draft"
	PublishStatusPublished PublishStatus = "published"
)

func ParsePublishStatus(s string) (PublishStatus, error) {
	switch PublishStatus(s) {
	case "", PublishStatusAll:
		return PublishStatusAll, nil
	case PublishStatusDraft, PublishStatusPublished:
		return PublishStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrBadQuery, s)
}

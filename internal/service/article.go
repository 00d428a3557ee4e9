package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"article_cms/internal/domain"
	"article_cms/internal/pagination"
)

const publishEventTimeout = 5 * time.Second

// ArticleService owns the draft/publish lifecycle of articles.
type ArticleService struct {
	articles  ArticleStore
	txManager TransactionManager
	publisher Publisher
	paginator *pagination.Paginator
	logger    *slog.Logger
}

// NewArticleService wires the service. publisher may be nil, in which case
// no publish events are emitted.
func NewArticleService(
	articles ArticleStore,
	txManager TransactionManager,
	publisher Publisher,
	paginator *pagination.Paginator,
	logger *slog.Logger,
) *ArticleService {
	return &ArticleService{
		articles:  articles,
		txManager: txManager,
		publisher: publisher,
		paginator: paginator,
		logger:    logger.With("component", "articles"),
	}
}

// Create stores a new article together with its initial draft.
func (s *ArticleService) Create(ctx context.Context, input domain.NewArticle) (*domain.Article, error) {
	if err := domain.Validate(input); err != nil {
		return nil, err
	}

	var articleID int64
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		article, err := s.articles.Create(txCtx, input.UserID)
		if err != nil {
			return fmt.Errorf("create article: %w", err)
		}

		if _, err := s.articles.CreateDraft(txCtx, article.ID, input.Title, input.Content); err != nil {
			return fmt.Errorf("create draft: %w", err)
		}

		articleID = article.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("article created", "article_id", articleID, "user_id", input.UserID)

	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}

func (s *ArticleService) GetOne(ctx context.Context, id int64) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return article, nil
}

// ListAll pages through the articles of one organization. The query must
// carry filter.user.organization.id.
func (s *ArticleService) ListAll(ctx context.Context, q pagination.Query, status domain.PublishStatus) (*pagination.Paginated[domain.Article], error) {
	if !q.HasFilter(articleScopeFilter) {
		return nil, fmt.Errorf("%w: filter.%s is required", domain.ErrBadQuery, articleScopeFilter)
	}

	var predicates []pagination.Predicate
	switch status {
	case domain.PublishStatusPublished:
		predicates = append(predicates, pagination.Exists(publishedVersionsRelation))
	case domain.PublishStatusDraft:
		predicates = append(predicates, pagination.NotExists(publishedVersionsRelation))
	}

	plan, err := s.paginator.Plan(q, predicates...)
	if err != nil {
		return nil, err
	}

	total, articles, err := s.articles.List(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return pagination.NewPaginated(plan, total, articles), nil
}

func (s *ArticleService) GetDraft(ctx context.Context, articleID int64) (*domain.ArticleDraft, error) {
	draft, err := s.articles.GetDraft(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("get draft of article %d: %w", articleID, err)
	}
	return draft, nil
}

// UpdateDraft applies only the fields present in patch.
func (s *ArticleService) UpdateDraft(ctx context.Context, articleID int64, patch domain.DraftPatch) (*domain.ArticleDraft, error) {
	if err := domain.Validate(patch); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return s.GetDraft(ctx, articleID)
	}

	draft, err := s.articles.UpdateDraft(ctx, articleID, patch)
	if err != nil {
		return nil, fmt.Errorf("update draft of article %d: %w", articleID, err)
	}

	s.logger.Debug("draft updated", "article_id", articleID)
	return draft, nil
}

// Publish appends a snapshot of the current draft to the article history.
func (s *ArticleService) Publish(ctx context.Context, articleID int64) (*domain.ArticlePublished, error) {
	var snapshot *domain.ArticlePublished
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		draft, err := s.articles.GetDraftForUpdate(txCtx, articleID)
		if err != nil {
			return fmt.Errorf("lock draft of article %d: %w", articleID, err)
		}

		snapshot, err = s.articles.CreatePublished(txCtx, articleID, draft.Title, draft.Content)
		if err != nil {
			return fmt.Errorf("create snapshot: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("article published",
		"article_id", articleID,
		"snapshot_id", snapshot.ID,
	)

	// The snapshot is committed; a client that hangs up now must not drop the event.
	eventCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishEventTimeout)
	defer cancel()
	s.notifyPublished(eventCtx, articleID, snapshot)

	return snapshot, nil
}

// notifyPublished runs after commit. A broker failure is logged only: the
// snapshot already exists and failing here would invite a duplicate publish.
func (s *ArticleService) notifyPublished(ctx context.Context, articleID int64, snapshot *domain.ArticlePublished) {
	if s.publisher == nil {
		return
	}

	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		s.logger.Warn("load article for publish event", "article_id", articleID, "error", err)
		return
	}

	if err := s.publisher.PublishArticle(ctx, article, snapshot); err != nil {
		s.logger.Error("emit publish event", "article_id", articleID, "error", err)
	}
}

// GetPublishedVersions returns the history latest first. An article that was
// never published yields an empty slice.
func (s *ArticleService) GetPublishedVersions(ctx context.Context, articleID int64) ([]domain.ArticlePublished, error) {
	if err := s.ensureExists(ctx, articleID); err != nil {
		return nil, err
	}

	versions, err := s.articles.ListPublished(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list published versions: %w", err)
	}
	return versions, nil
}

func (s *ArticleService) GetLatestPublished(ctx context.Context, articleID int64) (*domain.ArticlePublished, error) {
	if err := s.ensureExists(ctx, articleID); err != nil {
		return nil, err
	}

	latest, err := s.articles.LatestPublished(ctx, articleID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("article %d: %w", articleID, domain.ErrNoPublishedVersion)
	}
	if err != nil {
		return nil, fmt.Errorf("get latest published version: %w", err)
	}
	return latest, nil
}

// Remove deletes the article with its draft and history. A missing id is
// not an error; it reports zero affected rows.
func (s *ArticleService) Remove(ctx context.Context, articleID int64) (int64, error) {
	affected, err := s.articles.Delete(ctx, articleID)
	if err != nil {
		return 0, fmt.Errorf("delete article %d: %w", articleID, err)
	}
	if affected > 0 {
		s.logger.Info("article removed", "article_id", articleID)
	}
	return affected, nil
}

func (s *ArticleService) ensureExists(ctx context.Context, articleID int64) error {
	exists, err := s.articles.Exists(ctx, articleID)
	if err != nil {
		return fmt.Errorf("check article %d: %w", articleID, err)
	}
	if !exists {
		return fmt.Errorf("article %d: %w", articleID, domain.ErrNotFound)
	}
	return nil
}

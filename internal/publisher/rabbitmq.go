package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"article_cms/internal/domain"
)

const ActionPublished = "published"

// RabbitMQ emits article lifecycle events to a durable direct exchange.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger = logger.With("component", "publisher")
	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// ArticleMessage is the JSON body of a publish event. Snapshot is the
// version that was just appended; Article carries the aggregate after it.
type ArticleMessage struct {
	Action    string                  `json:"action"`
	ArticleID int64                   `json:"articleId"`
	Snapshot  domain.ArticlePublished `json:"snapshot"`
	Article   *domain.Article         `json:"article,omitempty"`
	Versions  int                     `json:"versions"`
	Timestamp time.Time               `json:"timestamp"`
}

func (r *RabbitMQ) PublishArticle(ctx context.Context, article *domain.Article, snapshot *domain.ArticlePublished) error {
	msg := ArticleMessage{
		Action:    ActionPublished,
		ArticleID: snapshot.ArticleID,
		Snapshot:  *snapshot,
		Article:   article,
		Timestamp: time.Now().UTC(),
	}
	if article != nil {
		msg.Versions = len(article.PublishedVersions)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	messageID := uuid.NewString()
	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			MessageId:    messageID,
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Type:         "article." + ActionPublished,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published article event",
		"article_id", snapshot.ArticleID,
		"snapshot_id", snapshot.ID,
		"message_id", messageID,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

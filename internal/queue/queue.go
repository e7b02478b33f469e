package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/hashvault-io/hashvault-core/internal/config"
	"github.com/hashvault-io/hashvault-core/internal/observability/metrics"
)

const publishTimeout = 5 * time.Second

// Routing keys for balance-affecting events consumed by downstream
// collaborators (notification service, admin tooling).
const (
	RoutingKeyBlockMined          = "mining.block_mined"
	RoutingKeyRewardClaimed       = "mining.reward_claimed"
	RoutingKeyWithdrawalRequested = "gateway.withdrawal_requested"
)

type BlockMinedEvent struct {
	Height         int64     `json:"height"`
	Reward         int64     `json:"reward"`
	TotalHashPower int64     `json:"total_hash_power"`
	Participants   int       `json:"participants"`
	MinedAt        time.Time `json:"mined_at"`
}

type RewardClaimedEvent struct {
	AccountID string    `json:"account_id"`
	Amount    int64     `json:"amount"`
	Rows      int64     `json:"rows"`
	ClaimedAt time.Time `json:"claimed_at"`
}

type WithdrawalRequestedEvent struct {
	AccountID string `json:"account_id"`
	EntryID   string `json:"entry_id"`
	Amount    int64  `json:"amount"`
	Fee       int64  `json:"fee"`
	Address   string `json:"address"`
}

// QueueManager publishes domain events to a topic exchange. When the queue
// is disabled in config, publishes are dropped with a debug log so the core
// can run without a broker.
type QueueManager struct {
	cfg     *config.QueueConfig
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	if !cfg.Enabled {
		return &QueueManager{cfg: cfg}, nil
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	return &QueueManager{
		cfg:     cfg,
		conn:    conn,
		channel: channel,
	}, nil
}

func (qm *QueueManager) Publish(ctx context.Context, routingKey string, event any) error {
	if !qm.cfg.Enabled {
		log.Ctx(ctx).Debug().Str("routing_key", routingKey).Msg("queue disabled, dropping event")
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = qm.channel.PublishWithContext(
		ctx,
		qm.cfg.Exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		metrics.RecordQueueSendError()
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}

	return nil
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() {
	log.Info().Msg("Shutting down queue manager")

	if qm.channel != nil {
		if err := qm.channel.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close queue channel")
		}
	}
	if qm.conn != nil {
		if err := qm.conn.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close queue connection")
		}
	}
}

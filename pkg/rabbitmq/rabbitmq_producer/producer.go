package rabbitmq_producer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"homenest/pkg/rabbitmq/rabbitmq_common"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublisherClosed = errors.New("producer: publisher is closed")

// PublisherConfig configures a publisher bound to one exchange.
type PublisherConfig struct {
	ExchangeName       string // empty string publishes to the default exchange
	ExchangeType       string // direct, fanout, topic, headers
	DurableExchange    bool
	AutoDeleteExchange bool
	InternalExchange   bool
	ExchangeArgs       amqp.Table

	// When false the publisher relies on the exchange already existing.
	DeclareExchangeIfMissing bool

	Logger rabbitmq_common.Logger
}

// Validate checks that a declared exchange is fully described.
func (c PublisherConfig) Validate() error {
	if c.DeclareExchangeIfMissing && c.ExchangeName == "" && c.ExchangeType != "" {
		return fmt.Errorf("producer: exchange name is required if ExchangeType is specified and DeclareExchangeIfMissing is true")
	}
	if c.DeclareExchangeIfMissing && c.ExchangeType == "" && c.ExchangeName != "" {
		return fmt.Errorf("producer: exchange type is required if ExchangeName is specified and DeclareExchangeIfMissing is true")
	}
	return nil
}

// ChannelSource hands out channels on a live connection. *rabbitmq_common.ConnectionManager implements it.
type ChannelSource interface {
	GetChannel() (*amqp.Connection, *amqp.Channel, error)
}

// Publisher publishes messages on its own channel of the shared connection.
// A channel lost to a reconnect is reopened on the next Publish.
type Publisher struct {
	config     PublisherConfig
	source     ChannelSource
	connection *amqp.Connection
	channel    *amqp.Channel
	closed     bool
	mu         sync.Mutex // amqp channels are not safe for concurrent publishing

	Logger rabbitmq_common.Logger
}

// NewPublisher opens a channel and declares the exchange when configured to.
func NewPublisher(cfg PublisherConfig, source ChannelSource) (*Publisher, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = rabbitmq_common.NewNoopLogger()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Publisher{
		config: cfg,
		source: source,
		Logger: logger,
	}
	if err := p.openChannel(); err != nil {
		return nil, err
	}

	if !cfg.DeclareExchangeIfMissing && cfg.ExchangeName != "" {
		p.Logger.Debug("Assuming exchange already exists", "name", cfg.ExchangeName)
	}
	return p, nil
}

// openChannel takes a fresh channel from the source and redeclares the exchange on it.
func (p *Publisher) openChannel() error {
	conn, ch, err := p.source.GetChannel()
	if err != nil {
		return fmt.Errorf("producer: failed to get channel from manager: %w", err)
	}
	p.Logger.Debug("Channel obtained from ConnectionManager")

	if p.config.DeclareExchangeIfMissing {
		p.Logger.Debug("Declaring exchange", "name", p.config.ExchangeName, "type", p.config.ExchangeType)
		err = ch.ExchangeDeclare(
			p.config.ExchangeName,
			p.config.ExchangeType,
			p.config.DurableExchange,
			p.config.AutoDeleteExchange,
			p.config.InternalExchange,
			false, // no-wait
			p.config.ExchangeArgs,
		)
		if err != nil {
			_ = ch.Close()
			return fmt.Errorf("producer: failed to declare exchange '%s': %w", p.config.ExchangeName, err)
		}
	}

	p.connection = conn
	p.channel = ch
	return nil
}

func (p *Publisher) stale() bool {
	return p.channel == nil || p.connection == nil || p.connection.IsClosed() || p.channel.IsClosed()
}

// Publish sends one message with the given routing key.
func (p *Publisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}
	if p.stale() {
		p.Logger.Warn("Producer: channel is gone, reopening")
		p.connection, p.channel = nil, nil
		if err := p.openChannel(); err != nil {
			return fmt.Errorf("producer: not connected: %w", err)
		}
	}

	err := p.channel.PublishWithContext(
		ctx,
		p.config.ExchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("producer: failed to publish message: %w", err)
	}
	return nil
}

// Close closes the publisher channel. The connection belongs to the ConnectionManager.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Logger.Debug("Producer: Closing...")
	p.closed = true
	var firstErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.Logger.Error(err, "Error closing channel")
			firstErr = err
		}
		p.channel = nil
	}
	p.Logger.Info("Producer closed.")
	return firstErr
}

package rabbitmq

import (
	"fmt"
	"time"

	amqp "github.com/streadway/amqp"

	"tamrah/internal/logging"
)

// Defaults for the catalog event topology.
const (
	DefaultExchange   = "catalog"
	DefaultAuditQueue = "catalog_audit"
)

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL      string
	Exchange string
}

// NewClient creates a new RabbitMQ client.
// It connects to RabbitMQ, opens a channel and declares the durable topic
// exchange that catalog events are published to.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Exchange == "" {
		cfg.Exchange = DefaultExchange
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange, // name
		"topic",      // kind
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	logging.Info().Str("exchange", cfg.Exchange).Msg("RabbitMQ client connected and exchange declared")

	return &Client{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
	}, nil
}

// Exchange returns the exchange events are published to.
func (c *Client) Exchange() string {
	return c.exchange
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// Publish sends a persistent JSON message with the given routing key.
func (c *Client) Publish(routingKey string, body []byte) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	err := c.channel.Publish(
		c.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Consume binds queue to every routing key matching pattern on the client's
// exchange and hands each delivery to handler. A handler error nacks the
// message without requeueing it, so a poison message cannot loop.
func (c *Client) Consume(queue, pattern string, handler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	q, err := c.channel.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	if err := c.channel.QueueBind(q.Name, pattern, c.exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue %s: %w", queue, err)
	}

	msgs, err := c.channel.Consume(
		q.Name, // queue
		"",     // consumer tag
		false,  // auto-ack
		false,  // exclusive
		false,  // no-local
		false,  // no-wait
		nil,    // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			if err := handler(msg); err != nil {
				logging.Error().Err(err).Uint64("delivery_tag", msg.DeliveryTag).Msg("Error processing message")
				if nackErr := msg.Nack(false, false); nackErr != nil {
					logging.Error().Err(nackErr).Uint64("delivery_tag", msg.DeliveryTag).Msg("Error nacking message")
				}
				continue
			}
			if ackErr := msg.Ack(false); ackErr != nil {
				logging.Error().Err(ackErr).Uint64("delivery_tag", msg.DeliveryTag).Msg("Error acking message")
			}
		}
	}()

	return nil
}

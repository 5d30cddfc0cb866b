package passwordresetemail

import (
	common "budgetsync/internal/core/domain/common"
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/rabbitmq/schema"
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

type consumer interface {
	Consume(
		queue, consumer string,
		autoAck, exclusive, noLocal, noWait bool,
		args amqp091.Table,
	) (<-chan amqp091.Delivery, error)
}

var errMalformedMessage = errors.New("malformed password reset email message")

// Consumer delivers queued password reset links with the given notifier.
// A failed delivery is requeued once and dropped after the second failure.
type Consumer struct {
	log      logging.Logger
	channel  consumer
	queue    string
	notifier user.PasswordResetNotifier
	timeout  time.Duration
}

func New(
	log logging.Logger,
	channel consumer,
	queue string,
	notifier user.PasswordResetNotifier,
	timeout time.Duration,
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	return &Consumer{log: log, channel: channel, queue: queue, notifier: notifier, timeout: timeout}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			c.process(delivery)
		}
	}()
	return nil
}

func (c *Consumer) process(delivery amqp091.Delivery) {
	err := c.handle(context.Background(), delivery.Body)
	switch {
	case err == nil:
		c.ack(delivery)
	case errors.Is(err, errMalformedMessage) || delivery.Redelivered:
		c.log.Error(
			context.Background(),
			"Password reset email dropped.",
			logging.Entry("redelivered", delivery.Redelivered),
			logging.Entry("err", err),
		)
		c.ack(delivery)
	default:
		c.log.Warning(context.Background(), "Password reset email requeued.", logging.Entry("err", err))
		if err := delivery.Nack(false, true); err != nil {
			c.log.Error(context.Background(), "Could not NACK AMQP message.", logging.Entry("err", err))
		}
	}
}

func (c *Consumer) handle(ctx context.Context, body []byte) error {
	message := schema.PasswordResetEmail{}
	if err := message.Unmarshal(body); err != nil {
		return errors.Join(errMalformedMessage, err)
	}
	link, err := url.Parse(message.Link)
	if err != nil {
		return errors.Join(errMalformedMessage, err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if err := c.notifier.SendPasswordResetLink(ctx, common.NewEmail(message.Recipient), *link); err != nil {
		return err
	}

	c.log.Info(
		ctx,
		"Password reset email has been sent.",
		logging.Entry("requestedAt", message.RequestedAt),
	)
	return nil
}

func (c *Consumer) ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(false); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}

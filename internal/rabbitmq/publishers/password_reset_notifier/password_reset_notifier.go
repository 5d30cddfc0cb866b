package passwordresetnotifier

import (
	c "budgetsync/internal/core/domain/common"
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	"budgetsync/internal/rabbitmq/schema"
	"context"
	"net/url"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	PublishWithContext(
		ctx context.Context,
		exchange string,
		key string,
		mandatory bool,
		immediate bool,
		msg amqp091.Publishing,
	) error
}

// RabbitMQ queues reset links for the mailer instead of sending them inline.
type RabbitMQ struct {
	log     logging.Logger
	channel publisher
	queue   string
	now     func() time.Time
}

func NewRabbitMQ(log logging.Logger, channel publisher, queue string, now func() time.Time) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &RabbitMQ{log: log, channel: channel, queue: queue, now: now}
}

func (n *RabbitMQ) SendPasswordResetLink(ctx context.Context, recipient c.Email, link url.URL) error {
	message := schema.PasswordResetEmail{
		Recipient:   string(recipient),
		Link:        link.String(),
		RequestedAt: n.now(),
	}
	body, err := message.Marshal()
	if err != nil {
		return err
	}

	err = n.channel.PublishWithContext(ctx, "", n.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    message.RequestedAt,
		Body:         body,
	})
	if err != nil {
		return err
	}
	n.log.Info(ctx, "AMQP message has been published.", logging.Entry("queue", n.queue))
	return nil
}

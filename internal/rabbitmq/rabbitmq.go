package rabbitmq

import (
	"budgetsync/internal/core/domain/logging"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const reconnectDelay = 3 * time.Second

// Connection redials the broker whenever the underlying AMQP connection is
// closed by anything other than Close.
type Connection struct {
	url    string
	log    logging.Logger
	lock   sync.RWMutex
	conn   *amqp.Connection
	closed atomic.Bool
}

func Dial(url string, log logging.Logger) (*Connection, error) {
	if log == nil {
		return nil, fmt.Errorf("log argument must not be nil")
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	c := &Connection{url: url, log: log, conn: conn}
	go c.watch()
	return c, nil
}

func (c *Connection) current() *amqp.Connection {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.conn
}

func (c *Connection) watch() {
	ctx := context.Background()
	for {
		reason, ok := <-c.current().NotifyClose(make(chan *amqp.Error, 1))
		if !ok || c.closed.Load() {
			c.log.Info(ctx, "RabbitMQ connection closed.")
			return
		}

		c.log.Warning(ctx, "RabbitMQ connection lost.", logging.Entry("reason", reason.Error()))
		for {
			time.Sleep(reconnectDelay)
			if c.closed.Load() {
				return
			}
			conn, err := amqp.Dial(c.url)
			if err != nil {
				c.log.Error(ctx, "RabbitMQ reconnect failed.", logging.Entry("err", err))
				continue
			}
			c.lock.Lock()
			c.conn = conn
			c.lock.Unlock()
			c.log.Info(ctx, "RabbitMQ reconnect success.")
			break
		}
	}
}

func (c *Connection) Close() error {
	c.closed.Store(true)
	return c.current().Close()
}

// Channel opens an AMQP channel that is reopened after the broker closes it.
func (c *Connection) Channel() (*Channel, error) {
	ch, err := c.current().Channel()
	if err != nil {
		return nil, err
	}

	channel := &Channel{conn: c, log: c.log, ch: ch}
	go channel.watch()
	return channel, nil
}

type Channel struct {
	conn   *Connection
	log    logging.Logger
	lock   sync.RWMutex
	ch     *amqp.Channel
	closed atomic.Bool
}

func (ch *Channel) current() *amqp.Channel {
	ch.lock.RLock()
	defer ch.lock.RUnlock()
	return ch.ch
}

func (ch *Channel) watch() {
	ctx := context.Background()
	for {
		reason, ok := <-ch.current().NotifyClose(make(chan *amqp.Error, 1))
		if ch.IsClosed() {
			return
		}
		if ok {
			ch.log.Warning(ctx, "RabbitMQ channel closed.", logging.Entry("reason", reason.Error()))
		}

		for {
			time.Sleep(reconnectDelay)
			if ch.IsClosed() {
				return
			}
			amqpChannel, err := ch.conn.current().Channel()
			if err != nil {
				ch.log.Error(ctx, "RabbitMQ channel recreate failed.", logging.Entry("err", err))
				continue
			}
			ch.lock.Lock()
			ch.ch = amqpChannel
			ch.lock.Unlock()
			ch.log.Info(ctx, "RabbitMQ channel recreate success.")
			break
		}
	}
}

// DeclareQueue declares a durable queue.
func (ch *Channel) DeclareQueue(name string) error {
	_, err := ch.current().QueueDeclare(name, true, false, false, false, nil)
	return err
}

func (ch *Channel) PublishWithContext(
	ctx context.Context,
	exchange string,
	key string,
	mandatory bool,
	immediate bool,
	msg amqp.Publishing,
) error {
	return ch.current().PublishWithContext(ctx, exchange, key, mandatory, immediate, msg)
}

// Consume keeps consuming across channel recreation. The returned channel is
// closed once Close has been called.
func (ch *Channel) Consume(
	queue, consumer string,
	autoAck, exclusive, noLocal, noWait bool,
	args amqp.Table,
) (<-chan amqp.Delivery, error) {
	deliveries := make(chan amqp.Delivery)

	go func() {
		defer close(deliveries)
		ctx := context.Background()
		for !ch.IsClosed() {
			d, err := ch.current().Consume(queue, consumer, autoAck, exclusive, noLocal, noWait, args)
			if err != nil {
				ch.log.Error(ctx, "Consume failed.", logging.Entry("err", err), logging.Entry("queue", queue))
				time.Sleep(reconnectDelay)
				continue
			}

			for msg := range d {
				deliveries <- msg
			}

			// The closed flag may be set right after the delivery channel ends.
			time.Sleep(reconnectDelay)
		}
		ch.log.Info(ctx, "Channel is closed, stop consuming.", logging.Entry("queue", queue))
	}()

	return deliveries, nil
}

func (ch *Channel) IsClosed() bool {
	return ch.closed.Load()
}

func (ch *Channel) Close() error {
	if ch.closed.Swap(true) {
		return amqp.ErrClosed
	}
	return ch.current().Close()
}

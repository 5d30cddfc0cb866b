package consumers

import (
	"budgetsync/internal/app/deps"
	dl "budgetsync/internal/core/domain/logging"
	passwordresetemail "budgetsync/internal/rabbitmq/consumers/password_reset_email"
	"context"
)

func initPasswordResetEmailConsumer(deps *deps.Deps) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqPasswordResetQueue
	if err := rabbitmqChannel.DeclareQueue(queue); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not create RabbitMQ queue.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	passwordResetEmailConsumer := passwordresetemail.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		deps.EmailSender,
		deps.Config.NotifierTimeout,
	)
	if err = passwordResetEmailConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

// InitConsumers starts the consumers that deliver queued emails through SES.
// The broker connection itself is released by deps.
func InitConsumers(deps *deps.Deps) func() {
	deps.InitRabbitmqConnection()
	return initPasswordResetEmailConsumer(deps)
}

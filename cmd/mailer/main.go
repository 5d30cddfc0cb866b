package main

import (
	"budgetsync/internal/app/consumers"
	"budgetsync/internal/app/deps"
	"budgetsync/internal/core/domain/logging"
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	defer shutdownDeps()

	shutdownConsumers := consumers.InitConsumers(deps)
	defer shutdownConsumers()

	stopCh, closeCh := createChannel()
	defer closeCh()

	deps.Logger.Info(
		context.Background(),
		"Mailer is waiting for password reset emails.",
		logging.Entry("queue", deps.Config.RabbitmqPasswordResetQueue),
	)
	<-stopCh
	deps.Logger.Info(context.Background(), "Stopping mailer.")
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}

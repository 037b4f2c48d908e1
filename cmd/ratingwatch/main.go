// Command ratingwatch prints rating events published by the API server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"servicehub/config"
	"servicehub/services/notification"
	"servicehub/utils"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	utils.InitRedis()
	client := utils.GetEventsClient()
	if client == nil {
		logger.Fatal("ratingwatch: REDIS_ADDR must point at a reachable Redis")
	}
	defer utils.CloseRedis()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	channel := config.AppConfig.RatingEventsChannel
	events, err := notification.Subscribe(ctx, client, channel)
	if err != nil {
		logger.Fatal("ratingwatch: subscribe failed", zap.Error(err))
	}
	logger.Info("ratingwatch: listening", zap.String("channel", channel))

	for event := range events {
		logger.Info("rating event",
			zap.String("type", string(event.Type)),
			zap.String("serviceId", event.ServiceID),
			zap.String("bookingId", event.BookingID),
			zap.Float64("rating", event.Rating),
			zap.Time("at", event.At),
		)
	}
}

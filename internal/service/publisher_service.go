package service

import (
	"context"
	"encoding/json"

	"golexai-be/internal/pkg/logger"
	"golexai-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IPublisherService emits usage events on the in-process telemetry bus.
// Publishing is best-effort: metering must never fail a user request.
type IPublisherService interface {
	PublishUsage(ctx context.Context, event events.UsageEvent)
}

type publisherService struct {
	pubSub *gochannel.GoChannel
	log    logger.ILogger
}

func NewPublisherService(pubSub *gochannel.GoChannel, log logger.ILogger) IPublisherService {
	return &publisherService{
		pubSub: pubSub,
		log:    log,
	}
}

func (s *publisherService) PublishUsage(ctx context.Context, event events.UsageEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Warn("publisher", "failed to marshal usage event", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(events.UsageTopic, msg); err != nil {
		s.log.Warn("publisher", "failed to publish usage event", map[string]interface{}{
			"error":       err.Error(),
			"metric_type": event.MetricType,
		})
	}
}

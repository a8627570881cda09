package service

import (
	"context"
	"encoding/json"
	"time"

	"golexai-be/internal/entity"
	"golexai-be/internal/pkg/logger"
	"golexai-be/internal/repository/unitofwork"
	"golexai-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the usage topic and persists metric rows.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, events.UsageTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var event events.UsageEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.log.Error("consumer", "failed to unmarshal usage event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	metric := &entity.UsageMetric{
		Id:         uuid.New(),
		UserId:     event.UserId,
		MetricType: entity.MetricType(event.MetricType),
		Value:      event.Value,
		Metadata:   event.Metadata,
		CreatedAt:  occurredAt,
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UsageMetricRepository().Create(ctx, metric); err != nil {
		cs.log.Error("consumer", "failed to persist usage metric", map[string]interface{}{
			"error":       err.Error(),
			"metric_type": event.MetricType,
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}

package service

import (
	"context"
	"log"
	"time"

	"hongling-sanctuary-be/internal/dto"
	"hongling-sanctuary-be/internal/entity"
	"hongling-sanctuary-be/internal/repository/specification"
	"hongling-sanctuary-be/internal/repository/unitofwork"
	"hongling-sanctuary-be/pkg/bazi"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
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
	var payload dto.PublishChartCreatedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Persisting narrative for ChartId: %s", payload.ChartId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	// chart must exist before the narrative FK can resolve
	chart, err := uow.BaziChartRepository().FindOne(ctx, specification.ByID{ID: payload.ChartId})
	if err != nil {
		log.Printf("[ERROR] Failed to get chart %s: %v", payload.ChartId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if chart == nil {
		log.Printf("[ERROR] Chart not found: %s", payload.ChartId)
		msg.Ack() // Chart deleted? Ack.
		return
	}

	report := entity.NarrativeReport{
		Id:        uuid.New(),
		ChartId:   payload.ChartId,
		Tone:      bazi.NormalizeTone(payload.Tone),
		Narrative: payload.Narrative,
		CreatedAt: time.Now(),
	}
	if err := uow.NarrativeReportRepository().Create(ctx, &report); err != nil {
		log.Printf("[ERROR] Failed to save narrative for chart %s: %v", payload.ChartId, err)
		msg.Nack()
		return
	}

	msg.Ack()
}

package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"supernote-be/internal/dto"
	"supernote-be/internal/entity"
	"supernote-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
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
	var payload dto.PublishActivityMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal activity message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	logEntry := &entity.ActivityLog{
		Id:        uuid.New(),
		UserId:    payload.UserId,
		Action:    payload.Action,
		Subject:   payload.Subject,
		Detail:    payload.Detail,
		CreatedAt: time.Now(),
	}

	if err := uow.ActivityLogRepository().Create(ctx, logEntry); err != nil {
		log.Printf("[ERROR] Failed to persist activity log: %v", err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}

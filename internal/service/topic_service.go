package service

import (
	"context"
	"time"

	"supernote-be/internal/dto"
	"supernote-be/internal/entity"
	"supernote-be/internal/pkg/serverutils"
	"supernote-be/internal/repository/specification"
	"supernote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITopicService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTopicRequest) (*dto.TopicResponse, error)
	List(ctx context.Context, userId uuid.UUID, teamId *uuid.UUID) ([]*dto.TopicResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTopicRequest) (*dto.TopicResponse, error)
	Delete(ctx context.Context, userId, topicId uuid.UUID) error
}

type topicService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTopicService(uowFactory unitofwork.RepositoryFactory) ITopicService {
	return &topicService{
		uowFactory: uowFactory,
	}
}

func toTopicResponse(t *entity.Topic) *dto.TopicResponse {
	return &dto.TopicResponse{
		Id:        t.Id,
		Name:      t.Name,
		TeamId:    t.TeamId,
		CreatedAt: t.CreatedAt,
	}
}

func (s *topicService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTopicRequest) (*dto.TopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if req.TeamId != nil {
		team, err := uow.TeamRepository().FindOne(ctx, specification.ByID{ID: *req.TeamId})
		if err != nil {
			return nil, err
		}
		if team == nil {
			return nil, serverutils.NotFound("Team not found")
		}
		member, err := uow.TeamRepository().FindMember(ctx, *req.TeamId, userId)
		if err != nil {
			return nil, err
		}
		if member == nil && team.OwnerId != userId {
			return nil, serverutils.Forbidden("Not a member of this team")
		}
	}

	topic := &entity.Topic{
		Id:        uuid.New(),
		Name:      req.Name,
		TeamId:    req.TeamId,
		UserId:    userId,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uow.TopicRepository().Create(ctx, topic); err != nil {
		return nil, err
	}

	return toTopicResponse(topic), nil
}

// List returns the caller's own topics, or a team's topics when teamId is
// set. Team listing requires membership.
func (s *topicService) List(ctx context.Context, userId uuid.UUID, teamId *uuid.UUID) ([]*dto.TopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	scope := specification.Specification(specification.OwnedBy{UserId: userId})
	if teamId != nil {
		team, err := uow.TeamRepository().FindOne(ctx, specification.ByID{ID: *teamId})
		if err != nil {
			return nil, err
		}
		if team == nil {
			return nil, serverutils.NotFound("Team not found")
		}
		member, err := uow.TeamRepository().FindMember(ctx, *teamId, userId)
		if err != nil {
			return nil, err
		}
		if member == nil && team.OwnerId != userId {
			return nil, serverutils.Forbidden("Not a member of this team")
		}
		scope = specification.ByTeamId{TeamId: *teamId}
	}

	topics, err := uow.TopicRepository().FindAll(ctx,
		scope,
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TopicResponse, len(topics))
	for i, t := range topics {
		responses[i] = toTopicResponse(t)
	}
	return responses, nil
}

func (s *topicService) findOwnedTopic(ctx context.Context, uow unitofwork.UnitOfWork, userId, topicId uuid.UUID) (*entity.Topic, error) {
	topic, err := uow.TopicRepository().FindOne(ctx, specification.ByID{ID: topicId})
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, serverutils.NotFound("Topic not found")
	}
	if topic.UserId != userId {
		return nil, serverutils.Forbidden("Topic belongs to another user")
	}
	return topic, nil
}

func (s *topicService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTopicRequest) (*dto.TopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	topic, err := s.findOwnedTopic(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	topic.Name = req.Name
	topic.UpdatedAt = time.Now()

	if err := uow.TopicRepository().Update(ctx, topic); err != nil {
		return nil, err
	}

	return toTopicResponse(topic), nil
}

// Delete removes the topic and its notes in one transaction.
func (s *topicService) Delete(ctx context.Context, userId, topicId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.findOwnedTopic(ctx, uow, userId, topicId); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().DeleteAllByTopicId(ctx, topicId); err != nil {
		return err
	}
	if err := uow.TopicRepository().Delete(ctx, topicId); err != nil {
		return err
	}

	return uow.Commit()
}

package service

import (
	"context"
	"strings"
	"time"

	"supernote-be/internal/dto"
	"supernote-be/internal/entity"
	"supernote-be/internal/pkg/logger"
	"supernote-be/internal/pkg/serverutils"
	"supernote-be/internal/repository/specification"
	"supernote-be/internal/repository/unitofwork"
	"supernote-be/pkg/events"
	pktNats "supernote-be/pkg/nats"

	"github.com/google/uuid"
)

type ISupernoteService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSupernoteRequest) (map[string]interface{}, error)
	List(ctx context.Context, userId uuid.UUID) ([]map[string]interface{}, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
}

type supernoteService struct {
	uowFactory       unitofwork.RepositoryFactory
	aiService        IAiService
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewSupernoteService(
	uowFactory unitofwork.RepositoryFactory,
	aiService IAiService,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ISupernoteService {
	return &supernoteService{
		uowFactory:       uowFactory,
		aiService:        aiService,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

// Create combines the selected notes into one supernote: summaries are
// space-joined and re-summarized, headers and providers are comma-joined,
// and the topic is taken from the first note.
func (s *supernoteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSupernoteRequest) (map[string]interface{}, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByIDs{IDs: req.NoteIds},
		specification.OwnedBy{UserId: userId},
		specification.RegularOnly{},
	)
	if err != nil {
		return nil, err
	}
	if len(notes) != len(req.NoteIds) {
		return nil, serverutils.NotFound("One or more notes not found")
	}

	sums := make([]string, len(notes))
	headers := make([]string, len(notes))
	providers := make([]string, len(notes))
	for i, n := range notes {
		sums[i] = n.Sum
		headers[i] = n.Header
		providers[i] = n.Provider
	}

	combinedSum := strings.Join(sums, " ")
	combinedHeader := strings.Join(headers, ", ")
	combinedProvider := strings.Join(providers, ", ")
	combinedTopic := notes[0].Topic

	supernoteSum, err := s.aiService.CombineAndSummarize(ctx, combinedTopic, combinedSum)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	supernote := &entity.Note{
		Id:         uuid.New(),
		Header:     combinedHeader,
		Topic:      combinedTopic,
		Sum:        supernoteSum,
		Provider:   combinedProvider,
		IsSuper:    true,
		UserId:     userId,
		CreatedAt:  now,
		LastUpdate: now,
	}

	if err := uow.NoteRepository().Create(ctx, supernote); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.New(events.TypeSupernoteCreated, map[string]interface{}{
			"supernote_id": supernote.Id,
			"user_id":      userId,
			"note_count":   len(notes),
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("supernote_service", "failed to publish supernote event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return toLegacyDocument(supernote), nil
}

func (s *supernoteService) List(ctx context.Context, userId uuid.UUID) ([]map[string]interface{}, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	supernotes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedBy{UserId: userId},
		specification.SupernotesOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	docs := make([]map[string]interface{}, len(supernotes))
	for i, n := range supernotes {
		docs[i] = toLegacyDocument(n)
	}
	return docs, nil
}

func (s *supernoteService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	supernote, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.SupernotesOnly{},
	)
	if err != nil {
		return err
	}
	if supernote == nil {
		return serverutils.NotFound("Supernote not found")
	}
	if supernote.UserId != userId {
		return serverutils.Forbidden("Supernote belongs to another user")
	}

	return uow.NoteRepository().Delete(ctx, id)
}

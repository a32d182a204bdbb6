package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"supernote-be/internal/dto"
	"supernote-be/internal/entity"
	"supernote-be/internal/pkg/logger"
	"supernote-be/internal/pkg/serverutils"
	"supernote-be/internal/repository/specification"
	"supernote-be/internal/repository/unitofwork"
	"supernote-be/pkg/aiparse"
	"supernote-be/pkg/events"
	pktNats "supernote-be/pkg/nats"
	"supernote-be/pkg/ocr"

	"github.com/google/uuid"
)

// legacyDateLayout is the dd/mm/yyyy timestamp format the note documents
// have always used.
const legacyDateLayout = "02/01/2006 15:04:05"

type INoteService interface {
	SummarizeAndSave(ctx context.Context, userId uuid.UUID, req *dto.SummarizeAndSaveRequest) (*dto.NoteResponse, error)
	FindByHeader(ctx context.Context, userId uuid.UUID, header string) (map[string]interface{}, error)
	Topics(ctx context.Context, userId uuid.UUID) ([]string, error)
	FindByTopic(ctx context.Context, userId uuid.UUID, topic string) ([]map[string]interface{}, error)
	Favorites(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, userId, id uuid.UUID) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
	ToggleFavorite(ctx context.Context, userId, id uuid.UUID) (*dto.NoteResponse, error)
	IngestDocument(ctx context.Context, userId uuid.UUID, filePath, filename, engine, language string) (*dto.IngestDocumentResponse, error)
	FactCheckNote(ctx context.Context, userId, noteId uuid.UUID) (*dto.FactCheckNoteResponse, error)
	ListFactChecks(ctx context.Context, userId, noteId uuid.UUID) ([]*dto.FactCheckNoteResponse, error)
	Activity(ctx context.Context, userId uuid.UUID) ([]*dto.ActivityLogResponse, error)
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	aiService        IAiService
	ocrPipeline      *ocr.Pipeline
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	aiService IAiService,
	ocrPipeline *ocr.Pipeline,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		aiService:        aiService,
		ocrPipeline:      ocrPipeline,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (s *noteService) publishActivity(ctx context.Context, userId uuid.UUID, action, subject, detail string) {
	if s.publisherService == nil {
		return
	}
	msg := dto.PublishActivityMessage{
		UserId:  userId,
		Action:  action,
		Subject: subject,
		Detail:  detail,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("note_service", "failed to publish activity", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
	}
}

func (s *noteService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events.New(eventType, data)); err != nil {
		s.logger.Warn("note_service", "failed to publish domain event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:         n.Id,
		Header:     n.Header,
		Topic:      n.Topic,
		Sum:        n.Sum,
		Provider:   n.Provider,
		Favorite:   n.Favorite,
		IsSuper:    n.IsSuper,
		TopicId:    n.TopicId,
		CreatedAt:  n.CreatedAt,
		LastUpdate: n.LastUpdate,
	}
}

// toLegacyDocument renders a note in the historical document shape clients
// still consume: Mongo-style field names and dd/mm/yyyy timestamps.
func toLegacyDocument(n *entity.Note) map[string]interface{} {
	doc := map[string]interface{}{
		"_id":        n.Id,
		"Header":     n.Header,
		"Topic":      n.Topic,
		"Sum":        n.Sum,
		"Provider":   n.Provider,
		"DateTime":   n.CreatedAt.Format(legacyDateLayout),
		"LastUpdate": n.LastUpdate.Format(legacyDateLayout),
	}
	return serverutils.StringifyIDs(doc)
}

func (s *noteService) SummarizeAndSave(ctx context.Context, userId uuid.UUID, req *dto.SummarizeAndSaveRequest) (*dto.NoteResponse, error) {
	summary, err := s.aiService.Condense(ctx, req.Text, req.OptionPrompt)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	note := &entity.Note{
		Id:         uuid.New(),
		Header:     req.Header,
		Topic:      req.Topic,
		Sum:        summary,
		Provider:   req.Provider,
		UserId:     userId,
		CreatedAt:  now,
		LastUpdate: now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	s.publishActivity(ctx, userId, "note.created", note.Header, "Summarized and saved")
	s.publishEvent(ctx, events.TypeNoteCreated, map[string]interface{}{
		"note_id": note.Id,
		"user_id": userId,
		"header":  note.Header,
	})

	return toNoteResponse(note), nil
}

func (s *noteService) FindByHeader(ctx context.Context, userId uuid.UUID, header string) (map[string]interface{}, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.OwnedBy{UserId: userId},
		specification.ByHeader{Header: header},
		specification.RegularOnly{},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NotFound("Note not found")
	}

	return toLegacyDocument(note), nil
}

// Topics lists the distinct topic names across the caller's notes.
func (s *noteService) Topics(ctx context.Context, userId uuid.UUID) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NoteRepository().DistinctTopics(ctx, userId)
}

func (s *noteService) Favorites(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedBy{UserId: userId},
		specification.FavoritesOnly{},
		specification.OrderBy{Field: "last_update", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		responses[i] = toNoteResponse(n)
	}
	return responses, nil
}

func (s *noteService) FindByTopic(ctx context.Context, userId uuid.UUID, topic string) ([]map[string]interface{}, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedBy{UserId: userId},
		specification.ByTopicName{Topic: topic},
		specification.RegularOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	docs := make([]map[string]interface{}, len(notes))
	for i, n := range notes {
		docs[i] = toLegacyDocument(n)
	}
	return docs, nil
}

func (s *noteService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NotFound("Note not found")
	}
	if note.UserId != userId {
		return nil, serverutils.Forbidden("Note belongs to another user")
	}
	return note, nil
}

func (s *noteService) Show(ctx context.Context, userId, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := s.findOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Header != "" {
		note.Header = req.Header
	}
	if req.Topic != "" {
		note.Topic = req.Topic
	}
	if req.Sum != "" {
		note.Sum = req.Sum
	}
	note.LastUpdate = time.Now()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	s.publishActivity(ctx, userId, "note.updated", note.Header, "")

	return toNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	// Fact checks go with the note, in one transaction.
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.FactCheckRepository().DeleteAllByNoteId(ctx, id); err != nil {
		return err
	}
	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishActivity(ctx, userId, "note.deleted", note.Header, "")
	s.publishEvent(ctx, events.TypeNoteDeleted, map[string]interface{}{
		"note_id": id,
		"user_id": userId,
	})

	return nil
}

func (s *noteService) ToggleFavorite(ctx context.Context, userId, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	note.Favorite = !note.Favorite
	note.LastUpdate = time.Now()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	return toNoteResponse(note), nil
}

func (s *noteService) IngestDocument(ctx context.Context, userId uuid.UUID, filePath, filename, engine, language string) (*dto.IngestDocumentResponse, error) {
	text, engine, err := s.ocrPipeline.ExtractText(ctx, filePath, engine)
	if err != nil {
		var stageErr *ocr.StageError
		if errors.As(err, &stageErr) {
			return nil, serverutils.Upstream(fmt.Sprintf("processing document (%s)", stageErr.Stage), err)
		}
		return nil, serverutils.BadRequest(err.Error())
	}

	summary, err := s.aiService.Condense(ctx, text, "")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	note := &entity.Note{
		Id:         uuid.New(),
		Header:     filename,
		Sum:        summary,
		Provider:   engine,
		UserId:     userId,
		CreatedAt:  now,
		LastUpdate: now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	s.publishActivity(ctx, userId, "note.ingested", filename, engine)
	s.publishEvent(ctx, events.TypeNoteCreated, map[string]interface{}{
		"note_id": note.Id,
		"user_id": userId,
		"header":  note.Header,
	})

	return &dto.IngestDocumentResponse{
		Id:       note.Id,
		Header:   note.Header,
		Sum:      note.Sum,
		Text:     text,
		Engine:   engine,
		Provider: note.Provider,
	}, nil
}

func (s *noteService) FactCheckNote(ctx context.Context, userId, noteId uuid.UUID) (*dto.FactCheckNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := s.findOwned(ctx, uow, userId, noteId)
	if err != nil {
		return nil, err
	}

	result, err := s.aiService.FactCheckText(ctx, note.Sum, "")
	if err != nil {
		return nil, err
	}

	check := &entity.FactCheck{
		Id:     uuid.New(),
		NoteId: note.Id,
		UserId: userId,
		// Stored records use the lowercase status vocabulary even when the
		// model answers in caps.
		Status:     strings.ToLower(result.Status),
		Confidence: float64(result.Confidence) / 100.0,
		Claims:     result.Claims,
		Summary:    result.Summary,
		Source:     result.Kind.String(),
		CreatedAt:  time.Now(),
	}

	if err := uow.FactCheckRepository().Create(ctx, check); err != nil {
		return nil, err
	}

	note.LastUpdate = time.Now()
	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	s.publishActivity(ctx, userId, "note.fact_checked", note.Header, check.Status)

	return toFactCheckResponse(check), nil
}

func toFactCheckResponse(check *entity.FactCheck) *dto.FactCheckNoteResponse {
	claims := check.Claims
	if claims == nil {
		claims = []aiparse.FactClaim{}
	}
	return &dto.FactCheckNoteResponse{
		Id:         check.Id,
		NoteId:     check.NoteId,
		Status:     check.Status,
		Confidence: check.Confidence,
		Claims:     claims,
		Summary:    check.Summary,
		Source:     check.Source,
		CreatedAt:  check.CreatedAt,
	}
}

func (s *noteService) ListFactChecks(ctx context.Context, userId, noteId uuid.UUID) ([]*dto.FactCheckNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.findOwned(ctx, uow, userId, noteId); err != nil {
		return nil, err
	}

	checks, err := uow.FactCheckRepository().FindAll(ctx,
		specification.Filter("note_id", noteId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.FactCheckNoteResponse, len(checks))
	for i, check := range checks {
		responses[i] = toFactCheckResponse(check)
	}
	return responses, nil
}

func (s *noteService) Activity(ctx context.Context, userId uuid.UUID) ([]*dto.ActivityLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	logs, err := uow.ActivityLogRepository().FindAll(ctx,
		specification.OwnedBy{UserId: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 100, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ActivityLogResponse, len(logs))
	for i, l := range logs {
		responses[i] = &dto.ActivityLogResponse{
			Id:        l.Id,
			Action:    l.Action,
			Subject:   l.Subject,
			Detail:    l.Detail,
			CreatedAt: l.CreatedAt,
		}
	}
	return responses, nil
}

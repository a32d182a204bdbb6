package bootstrap

import (
	"context"
	"log"
	"time"

	"supernote-be/internal/config"
	"supernote-be/internal/controller"
	"supernote-be/internal/pkg/logger"
	"supernote-be/internal/pkg/mailer"
	"supernote-be/internal/repository/memory"
	"supernote-be/internal/repository/unitofwork"
	"supernote-be/internal/service"
	"supernote-be/internal/websocket"
	"supernote-be/pkg/llm"
	"supernote-be/pkg/llm/factory"
	"supernote-be/pkg/ocr"

	pktNats "supernote-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	NoteController      controller.INoteController
	SupernoteController controller.ISupernoteController
	AiController        controller.IAiController
	TeamController      controller.ITeamController
	TopicController     controller.ITopicController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI
	apiKey := cfg.Keys.GoogleGemini
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		apiKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// OCR: vision path only when the provider can take inline documents.
	localEngine := ocr.NewLocalEngine()
	var visionEngine ocr.Engine
	if visionProvider, ok := llmProvider.(llm.VisionProvider); ok && apiKey != "" {
		visionEngine = ocr.NewVisionEngine(visionProvider)
		log.Printf("[INFO] OCR vision engine enabled")
	} else {
		log.Printf("[INFO] OCR vision engine disabled, local extraction only (PDF)")
	}
	ocrPipeline := ocr.NewPipeline(localEngine, visionEngine)

	quizRepo := memory.NewQuizRepository(time.Duration(cfg.Ai.QuizTTLMinutes) * time.Minute)

	// 4. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/collab.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.ActivityTopic)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ActivityTopic, uowFactory)

	aiService := service.NewAiService(llmProvider, quizRepo, cfg.Ai.DefaultLanguage)
	authService := service.NewAuthService(uowFactory, emailService, natsPub, cfg.App.JWTSecret)
	noteService := service.NewNoteService(uowFactory, aiService, ocrPipeline, publisherService, natsPub, sysLogger)
	supernoteService := service.NewSupernoteService(uowFactory, aiService, publisherService, natsPub, sysLogger)
	teamService := service.NewTeamService(uowFactory)
	topicService := service.NewTopicService(uowFactory)

	// 6. Controllers
	collabHandler := controller.NewCollabHandler(wsHub, wsLogger)

	return &Container{
		AuthController:      controller.NewAuthController(authService),
		NoteController:      controller.NewNoteController(noteService, collabHandler),
		SupernoteController: controller.NewSupernoteController(supernoteService),
		AiController:        controller.NewAiController(aiService),
		TeamController:      controller.NewTeamController(teamService),
		TopicController:     controller.NewTopicController(topicService),
		ConsumerService:     consumerService,
		WebSocketHub:        wsHub,
	}
}

package bootstrap

import (
	"context"
	"log"

	"golexai-be/internal/config"
	"golexai-be/internal/controller"
	"golexai-be/internal/pkg/logger"
	"golexai-be/internal/pkg/mailer"
	"golexai-be/internal/repository/implementation"
	"golexai-be/internal/repository/unitofwork"
	"golexai-be/internal/service"
	"golexai-be/pkg/ai/assembler"
	"golexai-be/pkg/ai/history"
	"golexai-be/pkg/ai/persona"
	"golexai-be/pkg/ai/promptstore"
	"golexai-be/pkg/llm"
	"golexai-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	DocumentController  controller.IDocumentController
	CaseController      controller.ICaseController
	AiController        controller.IAiController
	AnalyticsController controller.IAnalyticsController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
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
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	// Redis (analytics summary cache); startup survives an unreachable server
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
	}

	// LLM provider. A missing key leaves the provider nil and AI endpoints
	// answer 503 instead of failing startup.
	var llmProvider llm.CompletionProvider
	if cfg.Ai.APIKey == "" {
		log.Println("[WARN] No LLM API key configured, AI features disabled")
	} else {
		llmProvider, err = factory.NewCompletionProvider(cfg.Ai.Provider, cfg.Ai.APIKey, cfg.Ai.BaseURL, cfg.Ai.Model)
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize LLM provider: %v", err)
		}
		log.Printf("[INFO] Using LLM provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)
	}

	// 4. Prompt assembly pipeline
	personaCatalog := persona.NewCatalog()
	personaCatalog.MustValidate()

	overrideStore := promptstore.NewOverrideStore(implementation.NewPromptRepository(db))
	promptAssembler := assembler.NewAssembler(personaCatalog, overrideStore)
	historyLoader := history.NewLoader(implementation.NewMessageRepository(db))

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, uowFactory, sysLogger)

	authService := service.NewAuthService(uowFactory, emailService, sysLogger)
	userService := service.NewUserService(uowFactory, sysLogger)
	caseService := service.NewCaseService(uowFactory, sysLogger)
	documentService := service.NewDocumentService(
		uowFactory,
		llmProvider,
		promptAssembler,
		publisherService,
		cfg.App.UploadDir,
		sysLogger,
	)
	chatService := service.NewChatService(
		uowFactory,
		llmProvider,
		promptAssembler,
		historyLoader,
		publisherService,
		sysLogger,
	)
	conversationService := service.NewConversationService(uowFactory, sysLogger)
	promptService := service.NewPromptService(uowFactory, overrideStore, sysLogger)
	analyticsService := service.NewAnalyticsService(uowFactory, rdb, sysLogger)

	// 6. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),
		DocumentController:  controller.NewDocumentController(documentService),
		CaseController:      controller.NewCaseController(caseService),
		AiController:        controller.NewAiController(chatService, conversationService, promptService),
		AnalyticsController: controller.NewAnalyticsController(analyticsService),

		ConsumerService: consumerService,
	}
}

package bootstrap

import (
	"context"
	"log"
	"time"

	"agri-assistant-be/internal/config"
	"agri-assistant-be/internal/controller"
	"agri-assistant-be/internal/pkg/logger"
	"agri-assistant-be/internal/pkg/serverutils"
	"agri-assistant-be/internal/repository/implementation"
	"agri-assistant-be/internal/repository/memory"
	"agri-assistant-be/internal/repository/redisstore"
	"agri-assistant-be/internal/service"
	"agri-assistant-be/pkg/llm/factory"
	ragcontext "agri-assistant-be/pkg/rag/context"
	"agri-assistant-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Container wires every service explicitly; nothing in the request path
// reaches for package-level state.
type Container struct {
	AuthController      controller.IAuthController
	ChatbotController   controller.IChatbotController
	FieldDataController controller.IFieldDataController

	SessionAuth fiber.Handler
	APIKeyAuth  fiber.Handler

	Logger logger.ILogger
}

func NewContainer(db *mongo.Database, cfg *config.Config) (*Container, error) {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Repositories
	userRepo := implementation.NewUserRepository(db)
	chatMessageRepo := implementation.NewChatMessageRepository(db)
	fieldDataRepo := implementation.NewFieldDataRepository(db)

	// Login-session storage, selected by config
	sessionTTL := time.Duration(cfg.App.SessionTTLMinutes) * time.Minute
	var sessionStore store.SessionStore
	if cfg.App.SessionStore == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionStore = redisstore.NewSessionStore(rdb, sessionTTL)
		log.Printf("[INFO] Using Session Store: REDIS")
	} else {
		sessionStore = memory.NewSessionStore(sessionTTL)
		log.Printf("[INFO] Using Session Store: MEMORY")
	}

	// Generative upstream, selected by config
	llmProvider, err := factory.NewLLMProvider(
		context.Background(),
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Services
	assembler := ragcontext.NewAssembler(fieldDataRepo, int64(cfg.Ai.ContextRecordLimit))
	historyService := service.NewChatHistoryService(chatMessageRepo)
	chatbotService := service.NewChatbotService(historyService, assembler, llmProvider, sysLogger)
	authService := service.NewAuthService(userRepo, sessionStore)
	fieldDataService := service.NewFieldDataService(assembler)

	return &Container{
		AuthController:      controller.NewAuthController(authService, sessionTTL),
		ChatbotController:   controller.NewChatbotController(chatbotService, historyService),
		FieldDataController: controller.NewFieldDataController(fieldDataService),

		SessionAuth: serverutils.SessionAuthMiddleware(sessionStore),
		APIKeyAuth:  serverutils.APIKeyAuthMiddleware(userRepo),

		Logger: sysLogger,
	}, nil
}

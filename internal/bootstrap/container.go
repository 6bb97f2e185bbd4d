package bootstrap

import (
	"log"

	"hongling-sanctuary-be/internal/config"
	"hongling-sanctuary-be/internal/controller"
	"hongling-sanctuary-be/internal/pkg/logger"
	"hongling-sanctuary-be/internal/pkg/metrics"
	"hongling-sanctuary-be/internal/repository/unitofwork"
	"hongling-sanctuary-be/internal/service"
	"hongling-sanctuary-be/pkg/apiclient"
	"hongling-sanctuary-be/pkg/cache"
	"hongling-sanctuary-be/pkg/llm"
	"hongling-sanctuary-be/pkg/llm/factory"
	"hongling-sanctuary-be/pkg/narrative"
	"hongling-sanctuary-be/pkg/render"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const chartCreatedTopic = "chart.created"

type Container struct {
	// Controllers
	BaziController    controller.IBaziController
	ChartController   controller.IChartController
	SessionController controller.ISessionController
	AdminController   controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	metricsProvider := metrics.NewMetricsProvider()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	upstream := apiclient.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)

	var llmProvider llm.LLMProvider
	if cfg.Narrative.Strategy == "remote" {
		var err error
		llmProvider, err = factory.NewLLMProvider(
			cfg.Ai.LLMProvider,
			cfg.Ai.LLMModel,
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OpenAIKey,
		)
		if err != nil {
			log.Printf("[WARN] Failed to initialize LLM Provider: %v. Falling back to local templates", err)
		} else {
			log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
		}
	}
	generator := narrative.NewGenerator(cfg.Narrative.Strategy, llmProvider, sysLogger, cfg.Narrative.RequestDelay)

	var analysisCache cache.AnalysisCache
	if cfg.Cache.Backend == "redis" {
		redisCache, err := cache.NewRedisCache(cfg.App.RedisURL, cfg.Cache.TTL, sysLogger)
		if err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Using in-memory cache", err)
			analysisCache = cache.NewMemoryCache(cfg.Cache.TTL)
		} else {
			analysisCache = redisCache
		}
	} else {
		analysisCache = cache.NewMemoryCache(cfg.Cache.TTL)
	}

	renderer, err := render.NewRenderer(sysLogger, cfg.App.ChartAssetURL)
	if err != nil {
		log.Fatalf("[FATAL] Failed to parse report template: %v", err)
	}

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, chartCreatedTopic)
	consumerService := service.NewConsumerService(pubSub, chartCreatedTopic, uowFactory)

	baziService := service.NewBaziService(
		uowFactory,
		upstream,
		generator,
		analysisCache,
		publisherService,
		renderer,
		sysLogger,
		metricsProvider,
	)
	chartService := service.NewChartService(uowFactory)
	sessionService := service.NewSessionService(uowFactory, cfg.Session.DefaultTTL, sysLogger)
	adminService := service.NewAdminService(uowFactory, metricsProvider)

	// 5. Controllers
	return &Container{
		BaziController:    controller.NewBaziController(baziService),
		ChartController:   controller.NewChartController(chartService),
		SessionController: controller.NewSessionController(sessionService),
		AdminController:   controller.NewAdminController(adminService, sessionService),
		ConsumerService:   consumerService,
	}
}

package routes

import (
	"log"

	_ "brightcover/docs" // generated swagger spec
	"brightcover/internal/adapter/http/handlers"
	"brightcover/internal/adapter/persistence/guard"
	"brightcover/internal/adapter/persistence/repository"
	"brightcover/internal/config"
	"brightcover/internal/infrastructure/database"
	"brightcover/internal/infrastructure/mail"
	"brightcover/internal/notification"
	"brightcover/internal/usecase"
	"brightcover/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires the service together and starts the HTTP server.
func Run() {
	cfg, err := config.LoadAll()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	contactRepo := repository.NewContactDynamoRepository(ddb)

	var submissionGuard interfaces.ISubmissionGuard = guard.DisabledGuard{}
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		submissionGuard = guard.NewRedisGuard(client, cfg.Cooldown.Window)
	} else {
		log.Printf("REDIS_ADDR not set, duplicate-submission cooldown disabled")
	}

	notifier := notification.NewMailNotifier(mail.NewSMTPSender(cfg.Mail), cfg.Mail.SalesEmail)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, submissionGuard, notifier, cfg.Mail.SendTimeout)
	contactUseCase := usecase.NewContactUseCase(contactRepo, notifier, cfg.Mail.SendTimeout)
	authUseCase := usecase.NewAuthUseCase(cfg.Auth)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	contactHandler := handlers.NewContactHandler(contactUseCase)
	adminHandler := handlers.NewAdminHandler(authUseCase, quoteUseCase, contactUseCase)

	v1 := router.Group("/v1")
	addHealthRoutes(v1)
	addInsuranceRoutes(v1, quoteHandler, contactHandler)
	addAdminRoutes(v1, adminHandler, cfg.Auth.JWTSecret)
}

func setMiddlewares(cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(handlers.CORS(cfg.Server.AllowedOrigin))
}

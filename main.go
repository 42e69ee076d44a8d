package main

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/divi2806/suiVerse-sub000/internal/cache"
	"github.com/divi2806/suiVerse-sub000/internal/config"
	"github.com/divi2806/suiVerse-sub000/internal/db"
	"github.com/divi2806/suiVerse-sub000/internal/event"
	"github.com/divi2806/suiVerse-sub000/internal/handlers"
	"github.com/divi2806/suiVerse-sub000/internal/llm"
	"github.com/divi2806/suiVerse-sub000/internal/repository"
	"github.com/divi2806/suiVerse-sub000/internal/service"
	"github.com/divi2806/suiVerse-sub000/internal/sui"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	gin.SetMode(cfg.GinMode)

	db.InitMongo(cfg.MongoURI)
	database := db.Client.Database(cfg.MongoDatabase)

	// Optional event broker: everything runs without it.
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" {
		p, err := event.NewEventPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Printf("Event publisher unavailable, continuing without events: %v", err)
		} else {
			publisher = p
			defer publisher.Close()
		}
	}

	// Optional service wallet: reward and mint paths report unavailability
	// instead of failing startup.
	var chain service.Chain
	if cfg.SuiPrivateKeySeed != "" {
		signer, err := sui.NewSignerFromSeedHex(cfg.SuiPrivateKeySeed)
		if err != nil {
			log.Printf("Service wallet misconfigured, chain features disabled: %v", err)
		} else {
			chain = sui.NewClient(cfg.SuiRPCEndpoint, signer, cfg.GasBudget)
			log.Printf("Service wallet %s on %s", signer.Address(), cfg.SuiNetwork)
		}
	} else {
		log.Println("No service wallet seed configured, chain features disabled")
	}

	var completer service.Completer
	if cfg.LLMAPIKey != "" {
		completer = llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		log.Println("No LLM API key configured, serving fallback content only")
	}

	progressRepo := repository.NewProgressRepository(database)
	contentRepo := repository.NewContentRepository(database)
	challengeRepo := repository.NewChallengeRepository(database)
	rewardRepo := repository.NewRewardRepository(database)
	achievementRepo := repository.NewAchievementRepository(database)
	nftRepo := repository.NewNFTRepository(database)

	progressService := service.NewProgressService(progressRepo)
	contentService := service.NewContentService(cache.New(6*time.Hour), contentRepo, completer)
	challengeService := service.NewChallengeService(challengeRepo, completer, progressService)
	rewardService := service.NewRewardService(rewardRepo, chain)
	achievementService := service.NewAchievementService(achievementRepo, progressService)
	boxService := service.NewMysteryBoxService(progressRepo, progressService, rewardService,
		rand.New(rand.NewSource(time.Now().UnixNano())))
	nftService := service.NewNFTService(nftRepo, chain, cfg.NFTPackageID, cfg.NFTModule, cfg.NFTMintFunction)

	progressHandler := handlers.NewProgressHandler(progressService, achievementService, publisher)
	contentHandler := handlers.NewContentHandler(contentService)
	challengeHandler := handlers.NewChallengeHandler(challengeService, achievementService, publisher)
	rewardHandler := handlers.NewRewardHandler(rewardService)
	achievementHandler := handlers.NewAchievementHandler(achievementService)
	boxHandler := handlers.NewMysteryBoxHandler(boxService, achievementService, publisher)
	nftHandler := handlers.NewNFTHandler(nftService, publisher)

	// Pre-warm today's challenge set at UTC midnight so the first request
	// of the day does not pay the generation latency.
	scheduler := cron.New(cron.WithLocation(time.UTC))
	if _, err := scheduler.AddFunc("1 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		challenges := challengeService.GetToday(ctx)
		log.Printf("Pre-warmed %d daily challenges", len(challenges))
	}); err != nil {
		log.Printf("Failed to schedule daily challenge pre-warm: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Wallet-Address"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": cfg.ServiceName,
			"version": cfg.ServiceVersion,
			"network": cfg.SuiNetwork,
		})
	})

	public := r.Group("/public")
	{
		public.GET("/content/:topicId", contentHandler.GetModuleContent)
		public.GET("/challenges/today", challengeHandler.GetToday)
		public.GET("/achievements", achievementHandler.Catalog)
		public.GET("/mystery-boxes", boxHandler.Types)
	}

	protected := r.Group("/protected")
	protected.Use(handlers.AuthRequired())
	{
		protected.GET("/progress", progressHandler.GetProgress)
		protected.POST("/progress/complete", progressHandler.CompleteModule)
		protected.POST("/progress/login", progressHandler.RecordLogin)
		protected.POST("/challenges/:challengeId/complete", challengeHandler.Complete)
		protected.GET("/rewards", rewardHandler.History)
		protected.GET("/achievements", achievementHandler.List)
		protected.POST("/achievements/check", achievementHandler.Check)
		protected.POST("/mystery-boxes/open", boxHandler.Open)
		protected.POST("/nft/mint", nftHandler.Mint)
		protected.GET("/nft", nftHandler.History)
	}

	log.Printf("%s listening on :%s", cfg.ServiceName, cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

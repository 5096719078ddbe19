package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/wisewallet/backend/config"
	"github.com/wisewallet/backend/internal/api"
	"github.com/wisewallet/backend/internal/logger"
	"github.com/wisewallet/backend/internal/middleware"
	"github.com/wisewallet/backend/internal/router"
	"github.com/wisewallet/backend/internal/service"
)

// Server owns the HTTP listener and the wired-up service graph. Every
// collaborator is constructed once here and injected; nothing reaches for
// globals at request time.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	http   *http.Server
	log    *logger.Logger
}

// New wires services, handlers and routes into a runnable server.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3 *config.S3Config, provider service.TextGenerator, log *logger.Logger) *Server {
	cache := service.NewCache(redisClient, cfg.CacheTTL)

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db, log)
	planStore := service.NewMealPlanStore(db)
	planService := service.NewMealPlanService(planStore, recipeService, provider, cache, log, cfg.LLMTimeout)
	chatService := service.NewChatService(provider, cfg.LLMTimeout)
	profileService := service.NewProfileService(db)
	lookupService := service.NewLookupService(db, cache)
	exportService := service.NewExportService(s3, planStore)

	limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
		Window:    cfg.RateLimitSpan,
		Limit:     cfg.RateLimit,
		KeyPrefix: "ratelimit:llm",
	})

	engine := router.Setup(router.Handlers{
		Auth:     api.NewAuthHandler(authService),
		MealPlan: api.NewMealPlanHandler(planService, exportService),
		Recipe:   api.NewRecipeHandler(recipeService),
		Chat:     api.NewChatHandler(chatService),
		Profile:  api.NewProfileHandler(profileService),
		Lookup:   api.NewLookupHandler(lookupService),
	}, authService, limiter)

	return &Server{cfg: cfg, engine: engine, log: log}
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", s.cfg.ServerHost, s.cfg.ServerPort),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info("server listening", "addr", s.http.Addr)

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

package bootstrap

import (
	"database/sql"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/meshfit/meshfit-backend/config"
	httpapi "github.com/meshfit/meshfit-backend/internal/api/http"
	reqmw "github.com/meshfit/meshfit-backend/internal/api/http/middleware"
	"github.com/meshfit/meshfit-backend/internal/auth"
	authmw "github.com/meshfit/meshfit-backend/internal/auth/middleware"
	"github.com/meshfit/meshfit-backend/internal/metrics"
	"github.com/meshfit/meshfit-backend/internal/storage/images"
	"github.com/meshfit/meshfit-backend/internal/users"
	wardrobehttp "github.com/meshfit/meshfit-backend/internal/wardrobe/http"
	"github.com/meshfit/meshfit-backend/internal/wardrobe/repository"
	"github.com/meshfit/meshfit-backend/internal/wardrobe/service"
)

const serviceName = "meshfit-backend"

type RouterDeps struct {
	Config *config.Config
	Logger *zap.Logger
	// Pool backs the users repository and the health check.
	Pool *pgxpool.Pool
	// SQL backs the wardrobe repositories.
	SQL     *sql.DB
	Metrics *metrics.Registry

	// Optional. Nil disables the generation cache.
	Redis *redis.Client
	// Optional. Nil disables garment image uploads.
	Images *images.S3Store
	// Optional. Nil trusts the X-User-* headers (development only).
	Verifier authmw.TokenVerifier
}

func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	logger := dep.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.Config.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id", "X-User-Id", "X-User-Email", "X-User-Name", "X-User-Photo"},
		ExposeHeaders:    []string{"X-Request-Id", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(reqmw.RequestIDMiddleware(logger.Named("http")))
	r.Use(metrics.GinMiddleware(dep.Metrics))

	var db httpapi.Pinger
	if dep.Pool != nil {
		db = dep.Pool
	}
	httpapi.NewHealthHandler(serviceName, dep.Config.App.Version, db, dep.Redis).RegisterRoutes(r)
	if dep.Metrics != nil {
		r.GET("/metrics", gin.WrapH(dep.Metrics.Handler()))
	}

	userRepo := users.NewRepo(dep.Pool)

	api := r.Group("/api/v1")
	if dep.Verifier != nil {
		api.Use(authmw.FirebaseAuthMiddleware(dep.Verifier), auth.EnsureUser(userRepo))
	} else {
		logger.Warn("firebase is not configured; trusting X-User-Id headers")
		api.Use(auth.WithUser(userRepo))
	}
	api.GET("/me", auth.MeHandler(userRepo))

	svc := service.NewWardrobeService(wardrobeDeps(dep, logger))
	wardrobehttp.New(svc, wardrobehttp.Options{
		GenerateRatePerMinute: dep.Config.Generation.RatePerMinute,
		GenerateBurst:         dep.Config.Generation.RateBurst,
		Logger:                logger.Named("wardrobe.http"),
	}).Register(api)

	return r
}

// wardrobeDeps only sets the optional stores when they are configured, so the service never
// sees a typed nil.
func wardrobeDeps(dep RouterDeps, logger *zap.Logger) service.Deps {
	d := service.Deps{
		Garments:  repository.NewGarmentRepository(dep.SQL),
		Links:     repository.NewLinkRepository(dep.SQL),
		Outfits:   repository.NewOutfitRepository(dep.SQL),
		Metrics:   dep.Metrics,
		Logger:    logger,
		ResultCap: dep.Config.Generation.ResultCap,
	}
	if dep.Redis != nil {
		d.Cache = repository.NewGenerationCache(dep.Redis, dep.Config.Generation.CacheTTL)
	}
	if dep.Images != nil {
		d.Images = dep.Images
	}
	return d
}

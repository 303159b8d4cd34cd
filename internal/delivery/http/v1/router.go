package v1

import (
	"ats-backend/config"
	"ats-backend/internal/delivery/http/middleware"
	"ats-backend/internal/domain"
	"ats-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CandidateUC domain.CandidateUsecase
	HealthUC    usecase.HealthUsecase
	Config      *config.Config
	// RateLimit is optional, nil disables rate limiting
	RateLimit gin.HandlerFunc
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))
	if deps.RateLimit != nil {
		r.Use(deps.RateLimit)
	}
	r.Use(middleware.ErrorHandler())

	NewHealthHandler(r, deps.HealthUC)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewCandidateHandler(r, deps.CandidateUC)

	return r
}

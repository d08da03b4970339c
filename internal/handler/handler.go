package handler

import (
	"embed"
	"html/template"

	"github.com/BloggingApp/profile-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Config struct {
	// AllowOrigin enables CORS for the given origin when set.
	AllowOrigin  string
	AccessSecret []byte
}

type Handler struct {
	services *service.Service
	logger   *zap.Logger
	cfg      Config
}

func New(services *service.Service, logger *zap.Logger, cfg Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		cfg:      cfg,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.Use(h.requestLogger, gin.Recovery())

	if h.cfg.AllowOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{h.cfg.AllowOrigin},
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	app := r.Group("/app")
	{
		app.GET("/", h.index)
		app.GET("/health", h.health)

		profile := app.Group("/profile")
		{
			profile.GET("/", h.profileForm)
			profile.POST("/", h.profileSubmit)
		}

		api := app.Group("/api")
		{
			api.GET("/profiles/:username", h.apiProfile)
			api.GET("/lookups", h.adminMiddleware, h.apiLookups)
		}
	}

	return r
}

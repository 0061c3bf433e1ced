package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ayushaahar/backend/config"
	"github.com/ayushaahar/backend/internal/api"
	"github.com/ayushaahar/backend/internal/dataset"
	"github.com/ayushaahar/backend/internal/middleware"
	"github.com/ayushaahar/backend/internal/service"
	"github.com/ayushaahar/backend/internal/store"
)

// Deps collects everything the HTTP layer needs.
type Deps struct {
	Config  *config.Config
	Logger  *zap.Logger
	Data    *dataset.Data
	Store   *store.DocumentStore
	Engine  *service.DietChartEngine
	Parser  *service.RecipeParser
	Swaps   *service.SwapEngine
	Weather service.WeatherProvider
}

// Server wires the gin router and owns the listening socket.
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New builds the router with all routes registered under /api.
func New(d Deps) *Server {
	if d.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(d.Logger))
	router.Use(middleware.CORS(d.Config.Origins()))

	group := router.Group("/api")
	group.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "AyushAahar API is running"})
	})

	api.NewPatientHandler(d.Data, d.Store, d.Logger).RegisterRoutes(group)
	api.NewChartHandler(d.Engine, d.Store, d.Logger).RegisterRoutes(group)
	api.NewRecipeHandler(d.Data, d.Parser, d.Swaps, d.Logger).RegisterRoutes(group)
	api.NewWeatherHandler(d.Weather).RegisterRoutes(group)
	api.NewAppointmentHandler(d.Store, d.Logger).RegisterRoutes(group)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    fmt.Sprintf("%s:%s", d.Config.ServerHost, d.Config.ServerPort),
			Handler: router,
		},
		logger: d.Logger,
	}
}

// Router exposes the handler for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start blocks serving requests until the listener closes.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

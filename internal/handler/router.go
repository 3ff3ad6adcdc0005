package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	"room-booking/internal/handler/api"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	reportHandler *api.ReportHandler,
) error {
	if err := reqdto.RegisterBindingValidations(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, roomHandler, bookingHandler, reportHandler)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewRateLimitMiddleware(cfg.RateLimit))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	reportHandler *api.ReportHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		if swaggerDocsRegistered() {
			engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		} else {
			slog.Info("swagger UI disabled: no generated docs package is linked (run swag init)")
		}
	}

	root := engine.Group("")
	addRoutes(root, []route{
		{Method: http.MethodPost, Path: "/create-room", Handler: roomHandler.CreateRoom},
		{Method: http.MethodPost, Path: "/book-room", Handler: bookingHandler.BookRoom},
		{Method: http.MethodGet, Path: "/rooms", Handler: reportHandler.ListRooms},
		{Method: http.MethodGet, Path: "/customers", Handler: reportHandler.ListCustomers},
		{Method: http.MethodGet, Path: "/customer-bookings/:customerName", Handler: reportHandler.CustomerBookings},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// swaggerDocsRegistered reports whether a swag-generated docs package has
// registered its definition.
func swaggerDocsRegistered() bool {
	_, err := swag.ReadDoc()
	return err == nil
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"wanderplan/internal/http/handlers"
	"wanderplan/internal/http/middleware"
)

type RouterDeps struct {
	Planner     handlers.ItineraryGenerator
	Logger      *zap.Logger
	ServiceName string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(logger),
		otelgin.Middleware(deps.ServiceName),
		middleware.Metrics(),
		middleware.Logging(logger),
	)

	itineraryHandler := handlers.NewItineraryHandler(deps.Planner)
	r.POST("/api/itineraries", itineraryHandler.Create)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}

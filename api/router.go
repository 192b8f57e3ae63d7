package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airlines/internal/metrics"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	BasePath    = "/api/airlines"
	swaggerFile = "airlines.swagger.json"
)

type Handlers struct {
	Ways     *WaysHandler
	Flights  *FlightHandler
	Airports *AirportHandler
	Routes   *RouteHandler
	Orders   *OrderHandler
}

type RouterOptions struct {
	Limiter             Limiter
	SearchRatePerMinute int
	SwaggerDir          string
}

func NewRouter(h Handlers, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if opts.SwaggerDir != "" {
		r.Static("/swagger", opts.SwaggerDir)
		r.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/"+swaggerFile))))
	}

	api := r.Group(BasePath)
	h.Ways.Register(api.Group("/ways"), RateLimit(opts.Limiter, "ways", opts.SearchRatePerMinute, time.Minute))
	h.Flights.Register(api.Group("/flights"))
	h.Airports.Register(api.Group("/airports"))
	h.Routes.Register(api.Group("/routes"))
	h.Orders.Register(api.Group("/orders", RequireUser()))

	return r
}

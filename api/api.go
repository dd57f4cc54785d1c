package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	lookup "github.com/blnkfinance/purchase-lookup"
	"github.com/blnkfinance/purchase-lookup/api/middleware"
	"github.com/blnkfinance/purchase-lookup/config"
)

type Api struct {
	lookup *lookup.Lookup
	router *gin.Engine
}

// Router returns the engine. Routes are registered once in NewAPI, so calling it again is safe.
func (a *Api) Router() *gin.Engine {
	return a.router
}

func (a *Api) registerRoutes() {
	a.router.GET("/health", a.Health)

	a.router.POST("/account", a.LookupAccounts)
	a.router.GET("/purchase", a.LookupPurchases)
}

func NewAPI(l *lookup.Lookup, conf *config.Configuration) *Api {
	if conf.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware(conf.CORS.AllowedOrigins))
	r.Use(middleware.RateLimitMiddleware(conf))
	if conf.EnableTelemetry {
		r.Use(otelgin.Middleware(conf.ProjectName))
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, "server running...")
	})

	a := &Api{lookup: l, router: r}
	a.registerRoutes()
	return a
}

func (a Api) Health(c *gin.Context) {
	if err := a.lookup.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

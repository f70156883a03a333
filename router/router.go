package router

import (
	"permitportal/controllers"
	dbpkg "permitportal/db"
	"permitportal/logger"
	"permitportal/metrics"
	"permitportal/middleware"
	"permitportal/proxy"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// Initialize wires the permit store routes.
func Initialize(r *gin.Engine, database *gorm.DB, log logger.Logger) {
	controllers.SetLogger(log)

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(metrics.Middleware("permits-api"))

	r.GET("/health", controllers.Health)
	r.GET("/metrics", metrics.Handler())

	permits := r.Group("/permits")
	permits.Use(Logger(log), dbpkg.SetDBtoContext(database))
	permits.POST("", controllers.CreatePermit)
	permits.GET("", controllers.GetPermits)
	permits.GET("/:id", controllers.GetPermitByID)
	permits.PATCH("/:id", controllers.UpdatePermit)
	permits.DELETE("/:id", controllers.DeletePermit)

	log.Info("routes initialized", map[string]interface{}{"service": "permits-api"})
}

// InitializeWeb wires the browser-facing /api routes that forward to the store.
func InitializeWeb(r *gin.Engine, p *proxy.Proxy, log logger.Logger) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(metrics.Middleware("permits-web"))

	r.GET("/health", controllers.Health)
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.Use(Logger(log))
	api.GET("/permits", p.ListPermits)
	api.POST("/permits", p.CreatePermit)
	api.GET("/permits/:id", p.GetPermit)
	api.PATCH("/permits/:id", p.UpdatePermit)
	api.DELETE("/permits/:id", p.DeletePermit)

	log.Info("routes initialized", map[string]interface{}{"service": "permits-web"})
}

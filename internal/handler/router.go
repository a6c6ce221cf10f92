package handler

import (
	"net/http"

	_ "tzlon-api/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the route handlers. History is optional and left unrouted when nil.
type Handlers struct {
	Convert *ConvertHandler
	Batch   *BatchHandler
	Session *SessionHandler
	History *HistoryHandler
}

// NewRouter registers every route on a new gin engine
func NewRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/convert/longitude", h.Convert.Longitude)
	r.GET("/convert/timezone", h.Convert.Timezone)
	r.GET("/meridians", h.Convert.Meridians)

	r.POST("/batch", h.Batch.Convert)
	r.GET("/batch/templates/:kind", h.Batch.Template)

	r.POST("/sessions", h.Session.Create)
	r.GET("/sessions/:id", h.Session.Get)
	r.PUT("/sessions/:id/degrees", h.Session.SetDegrees)
	r.PUT("/sessions/:id/hours", h.Session.SetHours)
	r.PUT("/sessions/:id/dms", h.Session.SetDMS)
	r.PUT("/sessions/:id/hms", h.Session.SetHMS)
	r.PUT("/sessions/:id/map-click", h.Session.SetMapClick)
	r.GET("/sessions/:id/ws", h.Session.Watch)

	if h.History != nil {
		r.GET("/history", h.History.Recent)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

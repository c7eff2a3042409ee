package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/dimasprtm/wa-reminder/internal/api/handlers/reminder"
	"github.com/dimasprtm/wa-reminder/internal/api/handlers/wa"
	"github.com/dimasprtm/wa-reminder/internal/middlewares"
)

func New(reminders *reminder.Handler, inbound *wa.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/reminders", middlewares.Auth())
	{
		api.POST("/", reminders.Create)
		api.GET("/", reminders.List)
		api.GET("/active", reminders.GetActive)
		api.GET("/:id", reminders.Get)
		api.GET("/:id/status", reminders.GetStatus)
		api.PUT("/:id", reminders.Update)
		api.DELETE("/:id", reminders.Cancel)

		api.POST("/cancel-by-ids", reminders.CancelByIDs)
		api.POST("/cancel-by-keyword", reminders.CancelByKeyword)
		api.DELETE("/all/cancel", reminders.CancelAll)
		api.DELETE("/recurring/cancel", reminders.CancelRecurring)
	}

	e.POST("/api/wa/inbound", inbound.Inbound)

	return e
}

package routes

import (
	"gateway_reservas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathReservationGateway = "/reservation-gateway"
)

func addReservationRoutes(rg *gin.RouterGroup, h *handlers.ReservationHandler) {
	rg.GET("/unit", h.GetUnit)
	rg.GET("/unit/status", h.GetUnitStatus)
	rg.GET("/unit/history", h.GetUnitHistory)
	rg.POST("/reserve", h.Reserve)
	rg.POST("/release", h.Release)
	rg.POST("/sold", h.MarkSold)
}

package controllers

import (
	"net/http"

	"github.com/Leerling-hub/Booking/dto"
	"github.com/gin-gonic/gin"
)

// ServiceName is reported by the health check
const ServiceName = "booking-api"

// Root handles GET /
func Root(c *gin.Context) {
	c.String(http.StatusOK, "Hello world!")
}

// HealthCheck handles GET /health
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy", Service: ServiceName})
}

package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Leerling-hub/Booking/dto"
	"github.com/Leerling-hub/Booking/services"
	"github.com/gin-gonic/gin"
)

const msgInternal = "Internal server error"

// respondError writes the status and {"error": message} body for err.
// Errors the services do not classify are logged and answered with 500.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFound *services.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(validationErr.Status, dto.ErrorResponse{Error: validationErr.Message})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: notFound.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidToken), errors.Is(err, services.ErrAccountNotFound):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})
	default:
		log.Printf("Error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgInternal})
	}
}

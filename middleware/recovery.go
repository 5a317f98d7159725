package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/Leerling-hub/Booking/dto"
	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 with the fallback error envelope
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic handling %s %s: %v\n%s", c.Request.Method, c.Request.URL.Path, r, debug.Stack())
				FallbackError(c, http.StatusInternalServerError, "Internal server error")
			}
		}()
		c.Next()
	}
}

// FallbackError aborts with {"error": {"message": ..., "status": ...}}
func FallbackError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.FallbackError{
		Error: dto.FallbackErrorDetail{Message: message, Status: status},
	})
}

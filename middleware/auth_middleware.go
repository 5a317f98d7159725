package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Leerling-hub/Booking/domain"
	"github.com/Leerling-hub/Booking/dto"
	"github.com/Leerling-hub/Booking/services"
	"github.com/gin-gonic/gin"
)

const userKey = "user"

type contextKey struct{}

// AuthMiddleware validates the bearer token of every request and resolves it
// to a stored user. Without a token it answers 401, with a token that fails
// verification or names an unknown user it answers 403.
func AuthMiddleware(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Expected format: "Bearer <token>"; the token is the second segment
		parts := strings.Split(c.GetHeader("Authorization"), " ")
		if len(parts) < 2 || parts[1] == "" {
			log.Println("Token missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "No token provided"})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidToken), errors.Is(err, services.ErrAccountNotFound):
				c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})
			default:
				log.Printf("Error resolving token user: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		// Save the user so handlers know who made the request
		c.Set(userKey, user)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), contextKey{}, user))

		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthMiddleware
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}

// UserFromContext returns the user resolved by AuthMiddleware from a request context
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(contextKey{}).(*domain.User)
	return user, ok
}

package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request once the response is written:
// "GET /amenities 200 - 3ms"
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		// the full URL as requested, query included
		uri := c.Request.URL.RequestURI()

		c.Next()

		log.Printf("%s %s %d - %dms", c.Request.Method, uri, c.Writer.Status(), time.Since(start).Milliseconds())
	}
}

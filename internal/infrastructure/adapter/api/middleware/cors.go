package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultFrontendOrigin is allowed when no origins are configured
const DefaultFrontendOrigin = "http://localhost:5173"

// CORS allows the configured frontends, with credentials, to call the API
func CORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = []string{DefaultFrontendOrigin}
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader, "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

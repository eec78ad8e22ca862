package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func ConfigCORS(allowedDomains string) gin.HandlerFunc {
	conf := cors.DefaultConfig()
	conf.AllowCredentials = true

	origins := strings.Split(allowedDomains, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	conf.AllowOrigins = origins

	return cors.New(conf)
}

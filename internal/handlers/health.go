package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger comprueba que una dependencia responde
type Pinger func(ctx context.Context) error

// Health responde 503 si alguna dependencia no contesta
func Health(checks map[string]Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{}
		healthy := true
		for name, ping := range checks {
			if err := ping(c.Request.Context()); err != nil {
				status[name] = err.Error()
				healthy = false
				continue
			}
			status[name] = "ok"
		}

		if !healthy {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "checks": status})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": status})
	}
}

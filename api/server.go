// Package api exposes the EGDE process over HTTP: agent registration and
// inspection, breeding, insights, and a websocket live feed.
package api

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
)

// StartServer initializes the REST API on the given port and blocks.
func StartServer(port int) {
	r := gin.Default()
	SetupRoutes(r)

	if err := r.Run(fmt.Sprintf(":%d", port)); err != nil {
		log.Fatalf("API server failed: %v", err)
	}
}

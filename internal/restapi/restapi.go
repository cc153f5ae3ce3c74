// Package restapi exposes the read-only REST introspection surface spec.md
// §6 names: room enumeration, a single room lookup, an existence check,
// and a health probe. Grounded on the teacher's handlers/roomHandler.go
// gin-handler-plus-gin.H convention, with the JWT lookup removed since
// this system has no authentication.
package restapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"doodleserver/internal/roomregistry"
)

type roomSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserCount int       `json:"userCount"`
	CreatedAt time.Time `json:"createdAt"`
}

func summarize(r *roomregistry.Room) roomSummary {
	return roomSummary{ID: r.ID, Name: r.Name, UserCount: r.UserCount(), CreatedAt: r.CreatedAt}
}

// Register mounts the REST routes onto engine.
func Register(engine *gin.Engine, registry *roomregistry.Registry, logger *zap.Logger) {
	api := engine.Group("/api")
	api.GET("/rooms", listRooms(registry, logger))
	api.GET("/rooms/:id", getRoom(registry, logger))
	api.GET("/rooms/:id/exists", roomExists(registry))
	engine.GET("/health", health)
}

func listRooms(registry *roomregistry.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic listing rooms", zap.Any("recover", rec))
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
			}
		}()

		rooms := registry.All()
		summaries := make([]roomSummary, len(rooms))
		for i, r := range rooms {
			summaries[i] = summarize(r)
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "rooms": summaries})
	}
}

func getRoom(registry *roomregistry.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		room, ok := registry.Get(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "room": summarize(room)})
	}
}

func roomExists(registry *roomregistry.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		c.JSON(http.StatusOK, gin.H{"exists": registry.Exists(id)})
	}
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
}

package handlers

import (
	"log/slog"
	"net/http"

	"rental-chat-service/internal/api/middleware"
	"rental-chat-service/internal/websocket"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"
)

type WSHandler struct {
	hub      *websocket.Hub
	upgrader *gorillaws.Upgrader
}

func NewWSHandler(hub *websocket.Hub, upgrader *gorillaws.Upgrader) *WSHandler {
	return &WSHandler{hub: hub, upgrader: upgrader}
}

// HandleWebSocket godoc
// @Summary WebSocket connection
// @Description Establish a WebSocket connection for real-time messaging. Frames are JSON {"event": "...", "data": {...}}.
// @Tags websocket
// @Param token query string false "JWT when the Authorization header cannot be set"
// @Success 101 "Switching Protocols - WebSocket connection established"
// @Failure 401 {object} models.ErrorResponse "Unauthorized - invalid or missing token"
// @Router /ws [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	slog.Debug("New WebSocket connection request", "userID", userID)
	websocket.ServeWS(h.hub, h.upgrader, c.Writer, c.Request, userID)
}

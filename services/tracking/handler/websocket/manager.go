package websocket

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/prakashv/minehaul/internal/pkg/constants"
	"github.com/prakashv/minehaul/internal/pkg/logger"
	"github.com/prakashv/minehaul/internal/pkg/models"
	pkgws "github.com/prakashv/minehaul/internal/pkg/websocket"
	"github.com/prakashv/minehaul/services/tracking"
)

// WebSocketManager binds the tracking wire protocol to the coordinator.
// Authentication happens at upgrade; a successful upgrade registers the
// user's presence until the connection drops.
type WebSocketManager struct {
	trackingUC tracking.TrackingUC
	manager    *pkgws.Manager
}

// NewWebSocketManager creates a new WebSocket manager for the tracking service
func NewWebSocketManager(trackingUC tracking.TrackingUC, manager *pkgws.Manager) *WebSocketManager {
	return &WebSocketManager{
		trackingUC: trackingUC,
		manager:    manager,
	}
}

// HandleWebSocket handles new WebSocket connections
func (m *WebSocketManager) HandleWebSocket(c echo.Context) error {
	return m.manager.HandleConnection(c, m.handleClientConnection)
}

// handleClientConnection manages the client's WebSocket connection
func (m *WebSocketManager) handleClientConnection(client *models.WebSocketClient, ws *websocket.Conn) error {
	client.Conn = ws
	m.manager.AddClient(client)
	defer func() {
		m.manager.RemoveClient(client)
		// The user may have been watching trips, driving them, or both.
		m.trackingUC.WatcherDisconnected(client.UserID)
		m.trackingUC.DriverDisconnected(client.UserID)
	}()

	return m.messageLoop(client)
}

// messageLoop handles incoming WebSocket messages
func (m *WebSocketManager) messageLoop(client *models.WebSocketClient) error {
	for {
		_, msg, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read failed",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return err
		}

		if err := m.handleMessage(client, msg); err != nil {
			logger.Warn("Error handling message",
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}
}

// handleMessage processes incoming WebSocket messages
func (m *WebSocketManager) handleMessage(client *models.WebSocketClient, msg []byte) error {
	var wsMsg models.WSMessage
	if err := json.Unmarshal(msg, &wsMsg); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid message format")
	}

	switch wsMsg.Event {
	case constants.EventStartTracking:
		return m.handleStartTracking(client, wsMsg.Data)
	case constants.EventStopTracking:
		return m.handleStopTracking(client, wsMsg.Data)
	case constants.EventLocationUpdate:
		return m.handleDriverLocationReport(client, wsMsg.Data)
	case constants.EventLocationFailure:
		return m.handleDriverLocationFailure(client, wsMsg.Data)
	case constants.EventLocationAck:
		return m.handleDriverLocationAck(client, wsMsg.Data)
	case constants.EventPing:
		return m.manager.SendMessage(client.Conn, constants.EventPong, nil)
	default:
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Unknown event type")
	}
}

package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/prakashv/minehaul/internal/pkg/constants"
	jwtpkg "github.com/prakashv/minehaul/internal/pkg/jwt"
	"github.com/prakashv/minehaul/internal/pkg/logger"
	"github.com/prakashv/minehaul/internal/pkg/models"
)

// Manager manages WebSocket connections and is the presence registry: one
// entry per connected user, created on authenticated upgrade, removed on
// disconnect.
type Manager struct {
	sync.RWMutex
	clients  map[string]*models.WebSocketClient
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*models.WebSocketClient),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	return handleClient(client, ws)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*models.WebSocketClaims, error) {
	return jwtpkg.ValidateToken(tokenString, m.cfg.Secret)
}

// AddClient records the live connection for a user, overwriting any
// previous entry for the same user id.
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client
}

// RemoveClient removes the presence entry currently held by this client.
// If the user already reconnected with a newer connection the newer entry
// is left untouched, so calling this for an already-replaced connection is
// a no-op.
func (m *Manager) RemoveClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	if current, exists := m.clients[client.UserID]; exists && current == client {
		delete(m.clients, client.UserID)
	}
}

// GetClient returns a client by user id
func (m *Manager) GetClient(userID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// IsConnected reports whether a user currently holds a live connection
func (m *Manager) IsConnected(userID string) bool {
	m.RLock()
	defer m.RUnlock()
	_, exists := m.clients[userID]
	return exists
}

// SendMessage sends a message to a WebSocket client
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil // Handle nil connection gracefully for tests
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %v", err)
	}

	response := models.WSMessage{
		Event: event,
		Data:  rawData,
	}

	return conn.WriteJSON(response)
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// NotifyClient sends a message to a specific user if they are connected.
// Returns an error when the user has no live connection or the write fails,
// so callers can treat an undeliverable dispatch as "not live".
func (m *Manager) NotifyClient(userID string, event string, data interface{}) error {
	m.RLock()
	client, exists := m.clients[userID]
	m.RUnlock()

	if !exists {
		return fmt.Errorf("user %s has no live connection", userID)
	}

	if err := m.SendMessage(client.Conn, event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.String("event", event),
			logger.Err(err))
		return err
	}
	return nil
}

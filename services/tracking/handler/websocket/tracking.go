package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/prakashv/minehaul/internal/pkg/constants"
	"github.com/prakashv/minehaul/internal/pkg/logger"
	"github.com/prakashv/minehaul/internal/pkg/models"
	"github.com/prakashv/minehaul/services/tracking"
)

// handleStartTracking adds the caller as a watcher of a trip. Terminal
// failures are delivered by the coordinator as tracking_failed events, so
// only malformed requests produce an error reply here.
func (m *WebSocketManager) handleStartTracking(client *models.WebSocketClient, data json.RawMessage) error {
	var req models.StartTrackingRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid start_tracking payload")
	}
	if req.TripID == "" {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorValidationFailed, "trip_id is required")
	}

	if err := m.trackingUC.StartTracking(context.Background(), client.UserID, req.TripID); err != nil {
		logger.Info("Start tracking rejected",
			logger.String("user_id", client.UserID),
			logger.String("trip_id", req.TripID),
			logger.Err(err))
	}
	return nil
}

// handleStopTracking removes the caller from a trip's watcher set.
func (m *WebSocketManager) handleStopTracking(client *models.WebSocketClient, data json.RawMessage) error {
	var req models.StopTrackingRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid stop_tracking payload")
	}
	if req.TripID == "" {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorValidationFailed, "trip_id is required")
	}

	return m.trackingUC.StopTracking(context.Background(), client.UserID, req.TripID)
}

// handleDriverLocationReport processes a position reported by a driver's
// device, either answering an explicit request or as a periodic heartbeat.
func (m *WebSocketManager) handleDriverLocationReport(client *models.WebSocketClient, data json.RawMessage) error {
	var report models.DriverLocationReport
	if err := json.Unmarshal(data, &report); err != nil {
		logger.Error("Error parsing location report",
			logger.String("user_id", client.UserID),
			logger.Err(err))
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidLocation, "Invalid location format")
	}

	err := m.trackingUC.DriverLocationReport(context.Background(), client.UserID, &report)
	if err != nil {
		if errors.Is(err, tracking.ErrTripNotFound) || errors.Is(err, tracking.ErrDriverNotAssigned) {
			return m.manager.SendErrorMessage(client.Conn, constants.ErrorValidationFailed, err.Error())
		}
		logger.Error("Error applying location report",
			logger.String("user_id", client.UserID),
			logger.Err(err))
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInternalError, "Could not process location report")
	}
	return nil
}

// handleDriverLocationFailure processes a driver's device reporting that
// it could not obtain a position.
func (m *WebSocketManager) handleDriverLocationFailure(client *models.WebSocketClient, data json.RawMessage) error {
	var failure models.DriverLocationFailure
	if err := json.Unmarshal(data, &failure); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid location_failure payload")
	}
	if failure.TripID == "" {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorValidationFailed, "trip_id is required")
	}

	return m.trackingUC.DriverLocationFailure(context.Background(), client.UserID, &failure)
}

// handleDriverLocationAck records a driver's receipt of a location request.
func (m *WebSocketManager) handleDriverLocationAck(client *models.WebSocketClient, data json.RawMessage) error {
	var ack models.DriverLocationAck
	if err := json.Unmarshal(data, &ack); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid location_ack payload")
	}

	m.trackingUC.DriverLocationAck(client.UserID, ack.TripID)
	return nil
}

package websocket

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakashv/minehaul/internal/pkg/constants"
	"github.com/prakashv/minehaul/internal/pkg/models"
	pkgws "github.com/prakashv/minehaul/internal/pkg/websocket"
	"github.com/prakashv/minehaul/services/tracking"
	"github.com/prakashv/minehaul/services/tracking/mocks"
)

func newTestWSManager(t *testing.T) (*WebSocketManager, *mocks.MockTrackingUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockTrackingUC(ctrl)
	manager := pkgws.NewManager(models.JWTConfig{Secret: "test-secret"})
	return NewWebSocketManager(mockUC, manager), mockUC
}

// testClient has a nil Conn; outbound writes become no-ops so the routing
// logic can be exercised without a live socket.
func testClient(userID, role string) *models.WebSocketClient {
	return &models.WebSocketClient{UserID: userID, Role: role}
}

func wsMessage(t *testing.T, event string, payload interface{}) []byte {
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	msg, err := json.Marshal(models.WSMessage{Event: event, Data: data})
	require.NoError(t, err)
	return msg
}

func TestHandleMessage_StartTracking(t *testing.T) {
	m, mockUC := newTestWSManager(t)
	client := testClient("mine-1", "mine")

	mockUC.EXPECT().StartTracking(gomock.Any(), "mine-1", "trip-1").Return(nil)

	err := m.handleMessage(client, wsMessage(t, constants.EventStartTracking, models.StartTrackingRequest{TripID: "trip-1"}))
	assert.NoError(t, err)
}

func TestHandleMessage_StartTrackingRejectionIsNotAnError(t *testing.T) {
	m, mockUC := newTestWSManager(t)
	client := testClient("mine-1", "mine")

	// The coordinator has already told the watcher via tracking_failed;
	// the handler swallows the error.
	mockUC.EXPECT().StartTracking(gomock.Any(), "mine-1", "missing").Return(tracking.ErrTripNotFound)

	err := m.handleMessage(client, wsMessage(t, constants.EventStartTracking, models.StartTrackingRequest{TripID: "missing"}))
	assert.NoError(t, err)
}

func TestHandleMessage_StartTrackingMissingTripID(t *testing.T) {
	m, _ := newTestWSManager(t)
	client := testClient("mine-1", "mine")

	// No usecase call may happen for a malformed request.
	err := m.handleMessage(client, wsMessage(t, constants.EventStartTracking, models.StartTrackingRequest{}))
	assert.NoError(t, err)
}

func TestHandleMessage_StopTracking(t *testing.T) {
	m, mockUC := newTestWSManager(t)
	client := testClient("owner-1", "truck_owner")

	mockUC.EXPECT().StopTracking(gomock.Any(), "owner-1", "trip-1").Return(nil)

	err := m.handleMessage(client, wsMessage(t, constants.EventStopTracking, models.StopTrackingRequest{TripID: "trip-1"}))
	assert.NoError(t, err)
}

func TestHandleMessage_DriverLocationReport(t *testing.T) {
	m, mockUC := newTestWSManager(t)
	client := testClient("driver-1", "driver")

	mockUC.EXPECT().DriverLocationReport(gomock.Any(), "driver-1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, report *models.DriverLocationReport) error {
			assert.Equal(t, "trip-1", report.TripID)
			assert.Equal(t, 12.9, report.Location.Longitude)
			assert.Equal(t, 77.6, report.Location.Latitude)
			return nil
		})

	err := m.handleMessage(client, wsMessage(t, constants.EventLocationUpdate, models.DriverLocationReport{
		TripID:   "trip-1",
		Location: models.Location{Longitude: 12.9, Latitude: 77.6},
	}))
	assert.NoError(t, err)
}

func TestHandleMessage_DriverLocationReportValidationError(t *testing.T) {
	m, mockUC := newTestWSManager(t)
	client := testClient("driver-2", "driver")

	mockUC.EXPECT().DriverLocationReport(gomock.Any(), "driver-2", gomock.Any()).
		Return(tracking.ErrDriverNotAssigned)

	err := m.handleMessage(client, wsMessage(t, constants.EventLocationUpdate, models.DriverLocationReport{
		TripID:   "trip-1",
		Location: models.Location{Longitude: 1, Latitude: 2},
	}))
	assert.NoError(t, err)
}

func TestHandleMessage_DriverLocationFailure(t *testing.T) {
	m, mockUC := newTestWSManager(t)
	client := testClient("driver-1", "driver")

	mockUC.EXPECT().DriverLocationFailure(gomock.Any(), "driver-1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, failure *models.DriverLocationFailure) error {
			assert.Equal(t, "trip-1", failure.TripID)
			assert.Equal(t, "gps unavailable", failure.Reason)
			return nil
		})

	err := m.handleMessage(client, wsMessage(t, constants.EventLocationFailure, models.DriverLocationFailure{
		TripID: "trip-1",
		Reason: "gps unavailable",
	}))
	assert.NoError(t, err)
}

func TestHandleMessage_DriverLocationAck(t *testing.T) {
	m, mockUC := newTestWSManager(t)
	client := testClient("driver-1", "driver")

	mockUC.EXPECT().DriverLocationAck("driver-1", "trip-1")

	err := m.handleMessage(client, wsMessage(t, constants.EventLocationAck, models.DriverLocationAck{TripID: "trip-1"}))
	assert.NoError(t, err)
}

func TestHandleMessage_Ping(t *testing.T) {
	m, _ := newTestWSManager(t)
	client := testClient("driver-1", "driver")

	err := m.handleMessage(client, wsMessage(t, constants.EventPing, nil))
	assert.NoError(t, err)
}

func TestHandleMessage_InvalidJSON(t *testing.T) {
	m, _ := newTestWSManager(t)
	client := testClient("mine-1", "mine")

	err := m.handleMessage(client, []byte("{not json"))
	assert.NoError(t, err)
}

func TestHandleMessage_UnknownEvent(t *testing.T) {
	m, _ := newTestWSManager(t)
	client := testClient("mine-1", "mine")

	err := m.handleMessage(client, wsMessage(t, "teleport", nil))
	assert.NoError(t, err)
}

package server

import (
	"context"
	"fmt"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakashv/minehaul/internal/pkg/logger"
	"github.com/prakashv/minehaul/internal/pkg/models"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	l, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func TestGracefulServer_Shutdown(t *testing.T) {
	e := echo.New()
	s := NewGracefulServer(e, testLogger(t), models.ServerConfig{Port: 0, ShutdownTimeout: 1})

	// Shutting down a server that never started is a clean no-op.
	assert.NoError(t, s.Shutdown())
}

func TestShutdownManager_RunsAllFunctions(t *testing.T) {
	sm := NewShutdownManager(testLogger(t))

	var order []int
	sm.Register(func(context.Context) error {
		order = append(order, 1)
		return nil
	})
	sm.Register(func(context.Context) error {
		order = append(order, 2)
		return fmt.Errorf("close failed")
	})
	sm.Register(func(context.Context) error {
		order = append(order, 3)
		return nil
	})

	// A failing component must not stop the rest from closing.
	sm.Shutdown(context.Background())
	assert.Equal(t, []int{1, 2, 3}, order)
}

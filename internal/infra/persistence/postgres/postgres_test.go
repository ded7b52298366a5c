package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Observe(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	monitor := newPoolMonitor(logger, sql.DBStats{WaitCount: 10, WaitDuration: time.Second})

	monitor.observe(context.Background(), sql.DBStats{WaitCount: 10, WaitDuration: time.Second})
	assert.Empty(t, buf.String(), "no new waits")

	monitor.observe(context.Background(), sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond})
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "waits=2")
	assert.Contains(t, buf.String(), "avg_wait=5ms")

	buf.Reset()
	monitor.observe(context.Background(), sql.DBStats{WaitCount: 13, WaitDuration: 2 * time.Second})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=1")
}

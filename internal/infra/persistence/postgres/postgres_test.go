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

func TestPoolWatcher_Check(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	current := sql.DBStats{}
	w := &poolWatcher{logger: logger, stats: func() sql.DBStats { return current }}

	w.check(context.Background())
	assert.Empty(t, buf.String(), "no waits, nothing logged")

	current = sql.DBStats{WaitCount: 4, WaitDuration: 200 * time.Millisecond, MaxOpenConnections: 20, InUse: 20, OpenConnections: 20}
	w.check(context.Background())
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=4")
	assert.Contains(t, buf.String(), "avg_wait=50ms")

	buf.Reset()
	current.WaitCount = 5
	current.WaitDuration += time.Millisecond
	w.check(context.Background())
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "waits=1")
}

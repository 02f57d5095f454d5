package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"pricecheck/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoolMonitor_Disabled(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	assert.Nil(t, newPoolMonitor(logger, nil))
	assert.Nil(t, newPoolMonitor(nil, &config.DatabaseConfig{PoolMonitorInterval: time.Second}))
	assert.Nil(t, newPoolMonitor(logger, &config.DatabaseConfig{PoolMonitorInterval: -1}))
}

func TestPoolMonitor_Observe(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: 100 * time.Millisecond}

	tests := []struct {
		name      string
		cur       sql.DBStats
		wantLevel string
		wantAvg   time.Duration
	}{
		{
			name: "no new waits",
			cur:  sql.DBStats{WaitCount: 10, WaitDuration: 100 * time.Millisecond},
		},
		{
			name:      "short waits stay at debug",
			cur:       sql.DBStats{WaitCount: 12, WaitDuration: 120 * time.Millisecond, MaxOpenConnections: 4},
			wantLevel: "DEBUG",
			wantAvg:   10 * time.Millisecond,
		},
		{
			name:      "long waits escalate to warn",
			cur:       sql.DBStats{WaitCount: 11, WaitDuration: 400 * time.Millisecond},
			wantLevel: "WARN",
			wantAvg:   300 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			m := newPoolMonitor(logger, &config.DatabaseConfig{
				PoolMonitorInterval:   time.Second,
				PoolWaitWarnThreshold: 50 * time.Millisecond,
			})
			require.NotNil(t, m)

			m.observe(context.Background(), prev, tt.cur)

			if tt.wantLevel == "" {
				assert.Empty(t, buf.String())

				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "postgres_pool", entry["component"])
			assert.EqualValues(t, tt.wantAvg, entry["avgWait"])
		})
	}
}

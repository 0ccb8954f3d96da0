package storage

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"

	"github.com/renato0307/diffreport/internal/logging"
)

func withLogger(t *testing.T, l *slog.Logger) {
	t.Helper()
	previous := logging.Logger
	logging.Logger = l
	t.Cleanup(func() { logging.Logger = previous })
}

func TestNewGormLogger_FollowsApplicationLevel(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  logger.LogLevel
	}{
		{"debug traces queries", slog.LevelDebug, logger.Info},
		{"info stays silent", slog.LevelInfo, logger.Silent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withLogger(t, slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: tt.level})))

			got := newGormLogger().(*gormLogger)

			assert.Equal(t, tt.want, got.level)
		})
	}
}

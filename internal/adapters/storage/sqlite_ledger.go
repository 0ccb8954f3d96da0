package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/renato0307/diffreport/internal/config"
	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/logging"
	"github.com/renato0307/diffreport/internal/ports"
)

// SQLiteLedger implements ports.ExportLedger using GORM
type SQLiteLedger struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.ExportLedger = (*SQLiteLedger)(nil)

// NewSQLiteLedger opens (or creates) the ledger database at dbPath
func NewSQLiteLedger(dbPath string) (*SQLiteLedger, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets history reads run while another process records an export
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&ExportModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate exports schema: %w", err)
	}

	logging.Logger.Debug("Export ledger opened", "path", dbPath)
	return &SQLiteLedger{db: db}, nil
}

// Close closes the database connection
func (l *SQLiteLedger) Close() error {
	sqlDB, err := l.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record implements ports.ExportRecorder.Record.
// Missing ID and ExportedAt are filled in.
func (l *SQLiteLedger) Record(ctx context.Context, record domain.ExportRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.ExportedAt.IsZero() {
		record.ExportedAt = time.Now()
	}

	model := exportDomainToModel(record)
	err := withRetry(func() error {
		return l.db.WithContext(ctx).Create(&model).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to record export: %w", err)
	}

	logging.Logger.Info("Export recorded", "id", record.ID, "path", record.Path)
	return nil
}

// List implements ports.ExportLister.List. limit <= 0 means no limit.
func (l *SQLiteLedger) List(ctx context.Context, limit int) ([]domain.ExportRecord, error) {
	var models []ExportModel

	err := withRetry(func() error {
		query := l.db.WithContext(ctx).Order("exported_at DESC").Order("id")
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}

	records := make([]domain.ExportRecord, 0, len(models))
	for _, m := range models {
		records = append(records, exportModelToDomain(m))
	}
	return records, nil
}

// withRetry retries fn when SQLite reports the database busy or locked
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}

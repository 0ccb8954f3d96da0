package storage

import (
	"time"

	"github.com/renato0307/diffreport/internal/domain"
)

// ExportModel is the GORM model for the exports table
type ExportModel struct {
	BaseRef      string    `gorm:"not null;default:''"`
	CreatedAt    time.Time
	CurrentRef   string    `gorm:"not null;default:''"`
	ExportedAt   time.Time `gorm:"not null;index:idx_exported_at"`
	ID           string    `gorm:"primaryKey"`
	Path         string    `gorm:"not null"`
	RepoRoot     string    `gorm:"not null;default:'';index:idx_repo_root"`
	TotalAdded   int       `gorm:"not null;default:0"`
	TotalDeleted int       `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (ExportModel) TableName() string { return "exports" }

func exportModelToDomain(m ExportModel) domain.ExportRecord {
	return domain.ExportRecord{
		BaseRef:      m.BaseRef,
		CurrentRef:   m.CurrentRef,
		ExportedAt:   m.ExportedAt,
		ID:           m.ID,
		Path:         m.Path,
		RepoRoot:     m.RepoRoot,
		TotalAdded:   m.TotalAdded,
		TotalDeleted: m.TotalDeleted,
	}
}

func exportDomainToModel(r domain.ExportRecord) ExportModel {
	return ExportModel{
		BaseRef:      r.BaseRef,
		CurrentRef:   r.CurrentRef,
		ExportedAt:   r.ExportedAt.UTC(),
		ID:           r.ID,
		Path:         r.Path,
		RepoRoot:     r.RepoRoot,
		TotalAdded:   r.TotalAdded,
		TotalDeleted: r.TotalDeleted,
	}
}

package database

import (
	"fmt"
	"log"
	"time"

	"github.com/plantops/roundsdb/internal/models"
	"gorm.io/gorm"
)

// SchemaMigration is the version marker row recorded once per applied migration.
type SchemaMigration struct {
	Version   int    `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the table name for SchemaMigration
func (SchemaMigration) TableName() string {
	return "schema_migrations"
}

type migration struct {
	Version int
	Name    string
	Run     func(tx *gorm.DB) error
}

// migrations is the ordered, append-only list of schema changes. Each entry
// runs at most once; the schema_migrations table records what has been applied.
var migrations = []migration{
	{
		Version: 1,
		Name:    "create rounds tables",
		Run: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&models.Operator{},
				&models.Round{},
				&models.Section{},
				&models.RoundItem{},
			)
		},
	},
	{
		Version: 2,
		Name:    "add mode to round_items",
		Run: func(tx *gorm.DB) error {
			// No-op on fresh installs where migration 1 already created the
			// column; upgrades from pre-mode databases gain it here.
			if !tx.Migrator().HasColumn(&models.RoundItem{}, "mode") {
				return tx.Migrator().AddColumn(&models.RoundItem{}, "Mode")
			}
			return nil
		},
	},
}

// Migrate applies all pending migrations in version order. Safe to call on
// every startup.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	var current int
	row := db.Model(&SchemaMigration{}).Select("COALESCE(MAX(version), 0)").Row()
	if err := row.Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Run(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{Version: m.Version, Name: m.Name}).Error
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

package database_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/plantops/roundsdb/internal/database"
	"github.com/plantops/roundsdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db
}

func TestMigrateCreatesSchema(t *testing.T) {
	db := openTestDB(t)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	for _, table := range []string{"operators", "rounds", "sections", "round_items", "schema_migrations"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("Expected table %s", table)
		}
	}

	if !db.Migrator().HasColumn(&models.RoundItem{}, "mode") {
		t.Error("Expected mode column on round_items")
	}
	if !db.Migrator().HasIndex(&models.Section{}, "idx_section_identity") {
		t.Error("Expected idx_section_identity on sections")
	}
	if !db.Migrator().HasIndex(&models.RoundItem{}, "idx_item_identity") {
		t.Error("Expected idx_item_identity on round_items")
	}
}

func TestMigrateRecordsVersions(t *testing.T) {
	db := openTestDB(t)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	var versions []int
	if err := db.Model(&database.SchemaMigration{}).Order("version").Pluck("version", &versions).Error; err != nil {
		t.Fatalf("Failed to read schema_migrations: %v", err)
	}
	if len(versions) != 2 || versions[0] != 1 || versions[1] != 2 {
		t.Errorf("Unexpected applied versions: %v", versions)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("First Migrate failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Second Migrate failed: %v", err)
	}

	var count int64
	db.Model(&database.SchemaMigration{}).Count(&count)
	if count != 2 {
		t.Errorf("Expected 2 migration rows after re-run, got %d", count)
	}
}

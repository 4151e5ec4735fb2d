package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/plantops/roundsdb/internal/models"
	"github.com/plantops/roundsdb/internal/services"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Operator{},
		&models.Round{},
		&models.Section{},
		&models.RoundItem{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// createTestRound inserts an operator and a round and returns the round id.
func createTestRound(t *testing.T, db *gorm.DB, operatorName, roundType string, timestamp time.Time) uint64 {
	var operator models.Operator
	err := db.Where("name = ?", operatorName).First(&operator).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		operator = models.Operator{Name: operatorName}
		if err := db.Create(&operator).Error; err != nil {
			t.Fatalf("Failed to create operator: %v", err)
		}
	} else if err != nil {
		t.Fatalf("Failed to look up operator: %v", err)
	}

	round := models.Round{
		RoundType:  roundType,
		OperatorID: operator.ID,
		Shift:      "Days",
		Timestamp:  timestamp,
	}
	if err := db.Create(&round).Error; err != nil {
		t.Fatalf("Failed to create round: %v", err)
	}
	return round.ID
}

func sectionItems(t *testing.T, db *gorm.DB, roundID uint64, unit, sectionName string) []models.RoundItem {
	var section models.Section
	err := db.Where("round_id = ? AND unit = ? AND section_name = ?", roundID, unit, sectionName).
		First(&section).Error
	if err != nil {
		t.Fatalf("Failed to find section: %v", err)
	}

	var items []models.RoundItem
	if err := db.Where("section_id = ?", section.ID).Order("id").Find(&items).Error; err != nil {
		t.Fatalf("Failed to load items: %v", err)
	}
	return items
}

func TestSaveSectionItemsCreatesSectionAndItems(t *testing.T) {
	db := setupTestDB(t)
	roundID := createTestRound(t, db, "jsmith", "Alky Console Round Sheet", time.Now())

	items := []services.ItemInput{
		{Description: "Pump discharge pressure", Value: "120", Output: "45", Mode: "Auto"},
		{Description: "Seal pot level", Value: "60", Mode: "Manual"},
	}
	if err := services.SaveSectionItems(db, roundID, "017 Alky I", "Compressors", items); err != nil {
		t.Fatalf("SaveSectionItems failed: %v", err)
	}

	got := sectionItems(t, db, roundID, "017 Alky I", "Compressors")
	if len(got) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(got))
	}
	if got[0].Description != "Pump discharge pressure" || got[0].Value != "120" {
		t.Errorf("Unexpected first item: %+v", got[0])
	}
}

func TestSaveSectionItemsIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	roundID := createTestRound(t, db, "jsmith", "Alky Console Round Sheet", time.Now())

	items := []services.ItemInput{
		{Description: "Pump discharge pressure", Value: "120"},
		{Description: "Seal pot level", Value: "60"},
	}
	if err := services.SaveSectionItems(db, roundID, "017 Alky I", "Compressors", items); err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	before := sectionItems(t, db, roundID, "017 Alky I", "Compressors")

	if err := services.SaveSectionItems(db, roundID, "017 Alky I", "Compressors", items); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}
	after := sectionItems(t, db, roundID, "017 Alky I", "Compressors")

	if len(after) != 2 {
		t.Fatalf("Expected 2 items after re-save, got %d", len(after))
	}
	for i := range before {
		if before[i].ID != after[i].ID {
			t.Errorf("Item id changed on re-save: %d != %d", before[i].ID, after[i].ID)
		}
	}

	var sectionCount int64
	db.Model(&models.Section{}).Where("round_id = ?", roundID).Count(&sectionCount)
	if sectionCount != 1 {
		t.Errorf("Expected 1 section after re-save, got %d", sectionCount)
	}
}

func TestSaveSectionItemsPreservesUnmentionedItems(t *testing.T) {
	db := setupTestDB(t)
	roundID := createTestRound(t, db, "jsmith", "Alky Console Round Sheet", time.Now())

	initial := []services.ItemInput{
		{Description: "Item A", Value: "1"},
		{Description: "Item B", Value: "2"},
		{Description: "Item C", Value: "3"},
	}
	if err := services.SaveSectionItems(db, roundID, "017 Alky I", "Compressors", initial); err != nil {
		t.Fatalf("Initial save failed: %v", err)
	}

	// Partial submission mentions only Item A.
	partial := []services.ItemInput{
		{Description: "Item A", Value: "99"},
	}
	if err := services.SaveSectionItems(db, roundID, "017 Alky I", "Compressors", partial); err != nil {
		t.Fatalf("Partial save failed: %v", err)
	}

	got := sectionItems(t, db, roundID, "017 Alky I", "Compressors")
	if len(got) != 3 {
		t.Fatalf("Expected 3 items after partial save, got %d", len(got))
	}

	values := map[string]string{}
	for _, item := range got {
		values[item.Description] = item.Value
	}
	if values["Item A"] != "99" {
		t.Errorf("Item A should be updated to 99, got %s", values["Item A"])
	}
	if values["Item B"] != "2" || values["Item C"] != "3" {
		t.Errorf("Unmentioned items should be untouched: %v", values)
	}
}

func TestSaveSectionItemsMatchesCaseInsensitively(t *testing.T) {
	db := setupTestDB(t)
	roundID := createTestRound(t, db, "jsmith", "Alky Console Round Sheet", time.Now())

	if err := services.SaveSectionItems(db, roundID, "017 Alky I", "Compressors", []services.ItemInput{
		{Description: "pump pressure", Value: "1"},
	}); err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	if err := services.SaveSectionItems(db, roundID, "017 alky i", "  compressors ", []services.ItemInput{
		{Description: "  Pump Pressure ", Value: "2"},
	}); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	got := sectionItems(t, db, roundID, "017 Alky I", "Compressors")
	if len(got) != 1 {
		t.Fatalf("Expected 1 item after case-variant re-save, got %d", len(got))
	}
	if got[0].Value != "2" {
		t.Errorf("Expected updated value 2, got %s", got[0].Value)
	}
	// The description is recased to the latest submission.
	if got[0].Description != "Pump Pressure" {
		t.Errorf("Expected recased description, got %q", got[0].Description)
	}
}

func TestSaveSectionItemsRejectsDuplicatePayload(t *testing.T) {
	db := setupTestDB(t)
	roundID := createTestRound(t, db, "jsmith", "Alky Console Round Sheet", time.Now())

	err := services.SaveSectionItems(db, roundID, "017 Alky I", "Compressors", []services.ItemInput{
		{Description: "Pump pressure", Value: "1"},
		{Description: " pump PRESSURE ", Value: "2"},
	})
	if !errors.Is(err, services.ErrDuplicateItem) {
		t.Fatalf("Expected ErrDuplicateItem, got %v", err)
	}
}

func TestSaveSectionItemsMissingRound(t *testing.T) {
	db := setupTestDB(t)

	err := services.SaveSectionItems(db, 9999, "017 Alky I", "Compressors", []services.ItemInput{
		{Description: "Pump pressure"},
	})
	if !errors.Is(err, services.ErrNoActiveRound) {
		t.Fatalf("Expected ErrNoActiveRound, got %v", err)
	}
}

func TestAddSectionItemRejectsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	roundID := createTestRound(t, db, "jsmith", "Alky Console Round Sheet", time.Now())

	if _, err := services.AddSectionItem(db, roundID, "017 Alky I", "Compressors", services.ItemInput{
		Description: "Pump pressure", Value: "1",
	}); err != nil {
		t.Fatalf("First add failed: %v", err)
	}

	_, err := services.AddSectionItem(db, roundID, "017 Alky I", "Compressors", services.ItemInput{
		Description: "PUMP PRESSURE", Value: "2",
	})
	if !errors.Is(err, services.ErrDuplicateItem) {
		t.Fatalf("Expected ErrDuplicateItem, got %v", err)
	}
}

func TestUpdateItemEverywherePropagatesAcrossRounds(t *testing.T) {
	db := setupTestDB(t)
	round1 := createTestRound(t, db, "jsmith", "Alky Console Round Sheet", time.Now().Add(-time.Hour))
	round2 := createTestRound(t, db, "mjones", "Alky Console Round Sheet", time.Now())

	for _, roundID := range []uint64{round1, round2} {
		if err := services.SaveSectionItems(db, roundID, "017 Alky I", "Compressors", []services.ItemInput{
			{Description: "Seal pot level", Value: "60"},
		}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	affected, err := services.UpdateItemEverywhere(db, "017 Alky I", "Compressors", "seal pot level", services.ItemInput{
		Description: "Seal pot level (inches)", Value: "61", Mode: "Manual",
	})
	if err != nil {
		t.Fatalf("UpdateItemEverywhere failed: %v", err)
	}
	if affected != 2 {
		t.Fatalf("Expected 2 rows updated, got %d", affected)
	}

	for _, roundID := range []uint64{round1, round2} {
		items := sectionItems(t, db, roundID, "017 Alky I", "Compressors")
		if len(items) != 1 {
			t.Fatalf("Expected 1 item in round %d, got %d", roundID, len(items))
		}
		if items[0].Description != "Seal pot level (inches)" || items[0].Value != "61" {
			t.Errorf("Round %d item not updated: %+v", roundID, items[0])
		}
	}
}

func TestUpdateItemEverywhereRejectsRenameCollision(t *testing.T) {
	db := setupTestDB(t)
	roundID := createTestRound(t, db, "jsmith", "Alky Console Round Sheet", time.Now())

	if err := services.SaveSectionItems(db, roundID, "017 Alky I", "Compressors", []services.ItemInput{
		{Description: "Item A", Value: "1"},
		{Description: "Item B", Value: "2"},
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	_, err := services.UpdateItemEverywhere(db, "017 Alky I", "Compressors", "Item A", services.ItemInput{
		Description: "item b",
	})
	if !errors.Is(err, services.ErrDuplicateItem) {
		t.Fatalf("Expected ErrDuplicateItem, got %v", err)
	}
}

func TestUpdateItemEverywhereNotFound(t *testing.T) {
	db := setupTestDB(t)
	roundID := createTestRound(t, db, "jsmith", "Alky Console Round Sheet", time.Now())

	if err := services.SaveSectionItems(db, roundID, "017 Alky I", "Compressors", []services.ItemInput{
		{Description: "Item A"},
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	_, err := services.UpdateItemEverywhere(db, "017 Alky I", "Compressors", "No such item", services.ItemInput{
		Description: "No such item", Value: "1",
	})
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	_, err = services.UpdateItemEverywhere(db, "No such unit", "Compressors", "Item A", services.ItemInput{
		Description: "Item A",
	})
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for missing section, got %v", err)
	}
}

func TestDeleteItemEverywherePropagatesAcrossRounds(t *testing.T) {
	db := setupTestDB(t)
	round1 := createTestRound(t, db, "jsmith", "Alky Console Round Sheet", time.Now().Add(-time.Hour))
	round2 := createTestRound(t, db, "mjones", "Alky Console Round Sheet", time.Now())

	for _, roundID := range []uint64{round1, round2} {
		if err := services.SaveSectionItems(db, roundID, "017 Alky I", "Compressors", []services.ItemInput{
			{Description: "Seal pot level", Value: "60"},
			{Description: "Discharge temp", Value: "180"},
		}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	deleted, err := services.DeleteItemEverywhere(db, "017 Alky I", "Compressors", "SEAL POT LEVEL")
	if err != nil {
		t.Fatalf("DeleteItemEverywhere failed: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("Expected 2 rows deleted, got %d", deleted)
	}

	for _, roundID := range []uint64{round1, round2} {
		items := sectionItems(t, db, roundID, "017 Alky I", "Compressors")
		if len(items) != 1 {
			t.Fatalf("Expected 1 remaining item in round %d, got %d", roundID, len(items))
		}
		if items[0].Description != "Discharge temp" {
			t.Errorf("Wrong item survived in round %d: %+v", roundID, items[0])
		}
	}
}

func TestDeleteItemEverywhereNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.DeleteItemEverywhere(db, "017 Alky I", "Compressors", "anything")
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

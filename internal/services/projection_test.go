package services_test

import (
	"testing"
	"time"

	"github.com/plantops/roundsdb/internal/services"
	"github.com/plantops/roundsdb/internal/templates"
)

var testRoundTypes = []templates.RoundType{
	{Name: "Alky Console Round Sheet", Units: []string{"017 Alky I", "010 Olefin Splitter"}},
	{Name: "FCC Console Round Sheet"},
}

func TestLoadCurrentStateSeedsTemplates(t *testing.T) {
	db := setupTestDB(t)

	state, err := services.LoadCurrentState(db, testRoundTypes)
	if err != nil {
		t.Fatalf("LoadCurrentState failed: %v", err)
	}

	alky, ok := state["Alky Console Round Sheet"]
	if !ok {
		t.Fatal("Expected Alky round type in state")
	}
	if len(alky.Units) != 2 {
		t.Fatalf("Expected 2 predeclared units, got %d", len(alky.Units))
	}
	if _, ok := alky.Units["017 Alky I"]; !ok {
		t.Error("Expected predeclared unit 017 Alky I")
	}

	fcc, ok := state["FCC Console Round Sheet"]
	if !ok {
		t.Fatal("Expected FCC round type in state")
	}
	if len(fcc.Units) != 0 {
		t.Errorf("Expected no units for FCC, got %d", len(fcc.Units))
	}
}

func TestLoadCurrentStateMostRecentWins(t *testing.T) {
	db := setupTestDB(t)
	older := createTestRound(t, db, "jsmith", "Alky Console Round Sheet", time.Now().Add(-2*time.Hour))
	newer := createTestRound(t, db, "mjones", "Alky Console Round Sheet", time.Now())

	if err := services.SaveSectionItems(db, older, "017 Alky I", "Compressors", []services.ItemInput{
		{Description: "Seal pot level", Value: "old", Mode: "Manual"},
		{Description: "Only in old round", Value: "kept"},
	}); err != nil {
		t.Fatalf("Save to older round failed: %v", err)
	}
	if err := services.SaveSectionItems(db, newer, "017 Alky I", "Compressors", []services.ItemInput{
		{Description: "seal pot level", Value: "new", Mode: "Auto"},
	}); err != nil {
		t.Fatalf("Save to newer round failed: %v", err)
	}

	state, err := services.LoadCurrentState(db, testRoundTypes)
	if err != nil {
		t.Fatalf("LoadCurrentState failed: %v", err)
	}

	section := state["Alky Console Round Sheet"].Units["017 Alky I"].Sections["Compressors"]
	if section == nil {
		t.Fatal("Expected Compressors section in state")
	}
	if len(section.Items) != 2 {
		t.Fatalf("Expected 2 items in projection, got %d", len(section.Items))
	}

	values := map[string]services.ItemState{}
	for _, item := range section.Items {
		values[item.Description] = item
	}
	if got := values["seal pot level"]; got.Value != "new" || got.Mode != "Auto" {
		t.Errorf("Expected newest value for seal pot level, got %+v", got)
	}
	if got := values["Only in old round"]; got.Value != "kept" {
		t.Errorf("Item present only in older round should survive, got %+v", got)
	}
}

func TestLoadCurrentStateKeepsEmptySections(t *testing.T) {
	db := setupTestDB(t)
	roundID := createTestRound(t, db, "jsmith", "Alky Console Round Sheet", time.Now())

	// Saving an empty item list still creates the section.
	if err := services.SaveSectionItems(db, roundID, "017 Alky I", "Exchangers", nil); err != nil {
		t.Fatalf("Empty save failed: %v", err)
	}

	state, err := services.LoadCurrentState(db, testRoundTypes)
	if err != nil {
		t.Fatalf("LoadCurrentState failed: %v", err)
	}

	section := state["Alky Console Round Sheet"].Units["017 Alky I"].Sections["Exchangers"]
	if section == nil {
		t.Fatal("Expected empty section to appear in state")
	}
	if len(section.Items) != 0 {
		t.Errorf("Expected no items, got %d", len(section.Items))
	}
}

func TestLoadCurrentStateIsDeterministic(t *testing.T) {
	db := setupTestDB(t)
	ts := time.Now()

	// Two rounds with an identical timestamp; the higher round id wins.
	first := createTestRound(t, db, "jsmith", "Alky Console Round Sheet", ts)
	second := createTestRound(t, db, "mjones", "Alky Console Round Sheet", ts)

	if err := services.SaveSectionItems(db, first, "017 Alky I", "Compressors", []services.ItemInput{
		{Description: "Seal pot level", Value: "first"},
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := services.SaveSectionItems(db, second, "017 Alky I", "Compressors", []services.ItemInput{
		{Description: "Seal pot level", Value: "second"},
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		state, err := services.LoadCurrentState(db, testRoundTypes)
		if err != nil {
			t.Fatalf("LoadCurrentState failed: %v", err)
		}
		section := state["Alky Console Round Sheet"].Units["017 Alky I"].Sections["Compressors"]
		if len(section.Items) != 1 {
			t.Fatalf("Expected 1 item, got %d", len(section.Items))
		}
		if section.Items[0].Value != "second" {
			t.Errorf("Run %d: expected value from later round, got %q", i, section.Items[0].Value)
		}
	}
}

func TestLoadCurrentStateUnknownRoundTypeStillAppears(t *testing.T) {
	db := setupTestDB(t)
	roundID := createTestRound(t, db, "jsmith", "Ad Hoc Walkdown", time.Now())

	if err := services.SaveSectionItems(db, roundID, "Tank Farm", "Valves", []services.ItemInput{
		{Description: "Block valve position", Value: "Open"},
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	state, err := services.LoadCurrentState(db, testRoundTypes)
	if err != nil {
		t.Fatalf("LoadCurrentState failed: %v", err)
	}

	adhoc, ok := state["Ad Hoc Walkdown"]
	if !ok {
		t.Fatal("Round type not in templates should still appear in state")
	}
	section := adhoc.Units["Tank Farm"].Sections["Valves"]
	if section == nil || len(section.Items) != 1 {
		t.Fatalf("Expected 1 item under ad hoc round type, got %+v", section)
	}
}

package templates_test

import (
	"testing"

	"github.com/plantops/roundsdb/internal/templates"
)

func TestLoad(t *testing.T) {
	roundTypes, err := templates.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(roundTypes) == 0 {
		t.Fatal("Expected at least one round type")
	}

	alky := templates.Find(roundTypes, "Alky Console Round Sheet")
	if alky == nil {
		t.Fatal("Expected Alky Console Round Sheet template")
	}
	if len(alky.Units) != 5 {
		t.Errorf("Expected 5 Alky units, got %d", len(alky.Units))
	}

	fcc := templates.Find(roundTypes, "FCC Console Round Sheet")
	if fcc == nil {
		t.Fatal("Expected FCC Console Round Sheet template")
	}
	if len(fcc.Units) != 0 {
		t.Errorf("Expected FCC template with no units, got %d", len(fcc.Units))
	}
}

func TestFindMissing(t *testing.T) {
	roundTypes, err := templates.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := templates.Find(roundTypes, "No Such Round"); got != nil {
		t.Errorf("Expected nil for unknown round type, got %+v", got)
	}
}

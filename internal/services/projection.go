package services

import (
	"github.com/plantops/roundsdb/internal/models"
	"github.com/plantops/roundsdb/internal/templates"
	"gorm.io/gorm"
)

// ItemState is the last known reading for one checklist item.
type ItemState struct {
	Description string `json:"description"`
	Value       string `json:"value"`
	Output      string `json:"output"`
	Mode        string `json:"mode"`
}

// SectionState holds the projected items of one section.
type SectionState struct {
	Items []ItemState `json:"items"`
}

// UnitState holds the projected sections of one unit.
type UnitState struct {
	Sections map[string]*SectionState `json:"sections"`
}

// RoundTypeState holds the projected units of one round type.
type RoundTypeState struct {
	Units map[string]*UnitState `json:"units"`
}

// RoundState is the derived "current view": for every round type, unit, and
// section ever recorded, the most recent value of each item across all
// historical rounds. It is recomputed on demand and is never a source of
// truth.
type RoundState map[string]*RoundTypeState

type sectionRow struct {
	RoundType   string
	Unit        string
	SectionName string
}

type itemRow struct {
	RoundType   string
	Unit        string
	SectionName string
	Description string
	Value       string
	Output      string
	Mode        string
}

// LoadCurrentState reconstructs the current view by scanning all historical
// rounds.
//
// The structure is seeded from the round-type templates so predeclared units
// appear even before any data exists, then every (round_type, unit, section)
// triple that has ever existed is added so empty sections stay visible.
// Items are scanned newest-round-first; the first row seen for a given
// (unit, section, normalized description) wins. Ties on round timestamp break
// by round id, then item insertion order, so repeated calls over the same data
// return the same result.
func LoadCurrentState(db *gorm.DB, roundTypes []templates.RoundType) (RoundState, error) {
	state := make(RoundState, len(roundTypes))
	for _, rt := range roundTypes {
		typeState := &RoundTypeState{Units: make(map[string]*UnitState, len(rt.Units))}
		for _, unit := range rt.Units {
			typeState.Units[unit] = &UnitState{Sections: make(map[string]*SectionState)}
		}
		state[rt.Name] = typeState
	}

	var sectionRows []sectionRow
	err := db.Model(&models.Section{}).
		Distinct("rounds.round_type", "sections.unit", "sections.section_name").
		Joins("JOIN rounds ON sections.round_id = rounds.id").
		Order("sections.unit, sections.section_name").
		Scan(&sectionRows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range sectionRows {
		ensureSection(state, row.RoundType, row.Unit, row.SectionName)
	}

	var itemRows []itemRow
	err = db.Model(&models.RoundItem{}).
		Select("rounds.round_type", "sections.unit", "sections.section_name",
			"round_items.description", "round_items.value", "round_items.output", "round_items.mode").
		Joins("JOIN sections ON round_items.section_id = sections.id").
		Joins("JOIN rounds ON sections.round_id = rounds.id").
		Order("rounds.timestamp DESC, rounds.id DESC, round_items.id ASC").
		Scan(&itemRows).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[[3]string]struct{}, len(itemRows))
	for _, row := range itemRows {
		if row.Description == "" {
			continue
		}
		key := [3]string{row.Unit, row.SectionName, normalizeKey(row.Description)}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		section := ensureSection(state, row.RoundType, row.Unit, row.SectionName)
		section.Items = append(section.Items, ItemState{
			Description: row.Description,
			Value:       row.Value,
			Output:      row.Output,
			Mode:        row.Mode,
		})
	}

	return state, nil
}

// ensureSection returns the SectionState for the triple, creating any missing
// levels of the structure on the way down.
func ensureSection(state RoundState, roundType, unit, sectionName string) *SectionState {
	typeState, ok := state[roundType]
	if !ok {
		typeState = &RoundTypeState{Units: make(map[string]*UnitState)}
		state[roundType] = typeState
	}
	unitState, ok := typeState.Units[unit]
	if !ok {
		unitState = &UnitState{Sections: make(map[string]*SectionState)}
		typeState.Units[unit] = unitState
	}
	section, ok := unitState.Sections[sectionName]
	if !ok {
		section = &SectionState{Items: []ItemState{}}
		unitState.Sections[sectionName] = section
	}
	return section
}

package services

import (
	"errors"
	"strings"

	"github.com/plantops/roundsdb/internal/models"
	"gorm.io/gorm"
)

// ItemInput is one checklist reading submitted from a form.
type ItemInput struct {
	Description string `json:"description"`
	Value       string `json:"value"`
	Output      string `json:"output"`
	Mode        string `json:"mode"`
}

// normalizeKey folds an item description or name to its identity form:
// trimmed and case-folded.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SaveSectionItems persists one section's worth of readings against a round.
//
// The section row for (roundID, unit, sectionName) is resolved with
// case/whitespace-insensitive matching and created if absent. Existing items
// are matched by normalized description: matches are updated in place (the row
// id is preserved, the description is recased to the input), unmatched inputs
// are inserted, and existing rows never mentioned in the input are left
// untouched so history survives partial submissions. The whole call is one
// transaction.
func SaveSectionItems(db *gorm.DB, roundID uint64, unit, sectionName string, items []ItemInput) error {
	// Reject payloads that would violate description uniqueness before
	// touching the store.
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		key := normalizeKey(item.Description)
		if _, dup := seen[key]; dup {
			return ErrDuplicateItem
		}
		seen[key] = struct{}{}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var round models.Round
		if err := tx.First(&round, roundID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoActiveRound
			}
			return err
		}

		var section models.Section
		err := tx.Where(
			"round_id = ? AND LOWER(TRIM(unit)) = LOWER(TRIM(?)) AND LOWER(TRIM(section_name)) = LOWER(TRIM(?))",
			roundID, unit, sectionName,
		).First(&section).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			section = models.Section{
				RoundID:     roundID,
				Unit:        strings.TrimSpace(unit),
				SectionName: strings.TrimSpace(sectionName),
			}
			if err := tx.Create(&section).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		var existing []models.RoundItem
		if err := tx.Where("section_id = ?", section.ID).Find(&existing).Error; err != nil {
			return err
		}
		byKey := make(map[string]models.RoundItem, len(existing))
		for _, row := range existing {
			byKey[normalizeKey(row.Description)] = row
		}

		for _, item := range items {
			desc := strings.TrimSpace(item.Description)
			key := normalizeKey(desc)

			if row, ok := byKey[key]; ok {
				updates := map[string]interface{}{
					"description": desc,
					"value":       strings.TrimSpace(item.Value),
					"output":      strings.TrimSpace(item.Output),
					"mode":        strings.TrimSpace(item.Mode),
				}
				if err := tx.Model(&models.RoundItem{}).Where("id = ?", row.ID).Updates(updates).Error; err != nil {
					return err
				}
				// Anything left in byKey afterwards was absent from the input
				// and stays untouched.
				delete(byKey, key)
			} else {
				row := models.RoundItem{
					SectionID:   section.ID,
					Description: desc,
					Value:       strings.TrimSpace(item.Value),
					Output:      strings.TrimSpace(item.Output),
					Mode:        strings.TrimSpace(item.Mode),
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}

// AddSectionItem records a single new item against a round, creating the
// section lazily if this is the first item for a previously unseen
// (unit, section) pair. A description already present in the section is a
// conflict.
func AddSectionItem(db *gorm.DB, roundID uint64, unit, sectionName string, item ItemInput) (uint64, error) {
	var itemID uint64

	err := db.Transaction(func(tx *gorm.DB) error {
		var round models.Round
		if err := tx.First(&round, roundID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoActiveRound
			}
			return err
		}

		var section models.Section
		err := tx.Where(
			"round_id = ? AND LOWER(TRIM(unit)) = LOWER(TRIM(?)) AND LOWER(TRIM(section_name)) = LOWER(TRIM(?))",
			roundID, unit, sectionName,
		).First(&section).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			section = models.Section{
				RoundID:     roundID,
				Unit:        strings.TrimSpace(unit),
				SectionName: strings.TrimSpace(sectionName),
			}
			if err := tx.Create(&section).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.RoundItem{}).
			Where("section_id = ? AND LOWER(TRIM(description)) = LOWER(TRIM(?))", section.ID, item.Description).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateItem
		}

		row := models.RoundItem{
			SectionID:   section.ID,
			Description: strings.TrimSpace(item.Description),
			Value:       strings.TrimSpace(item.Value),
			Output:      strings.TrimSpace(item.Output),
			Mode:        strings.TrimSpace(item.Mode),
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		itemID = row.ID
		return nil
	})

	return itemID, err
}

// UpdateItemEverywhere edits an item identified by its
// (unit, section name, description) triple in every round that carries it.
// A correction made once propagates to all historical rows bearing that
// description. Renames that would collide with a different existing item in
// any matching section are rejected before anything is written. Returns the
// number of rows updated.
func UpdateItemEverywhere(db *gorm.DB, unit, sectionName, description string, item ItemInput) (int64, error) {
	var updated int64

	err := db.Transaction(func(tx *gorm.DB) error {
		sectionIDs, err := matchingSectionIDs(tx, unit, sectionName)
		if err != nil {
			return err
		}
		if len(sectionIDs) == 0 {
			return ErrNotFound
		}

		newDesc := strings.TrimSpace(item.Description)
		if normalizeKey(description) != normalizeKey(newDesc) {
			var count int64
			if err := tx.Model(&models.RoundItem{}).
				Where("section_id IN ? AND LOWER(TRIM(description)) = LOWER(TRIM(?))", sectionIDs, newDesc).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrDuplicateItem
			}
		}

		result := tx.Model(&models.RoundItem{}).
			Where("section_id IN ? AND LOWER(TRIM(description)) = LOWER(TRIM(?))", sectionIDs, description).
			Updates(map[string]interface{}{
				"description": newDesc,
				"value":       strings.TrimSpace(item.Value),
				"output":      strings.TrimSpace(item.Output),
				"mode":        strings.TrimSpace(item.Mode),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		updated = result.RowsAffected
		return nil
	})

	return updated, err
}

// DeleteItemEverywhere removes an item identified by its
// (unit, section name, description) triple from every round that carries it.
// Returns the number of rows deleted.
func DeleteItemEverywhere(db *gorm.DB, unit, sectionName, description string) (int64, error) {
	var deleted int64

	err := db.Transaction(func(tx *gorm.DB) error {
		sectionIDs, err := matchingSectionIDs(tx, unit, sectionName)
		if err != nil {
			return err
		}
		if len(sectionIDs) == 0 {
			return ErrNotFound
		}

		result := tx.
			Where("section_id IN ? AND LOWER(TRIM(description)) = LOWER(TRIM(?))", sectionIDs, description).
			Delete(&models.RoundItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		deleted = result.RowsAffected
		return nil
	})

	return deleted, err
}

// matchingSectionIDs returns the ids of every section in every round whose
// (unit, section_name) matches under normalized comparison. Served by
// idx_section_identity.
func matchingSectionIDs(tx *gorm.DB, unit, sectionName string) ([]uint64, error) {
	var ids []uint64
	err := tx.Model(&models.Section{}).
		Where("LOWER(TRIM(unit)) = LOWER(TRIM(?)) AND LOWER(TRIM(section_name)) = LOWER(TRIM(?))", unit, sectionName).
		Pluck("id", &ids).Error
	return ids, err
}

package services

import (
	"errors"

	"github.com/plantops/roundsdb/internal/models"
	"gorm.io/gorm"
)

// RoundSummary is one row of an operator's round history.
type RoundSummary struct {
	ID           uint64 `json:"id"`
	RoundType    string `json:"roundType"`
	Shift        string `json:"shift"`
	Timestamp    string `json:"timestamp"`
	SectionCount int64  `json:"sectionCount"`
}

// PeriodSummary aggregates rounds per operator and round type over a date
// range.
type PeriodSummary struct {
	OperatorName string `json:"operatorName"`
	RoundType    string `json:"roundType"`
	RoundCount   int64  `json:"roundCount"`
	FirstRound   string `json:"firstRound"`
	LastRound    string `json:"lastRound"`
}

// GetRoundByID retrieves a complete round: operator, sections ordered by
// unit and name, and items in insertion order.
func GetRoundByID(db *gorm.DB, roundID uint64) (*models.Round, error) {
	var round models.Round
	err := db.
		Preload("Operator").
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sections.unit, sections.section_name")
		}).
		Preload("Sections.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("round_items.id")
		}).
		First(&round, roundID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &round, nil
}

// GetOperatorRounds returns summaries of every round recorded by the named
// operator, newest first.
func GetOperatorRounds(db *gorm.DB, operatorName string) ([]RoundSummary, error) {
	var summaries []RoundSummary
	err := db.Model(&models.Round{}).
		Select("rounds.id", "rounds.round_type", "rounds.shift", "rounds.timestamp",
			"(SELECT COUNT(*) FROM sections WHERE sections.round_id = rounds.id) AS section_count").
		Joins("JOIN operators ON rounds.operator_id = operators.id").
		Where("LOWER(TRIM(operators.name)) = LOWER(TRIM(?))", operatorName).
		Order("rounds.timestamp DESC, rounds.id DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetAllOperators returns every operator ordered by name.
func GetAllOperators(db *gorm.DB) ([]models.Operator, error) {
	var operators []models.Operator
	if err := db.Order("name").Find(&operators).Error; err != nil {
		return nil, err
	}
	return operators, nil
}

// GetRoundSummaryForPeriod returns per-operator, per-round-type counts for
// rounds whose date falls between start and end (inclusive, ISO dates).
func GetRoundSummaryForPeriod(db *gorm.DB, startDate, endDate string) ([]PeriodSummary, error) {
	var summaries []PeriodSummary
	err := db.Model(&models.Round{}).
		Select("operators.name AS operator_name", "rounds.round_type",
			"COUNT(rounds.id) AS round_count",
			"MIN(rounds.timestamp) AS first_round",
			"MAX(rounds.timestamp) AS last_round").
		Joins("JOIN operators ON rounds.operator_id = operators.id").
		Where("DATE(rounds.timestamp) BETWEEN ? AND ?", startDate, endDate).
		Group("operators.name, rounds.round_type").
		Order("operators.name, rounds.round_type").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// DeleteRound removes a round and everything under it: all items of all of
// its sections, the sections, then the round row itself. One transaction;
// rows belonging to other rounds are never touched.
func DeleteRound(db *gorm.DB, roundID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var sectionIDs []uint64
		if err := tx.Model(&models.Section{}).
			Where("round_id = ?", roundID).
			Pluck("id", &sectionIDs).Error; err != nil {
			return err
		}

		if len(sectionIDs) > 0 {
			if err := tx.Where("section_id IN ?", sectionIDs).Delete(&models.RoundItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("round_id = ?", roundID).Delete(&models.Section{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.Round{}, roundID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

package models

import (
	"time"
)

// Operator is a plant operator identified by name. Rows are created lazily the
// first time a round is started for an unknown name and are never mutated or
// deleted afterwards.
type Operator struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Round is one inspection pass through a round template for one operator and
// shift. Deleting a round cascades to its sections and items.
type Round struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoundType  string    `gorm:"size:255;not null" json:"roundType"`
	OperatorID uint64    `gorm:"not null;index" json:"operatorId"`
	Operator   Operator  `gorm:"foreignKey:OperatorID" json:"operator"`
	Shift      string    `gorm:"size:255;not null" json:"shift"`
	Timestamp  time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
	Sections   []Section `gorm:"foreignKey:RoundID;constraint:OnDelete:CASCADE" json:"sections,omitempty"`
}

// Section is a named checklist grouping scoped to one unit within one round.
// (round_id, unit, section_name) is the natural key; matching is
// case/whitespace-insensitive and enforced by lookup-before-insert, not by a
// database constraint. The (unit, section_name) index serves the cross-round
// identity lookups used by item edit/delete propagation.
type Section struct {
	ID          uint64      `gorm:"primaryKey;autoIncrement" json:"id"`
	RoundID     uint64      `gorm:"not null;index" json:"roundId"`
	Unit        string      `gorm:"size:255;not null;index:idx_section_identity" json:"unit"`
	SectionName string      `gorm:"size:255;not null;index:idx_section_identity" json:"sectionName"`
	Completed   bool        `gorm:"not null;default:false" json:"completed"`
	Items       []RoundItem `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// RoundItem is one checklist reading within a section. description is the
// natural key within a section under trimmed, case-folded comparison.
type RoundItem struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SectionID   uint64    `gorm:"not null;index:idx_item_identity" json:"sectionId"`
	Description string    `gorm:"size:255;not null;index:idx_item_identity" json:"description"`
	Value       string    `gorm:"size:255" json:"value"`
	Output      string    `gorm:"size:255" json:"output"`
	Mode        string    `gorm:"size:32" json:"mode"`
	Timestamp   time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

// TableName overrides the table name for Operator
func (Operator) TableName() string {
	return "operators"
}

// TableName overrides the table name for Round
func (Round) TableName() string {
	return "rounds"
}

// TableName overrides the table name for Section
func (Section) TableName() string {
	return "sections"
}

// TableName overrides the table name for RoundItem
func (RoundItem) TableName() string {
	return "round_items"
}

package session

import (
	"errors"
	"strings"
	"sync"

	"github.com/plantops/roundsdb/internal/models"
	"github.com/plantops/roundsdb/internal/validation"
	"gorm.io/gorm"
)

// Context carries the working state of one in-progress round: who is walking
// it, which round row it writes to, and how far through each unit's section
// list the walk has progressed. It lives in memory only; the round row is the
// durable part.
type Context struct {
	mu sync.Mutex

	OperatorName string
	Shift        string
	RoundType    string
	RoundID      uint64

	walks map[string]*unitWalk
}

type unitWalk struct {
	sections  []string
	current   int
	completed map[string]struct{}
}

// StartRound validates the operator name, resolves or creates the operator
// row, creates a new round row, and returns a Context bound to it. Operator
// lookup is case/whitespace-insensitive but the stored name keeps the exact
// spelling of first registration.
func StartRound(db *gorm.DB, operatorName, shift, roundType string) (*Context, error) {
	if err := validation.Required("Operator name", operatorName); err != nil {
		return nil, err
	}
	if err := validation.Required("Round type", roundType); err != nil {
		return nil, err
	}

	ctx := &Context{
		OperatorName: strings.TrimSpace(operatorName),
		Shift:        strings.TrimSpace(shift),
		RoundType:    strings.TrimSpace(roundType),
		walks:        make(map[string]*unitWalk),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var operator models.Operator
		err := tx.Where("LOWER(TRIM(name)) = LOWER(TRIM(?))", ctx.OperatorName).
			First(&operator).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			operator = models.Operator{Name: ctx.OperatorName}
			if err := tx.Create(&operator).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		round := models.Round{
			RoundType:  ctx.RoundType,
			OperatorID: operator.ID,
			Shift:      ctx.Shift,
		}
		if err := tx.Create(&round).Error; err != nil {
			return err
		}
		ctx.RoundID = round.ID
		ctx.OperatorName = operator.Name
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ctx, nil
}

// BeginWalk initializes (or reinitializes) the section walk for a unit. The
// pointer starts at the first section and the completed set is empty.
func (c *Context) BeginWalk(unit string, sections []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.walks[unit] = &unitWalk{
		sections:  append([]string(nil), sections...),
		completed: make(map[string]struct{}),
	}
}

// CurrentSection returns the section the walk currently points at for a unit.
// The second return is false when no walk exists or every section is done.
func (c *Context) CurrentSection(unit string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, ok := c.walks[unit]
	if !ok || len(w.sections) == 0 {
		return "", false
	}
	if w.current >= len(w.sections) {
		w.current = 0
	}
	return w.sections[w.current], true
}

// CompleteSection marks a section done and advances the pointer past every
// already-completed section. When the last section completes, the walk resets
// so the unit can be walked again; the round id is unchanged, so later
// submissions keep landing in the same round. Returns the next section to
// visit and whether this completion finished the full walk.
func (c *Context) CompleteSection(unit, sectionName string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, ok := c.walks[unit]
	if !ok || len(w.sections) == 0 {
		return "", false
	}

	w.completed[sectionName] = struct{}{}

	if len(w.completed) >= len(w.sections) {
		w.current = 0
		w.completed = make(map[string]struct{})
		return w.sections[0], true
	}

	// Advance to the next not-yet-completed section, wrapping around.
	start := w.current
	for i := 1; i <= len(w.sections); i++ {
		idx := (start + i) % len(w.sections)
		if _, done := w.completed[w.sections[idx]]; !done {
			w.current = idx
			return w.sections[idx], false
		}
	}
	return "", false
}

// RemoveSection drops a section from a unit's walk, for when an item delete
// leaves the section gone. If the pointer was on the removed section it falls
// back to the start of the list.
func (c *Context) RemoveSection(unit, sectionName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, ok := c.walks[unit]
	if !ok {
		return
	}

	pointed := ""
	if w.current < len(w.sections) {
		pointed = w.sections[w.current]
	}

	kept := w.sections[:0]
	for _, s := range w.sections {
		if s != sectionName {
			kept = append(kept, s)
		}
	}
	w.sections = kept
	delete(w.completed, sectionName)

	if pointed == sectionName || w.current >= len(w.sections) {
		w.current = 0
	}
}

// Progress reports completed and total section counts for a unit's walk.
func (c *Context) Progress(unit string) (completed, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, ok := c.walks[unit]
	if !ok {
		return 0, 0
	}
	return len(w.completed), len(w.sections)
}

package entity

import "github.com/google/uuid"

// Ledger is the full savings state of a session: the ordered goal sequence
// plus the declared monthly income. Goals keep insertion order; no operation
// reorders them.
type Ledger struct {
	Goals         []*Goal
	MonthlyIncome float64
}

// NewLedger creates an empty ledger with zero income.
func NewLedger() *Ledger {
	return &Ledger{Goals: []*Goal{}}
}

// FindGoal returns the goal with the given ID, or nil if absent.
func (l *Ledger) FindGoal(id uuid.UUID) *Goal {
	for _, g := range l.Goals {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// RemoveGoal deletes the goal with the given ID, preserving the order of the
// remaining goals. Removing an absent ID is a no-op.
func (l *Ledger) RemoveGoal(id uuid.UUID) {
	for i, g := range l.Goals {
		if g.ID == id {
			l.Goals = append(l.Goals[:i], l.Goals[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy of the ledger. Callers outside the store only
// ever see clones, never the owned instance.
func (l *Ledger) Clone() *Ledger {
	goals := make([]*Goal, len(l.Goals))
	for i, g := range l.Goals {
		goals[i] = g.Clone()
	}
	return &Ledger{
		Goals:         goals,
		MonthlyIncome: l.MonthlyIncome,
	}
}

// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/piggybank/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string    `gorm:"type:varchar(255);not null"`
	GoalAmount         float64   `gorm:"type:decimal(15,2);not null"`
	CurrentAmount      float64   `gorm:"type:decimal(15,2);not null;default:0"`
	Kind               string    `gorm:"type:varchar(20);not null;default:'one-time'"`
	Period             string    `gorm:"type:varchar(20);not null;default:'monthly'"`
	PercentageOfIncome float64   `gorm:"type:decimal(8,4);not null;default:0"`
	FixedAmount        float64   `gorm:"type:decimal(15,2);not null;default:0"`
	Color              string    `gorm:"type:varchar(20)"`
	Archived           bool      `gorm:"not null;default:false"`
	Position           int       `gorm:"not null;index"` // preserves ledger insertion order
	CreatedAt          time.Time `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:                 m.ID,
		Name:               m.Name,
		GoalAmount:         m.GoalAmount,
		CurrentAmount:      m.CurrentAmount,
		Kind:               entity.GoalKind(m.Kind),
		Period:             entity.GoalPeriod(m.Period),
		PercentageOfIncome: m.PercentageOfIncome,
		FixedAmount:        m.FixedAmount,
		Color:              m.Color,
		Archived:           m.Archived,
		CreatedAt:          m.CreatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal, position int) *GoalModel {
	return &GoalModel{
		ID:                 goal.ID,
		Name:               goal.Name,
		GoalAmount:         goal.GoalAmount,
		CurrentAmount:      goal.CurrentAmount,
		Kind:               string(goal.Kind),
		Period:             string(goal.Period),
		PercentageOfIncome: goal.PercentageOfIncome,
		FixedAmount:        goal.FixedAmount,
		Color:              goal.Color,
		Archived:           goal.Archived,
		Position:           position,
		CreatedAt:          goal.CreatedAt,
	}
}

// LedgerSettingModel represents the ledger_settings key-value table. The
// monthly income lives here as a bare decimal string.
type LedgerSettingModel struct {
	Key   string `gorm:"type:varchar(64);primaryKey"`
	Value string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for the LedgerSettingModel.
func (LedgerSettingModel) TableName() string {
	return "ledger_settings"
}

// Package persistence implements the ledger snapshot repositories.
package persistence

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/piggybank/backend/internal/application/adapter"
	"github.com/piggybank/backend/internal/domain/entity"
	"github.com/piggybank/backend/internal/integration/persistence/model"
)

const monthlyIncomeKey = "monthly_income"

// gormLedgerRepository stores the ledger as goal rows plus a settings row.
type gormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a SQL-backed ledger repository.
func NewGormLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &gormLedgerRepository{db: db}
}

// Load reads the full snapshot. An empty database yields an empty ledger; a
// malformed income value degrades to zero rather than failing the session.
func (r *gormLedgerRepository) Load(ctx context.Context) (*entity.Ledger, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Order("position ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	ledger := entity.NewLedger()
	for _, gm := range goalModels {
		ledger.Goals = append(ledger.Goals, gm.ToEntity())
	}

	var setting model.LedgerSettingModel
	result = r.db.WithContext(ctx).
		Where("key = ?", monthlyIncomeKey).
		First(&setting)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, result.Error
		}
		return ledger, nil
	}

	income, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil || income < 0 {
		slog.Warn("Malformed monthly income setting, defaulting to zero", "value", setting.Value)
		income = 0
	}
	ledger.MonthlyIncome = income

	return ledger, nil
}

// Save replaces the stored snapshot in one transaction.
func (r *gormLedgerRepository) Save(ctx context.Context, ledger *entity.Ledger) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.GoalModel{}).Error; err != nil {
			return err
		}

		for i, goal := range ledger.Goals {
			if err := tx.Create(model.GoalFromEntity(goal, i)).Error; err != nil {
				return err
			}
		}

		setting := model.LedgerSettingModel{
			Key:   monthlyIncomeKey,
			Value: strconv.FormatFloat(ledger.MonthlyIncome, 'f', -1, 64),
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(&setting).Error
	})
}

// Package store implements the in-memory goal ledger and its mutation rules.
//
// The GoalStore is the single owner of the Ledger. All mutations run behind
// one mutex, validate before touching any field, and ask the persistence
// adapter for a snapshot save after committing. A failed save is reported to
// the caller but never rolls the in-memory mutation back.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/piggybank/backend/internal/application/adapter"
	"github.com/piggybank/backend/internal/domain/contribution"
	"github.com/piggybank/backend/internal/domain/entity"
	domainerror "github.com/piggybank/backend/internal/domain/error"
)

// GoalDraft carries the already-coerced fields for goal creation and edit.
type GoalDraft struct {
	Name               string
	GoalAmount         float64
	CurrentAmount      float64
	Kind               entity.GoalKind
	Period             entity.GoalPeriod
	PercentageOfIncome float64
	FixedAmount        float64
	Color              string
}

// CreditedGoal reports one automatic contribution applied by the batch run.
type CreditedGoal struct {
	Goal   *entity.Goal
	Amount float64
}

// GoalStore owns the ledger for the lifetime of the process.
type GoalStore struct {
	mu     sync.Mutex
	ledger *entity.Ledger
	repo   adapter.LedgerRepository
	clock  adapter.Clock
	random adapter.RandomSource
}

// NewGoalStore creates a store around an empty ledger.
func NewGoalStore(repo adapter.LedgerRepository, clock adapter.Clock, random adapter.RandomSource) *GoalStore {
	return &GoalStore{
		ledger: entity.NewLedger(),
		repo:   repo,
		clock:  clock,
		random: random,
	}
}

// LoadSnapshot replaces the owned ledger with the persisted one. Malformed or
// absent data degrades to an empty ledger; a session never fails to start
// because of a broken snapshot.
func (s *GoalStore) LoadSnapshot(ctx context.Context) {
	ledger, err := s.repo.Load(ctx)
	if err != nil || ledger == nil {
		if err != nil {
			slog.Warn("Could not load ledger snapshot, starting empty", "error", err)
		}
		ledger = entity.NewLedger()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = ledger
}

// AddGoal validates the draft, assigns identity and timestamp, and appends
// the goal to the end of the ledger.
func (s *GoalStore) AddGoal(ctx context.Context, draft GoalDraft) (*entity.Goal, error) {
	normalizeDraft(&draft)
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if draft.Color == "" {
		draft.Color = s.randomColor()
	}

	goal := entity.NewGoal(
		draft.Name,
		draft.GoalAmount,
		draft.CurrentAmount,
		draft.Kind,
		draft.Period,
		draft.Color,
		s.clock.Now(),
	)
	goal.PercentageOfIncome = draft.PercentageOfIncome
	goal.FixedAmount = draft.FixedAmount

	s.ledger.Goals = append(s.ledger.Goals, goal)

	return goal.Clone(), s.persist(ctx, "add_goal")
}

// EditGoal replaces the editable fields of an existing goal in place. The
// goal keeps its position, ID, creation timestamp, funded amount, color and
// archived flag.
func (s *GoalStore) EditGoal(ctx context.Context, id uuid.UUID, draft GoalDraft) (*entity.Goal, error) {
	normalizeDraft(&draft)
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goal := s.ledger.FindGoal(id)
	if goal == nil {
		return nil, notFoundError()
	}

	goal.Name = draft.Name
	goal.GoalAmount = draft.GoalAmount
	goal.Kind = draft.Kind
	goal.Period = draft.Period
	goal.PercentageOfIncome = draft.PercentageOfIncome
	goal.FixedAmount = draft.FixedAmount

	return goal.Clone(), s.persist(ctx, "edit_goal")
}

// Deposit adds a positive amount to a goal's funded total. There is no cap:
// overshooting the goal is legitimate, and completion stays a derived
// predicate on the returned goal.
func (s *GoalStore) Deposit(ctx context.Context, id uuid.UUID, amount float64) (*entity.Goal, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDeposit,
			"deposit amount must be a positive number",
			domainerror.ErrInvalidAmount,
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goal := s.ledger.FindGoal(id)
	if goal == nil {
		return nil, notFoundError()
	}

	goal.CurrentAmount += amount

	return goal.Clone(), s.persist(ctx, "deposit")
}

// Archive marks a goal as archived. Archiving an already-archived or absent
// goal is a no-op; the returned goal is nil when the ID was not found.
func (s *GoalStore) Archive(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	return s.setArchived(ctx, id, true, "archive")
}

// Restore clears a goal's archived flag, with the same idempotence as Archive.
func (s *GoalStore) Restore(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	return s.setArchived(ctx, id, false, "restore")
}

func (s *GoalStore) setArchived(ctx context.Context, id uuid.UUID, archived bool, op string) (*entity.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal := s.ledger.FindGoal(id)
	if goal == nil {
		return nil, nil
	}

	if goal.Archived == archived {
		return goal.Clone(), nil
	}

	goal.Archived = archived

	return goal.Clone(), s.persist(ctx, op)
}

// DeleteGoal removes a goal from the ledger. Deleting an absent ID is a
// no-op; deletion is idempotent.
func (s *GoalStore) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ledger.FindGoal(id) == nil {
		return nil
	}

	s.ledger.RemoveGoal(id)

	return s.persist(ctx, "delete_goal")
}

// SetMonthlyIncome replaces the declared monthly income. Negative or
// non-numeric input is coerced to zero rather than rejected.
func (s *GoalStore) SetMonthlyIncome(ctx context.Context, amount float64) (float64, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.MonthlyIncome = amount

	return amount, s.persist(ctx, "set_monthly_income")
}

// ProcessAutomaticDeposits credits every active periodic goal one full
// contribution cycle. The batch is not idempotent: each run adds another
// cycle's worth of funds, and nothing tracks when a goal was last credited.
func (s *GoalStore) ProcessAutomaticDeposits(ctx context.Context) ([]CreditedGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	credited := []CreditedGoal{}
	for _, goal := range s.ledger.Goals {
		due := contribution.DueAmount(goal, s.ledger.MonthlyIncome)
		if due <= 0 {
			continue
		}
		goal.CurrentAmount += due
		credited = append(credited, CreditedGoal{Goal: goal.Clone(), Amount: due})
	}

	if len(credited) == 0 {
		return credited, nil
	}

	return credited, s.persist(ctx, "process_automatic_deposits")
}

// Snapshot returns a deep copy of the ledger for read-only consumers.
func (s *GoalStore) Snapshot() *entity.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Clone()
}

// persist writes the ledger through the repository. The mutation has already
// committed; a save failure is logged and reported, never rolled back.
func (s *GoalStore) persist(ctx context.Context, operation string) error {
	if err := s.repo.Save(ctx, s.ledger); err != nil {
		slog.Error("Failed to persist ledger snapshot",
			"operation", operation,
			"error", err,
		)
		return domainerror.NewLedgerError(
			domainerror.ErrCodeSnapshotSaveFailed,
			fmt.Sprintf("failed to persist ledger after %s", operation),
			domainerror.ErrSnapshotSave,
		)
	}
	return nil
}

func (s *GoalStore) randomColor() string {
	return fmt.Sprintf("#%06x", s.random.Intn(0xFFFFFF+1))
}

// normalizeDraft clamps optional numeric fields and enforces contribution
// rule exclusivity: when both rules arrive non-zero the percentage wins.
func normalizeDraft(draft *GoalDraft) {
	draft.Name = strings.TrimSpace(draft.Name)

	if draft.CurrentAmount < 0 || math.IsNaN(draft.CurrentAmount) {
		draft.CurrentAmount = 0
	}
	if draft.PercentageOfIncome < 0 || math.IsNaN(draft.PercentageOfIncome) {
		draft.PercentageOfIncome = 0
	}
	if draft.FixedAmount < 0 || math.IsNaN(draft.FixedAmount) {
		draft.FixedAmount = 0
	}

	if draft.Kind != entity.GoalKindPeriodic {
		draft.PercentageOfIncome = 0
		draft.FixedAmount = 0
	} else if draft.PercentageOfIncome > 0 {
		draft.FixedAmount = 0
	}
}

func validateDraft(draft GoalDraft) error {
	if draft.Name == "" {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidName,
			"goal name must not be empty",
			domainerror.ErrInvalidInput,
		)
	}
	if draft.GoalAmount <= 0 || math.IsNaN(draft.GoalAmount) || math.IsInf(draft.GoalAmount, 0) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidGoalAmount,
			"goal amount must be greater than zero",
			domainerror.ErrInvalidInput,
		)
	}
	if !entity.IsValidGoalKind(draft.Kind) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidGoalKind,
			"kind must be 'one-time' or 'periodic'",
			domainerror.ErrInvalidInput,
		)
	}
	if !entity.IsValidGoalPeriod(draft.Period) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidGoalPeriod,
			"period must be 'weekly', 'monthly', or 'yearly'",
			domainerror.ErrInvalidInput,
		)
	}
	return nil
}

func notFoundError() error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found",
		domainerror.ErrGoalNotFound,
	)
}

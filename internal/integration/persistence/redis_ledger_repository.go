package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/piggybank/backend/internal/application/adapter"
	"github.com/piggybank/backend/internal/domain/entity"
)

// Snapshot keys. Two independent values, mirroring the original client-side
// storage layout: the goal sequence as a JSON array, the income as a bare
// decimal string.
const (
	goalsKey  = "piggybank:goals"
	incomeKey = "piggybank:income"
)

// goalRecord is the wire shape of one persisted goal.
type goalRecord struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	GoalAmount         float64   `json:"goalAmount"`
	CurrentAmount      float64   `json:"currentAmount"`
	Kind               string    `json:"kind"`
	Period             string    `json:"period"`
	PercentageOfIncome float64   `json:"percentageOfIncome"`
	FixedAmount        float64   `json:"fixedAmount"`
	Color              string    `json:"color"`
	Archived           bool      `json:"archived"`
	CreatedAt          string    `json:"createdAt"` // ISO-8601
}

// redisLedgerRepository stores the ledger snapshot under two Redis keys.
type redisLedgerRepository struct {
	client *redis.Client
}

// NewRedisLedgerRepository creates a Redis-backed ledger repository.
func NewRedisLedgerRepository(client *redis.Client) adapter.LedgerRepository {
	return &redisLedgerRepository{client: client}
}

// Load reads both keys. Absent keys yield an empty ledger; malformed data is
// logged and degrades to the empty default, never failing the session.
func (r *redisLedgerRepository) Load(ctx context.Context) (*entity.Ledger, error) {
	ledger := entity.NewLedger()

	raw, err := r.client.Get(ctx, goalsKey).Result()
	switch {
	case errors.Is(err, redis.Nil):
		// first session, nothing stored yet
	case err != nil:
		return nil, err
	default:
		var records []goalRecord
		if unmarshalErr := json.Unmarshal([]byte(raw), &records); unmarshalErr != nil {
			slog.Warn("Malformed goals snapshot, starting with empty ledger", "error", unmarshalErr)
		} else {
			for _, record := range records {
				ledger.Goals = append(ledger.Goals, recordToEntity(record))
			}
		}
	}

	rawIncome, err := r.client.Get(ctx, incomeKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ledger, nil
		}
		return nil, err
	}

	income, parseErr := strconv.ParseFloat(rawIncome, 64)
	if parseErr != nil || income < 0 {
		slog.Warn("Malformed monthly income snapshot, defaulting to zero", "value", rawIncome)
		income = 0
	}
	ledger.MonthlyIncome = income

	return ledger, nil
}

// Save writes both keys in one pipeline.
func (r *redisLedgerRepository) Save(ctx context.Context, ledger *entity.Ledger) error {
	records := make([]goalRecord, len(ledger.Goals))
	for i, goal := range ledger.Goals {
		records[i] = recordFromEntity(goal)
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, goalsKey, payload, 0)
	pipe.Set(ctx, incomeKey, strconv.FormatFloat(ledger.MonthlyIncome, 'f', -1, 64), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func recordToEntity(record goalRecord) *entity.Goal {
	createdAt, err := time.Parse(time.RFC3339, record.CreatedAt)
	if err != nil {
		createdAt = time.Now().UTC()
	}

	return &entity.Goal{
		ID:                 record.ID,
		Name:               record.Name,
		GoalAmount:         record.GoalAmount,
		CurrentAmount:      record.CurrentAmount,
		Kind:               entity.GoalKind(record.Kind),
		Period:             entity.GoalPeriod(record.Period),
		PercentageOfIncome: record.PercentageOfIncome,
		FixedAmount:        record.FixedAmount,
		Color:              record.Color,
		Archived:           record.Archived,
		CreatedAt:          createdAt,
	}
}

func recordFromEntity(goal *entity.Goal) goalRecord {
	return goalRecord{
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
		CreatedAt:          goal.CreatedAt.UTC().Format(time.RFC3339),
	}
}

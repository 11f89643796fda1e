package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-wekeza/api"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrIntentNotFound is returned by Get for an intent with no ledger row.
var ErrIntentNotFound = errors.New("sqlstore: payment intent not found")

// IntentStore is the durable payment intent ledger. Each intent id maps to
// exactly one idempotency key, enforced by a unique index so concurrent
// writers sharing a database converge on the first stored key.
type IntentStore struct {
	db   *bun.DB
	repo repository.Repository[*paymentIntentRecord]
	now  func() time.Time
}

func NewIntentStore(db *bun.DB) (*IntentStore, error) {
	if db == nil {
		return nil, fmt.Errorf("sqlstore: bun db is required")
	}
	repo := repository.NewRepository[*paymentIntentRecord](db, paymentIntentHandlers())
	if validator, ok := repo.(repository.Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, fmt.Errorf("sqlstore: invalid payment intent repository wiring: %w", err)
		}
	}
	return &IntentStore{
		db:   db,
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *IntentStore) KeyFor(ctx context.Context, intentID string, generate func() (string, error)) (string, error) {
	if s == nil || s.db == nil || s.repo == nil {
		return "", fmt.Errorf("sqlstore: intent store is not configured")
	}
	intentID = strings.TrimSpace(intentID)
	if intentID == "" {
		return "", fmt.Errorf("sqlstore: intent id is required")
	}
	if generate == nil {
		return "", fmt.Errorf("sqlstore: key generator is required")
	}

	existing, err := s.find(ctx, intentID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.IdempotencyKey, nil
	}

	key, err := generate()
	if err != nil {
		return "", err
	}
	record := newPaymentIntentRecord(intentID, key, s.now())
	record.ID = uuid.NewString()
	if _, err := s.repo.Create(ctx, record); err != nil {
		if !isUniqueViolation(err) {
			return "", err
		}
		winner, findErr := s.find(ctx, intentID)
		if findErr != nil {
			return "", findErr
		}
		if winner == nil {
			return "", err
		}
		return winner.IdempotencyKey, nil
	}
	return key, nil
}

func (s *IntentStore) Get(ctx context.Context, intentID string) (api.PaymentIntent, error) {
	if s == nil || s.db == nil {
		return api.PaymentIntent{}, fmt.Errorf("sqlstore: intent store is not configured")
	}
	record, err := s.find(ctx, strings.TrimSpace(intentID))
	if err != nil {
		return api.PaymentIntent{}, err
	}
	if record == nil {
		return api.PaymentIntent{}, ErrIntentNotFound
	}
	return record.toDomain(), nil
}

// RecordPayment stores the server payment id against an existing intent.
func (s *IntentStore) RecordPayment(ctx context.Context, intentID string, paymentID string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sqlstore: intent store is not configured")
	}
	intentID = strings.TrimSpace(intentID)
	paymentID = strings.TrimSpace(paymentID)
	if intentID == "" || paymentID == "" {
		return fmt.Errorf("sqlstore: intent id and payment id are required")
	}
	res, err := s.db.NewUpdate().
		Model((*paymentIntentRecord)(nil)).
		Set("payment_id = ?", paymentID).
		Set("updated_at = ?", s.now()).
		Where("intent_id = ?", intentID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrIntentNotFound
	}
	return nil
}

func (s *IntentStore) Forget(ctx context.Context, intentID string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sqlstore: intent store is not configured")
	}
	_, err := s.db.NewDelete().
		Model((*paymentIntentRecord)(nil)).
		Where("intent_id = ?", strings.TrimSpace(intentID)).
		Exec(ctx)
	return err
}

func (s *IntentStore) find(ctx context.Context, intentID string) (*paymentIntentRecord, error) {
	record := &paymentIntentRecord{}
	err := s.db.NewSelect().
		Model(record).
		Where("?TableAlias.intent_id = ?", intentID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

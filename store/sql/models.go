package sqlstore

import (
	"time"

	"github.com/goliatone/go-wekeza/api"
	"github.com/uptrace/bun"
)

type paymentIntentRecord struct {
	bun.BaseModel `bun:"table:wekeza_payment_intents,alias:wpi"`

	ID             string    `bun:"id,pk"`
	IntentID       string    `bun:"intent_id,notnull"`
	IdempotencyKey string    `bun:"idempotency_key,notnull"`
	PaymentID      string    `bun:"payment_id,nullzero"`
	CreatedAt      time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt      time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func newPaymentIntentRecord(intentID string, key string, now time.Time) *paymentIntentRecord {
	return &paymentIntentRecord{
		IntentID:       intentID,
		IdempotencyKey: key,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (r *paymentIntentRecord) toDomain() api.PaymentIntent {
	if r == nil {
		return api.PaymentIntent{}
	}
	return api.PaymentIntent{
		IntentID:       r.IntentID,
		IdempotencyKey: r.IdempotencyKey,
		PaymentID:      r.PaymentID,
		CreatedAt:      r.CreatedAt,
	}
}

package api

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-wekeza/core"
)

const IdempotencyHeader = "Idempotency-Key"

// GenerateIdempotencyKey returns payment_<unix seconds>_<16 hex chars>.
// Uniqueness is probabilistic: time plus 64 random bits.
func GenerateIdempotencyKey() (string, error) {
	return generateIdempotencyKey(time.Now())
}

func generateIdempotencyKey(now time.Time) (string, error) {
	entropy := make([]byte, 8)
	if _, err := rand.Read(entropy); err != nil {
		return "", core.NewRequestError("api: generate idempotency key", err, nil)
	}
	return fmt.Sprintf("payment_%d_%s", now.Unix(), hex.EncodeToString(entropy)), nil
}

// IntentStore remembers the idempotency key issued for each payment intent so
// a retried intent reuses its original key.
type IntentStore interface {
	// KeyFor returns the key bound to intentID, calling generate and storing
	// the result the first time the intent is seen.
	KeyFor(ctx context.Context, intentID string, generate func() (string, error)) (string, error)
	Forget(ctx context.Context, intentID string) error
}

// IntentRecorder is implemented by stores that also keep the payment id the
// server assigned to an intent.
type IntentRecorder interface {
	RecordPayment(ctx context.Context, intentID string, paymentID string) error
}

// PaymentIntent is one ledger row: a logical payment and its key.
type PaymentIntent struct {
	IntentID       string
	IdempotencyKey string
	PaymentID      string
	CreatedAt      time.Time
}

type MemoryIntentStore struct {
	mu   sync.Mutex
	keys map[string]string
}

func NewMemoryIntentStore() *MemoryIntentStore {
	return &MemoryIntentStore{keys: map[string]string{}}
}

func (s *MemoryIntentStore) KeyFor(_ context.Context, intentID string, generate func() (string, error)) (string, error) {
	intentID = strings.TrimSpace(intentID)
	if intentID == "" {
		return "", core.NewRequestError("api: intent id is required", nil, nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keys == nil {
		s.keys = map[string]string{}
	}
	if key, ok := s.keys[intentID]; ok {
		return key, nil
	}
	key, err := generate()
	if err != nil {
		return "", err
	}
	s.keys[intentID] = key
	return key, nil
}

func (s *MemoryIntentStore) Forget(_ context.Context, intentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, strings.TrimSpace(intentID))
	return nil
}

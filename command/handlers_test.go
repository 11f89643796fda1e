package command

import (
	"context"
	"errors"
	"testing"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-wekeza/api"
	"github.com/shopspring/decimal"
)

type stubPaymentService struct {
	initiateFn func(ctx context.Context, req api.PaymentRequest, opts ...api.InitiateOption) (api.Payment, error)
	cancelFn   func(ctx context.Context, paymentID string, reason string) (api.Payment, error)
	mpesaFn    func(ctx context.Context, req api.MpesaSTKPushRequest) (api.MpesaSTKPushResponse, error)
}

func (s stubPaymentService) InitiatePayment(ctx context.Context, req api.PaymentRequest, opts ...api.InitiateOption) (api.Payment, error) {
	return s.initiateFn(ctx, req, opts...)
}

func (s stubPaymentService) CancelPayment(ctx context.Context, paymentID string, reason string) (api.Payment, error) {
	return s.cancelFn(ctx, paymentID, reason)
}

func (s stubPaymentService) MpesaSTKPush(ctx context.Context, req api.MpesaSTKPushRequest) (api.MpesaSTKPushResponse, error) {
	return s.mpesaFn(ctx, req)
}

type stubWebhookEndpointService struct {
	registerFn func(ctx context.Context, req api.WebhookEndpointRequest) (api.WebhookEndpoint, error)
}

func (s stubWebhookEndpointService) Register(ctx context.Context, req api.WebhookEndpointRequest) (api.WebhookEndpoint, error) {
	return s.registerFn(ctx, req)
}

func TestInitiatePaymentCommand_ExecuteDelegatesAndStoresResult(t *testing.T) {
	called := false
	svc := stubPaymentService{
		initiateFn: func(_ context.Context, req api.PaymentRequest, opts ...api.InitiateOption) (api.Payment, error) {
			called = true
			if req.SourceAccountID != "acc_1" {
				t.Fatalf("expected source account acc_1, got %q", req.SourceAccountID)
			}
			if len(opts) != 2 {
				t.Fatalf("expected key and intent options, got %d", len(opts))
			}
			return api.Payment{ID: "pay_1", Status: "pending"}, nil
		},
	}

	collector := gocmd.NewResult[api.Payment]()
	ctx := gocmd.ContextWithResult(context.Background(), collector)
	err := NewInitiatePaymentCommand(svc).Execute(ctx, InitiatePaymentMessage{
		Request: api.PaymentRequest{
			SourceAccountID:          "acc_1",
			DestinationAccountNumber: "1001",
			Amount:                   decimal.NewFromInt(10),
		},
		IdempotencyKey: "key-1",
		IntentID:       "order-1",
	})
	if err != nil {
		t.Fatalf("execute initiate payment: %v", err)
	}
	if !called {
		t.Fatalf("expected payment service invocation")
	}
	result, ok := collector.Load()
	if !ok {
		t.Fatalf("expected result to be stored")
	}
	if result.ID != "pay_1" {
		t.Fatalf("unexpected result: %#v", result)
	}
}

func TestInitiatePaymentMessage_OptionsOmitBlankFields(t *testing.T) {
	if opts := (InitiatePaymentMessage{IdempotencyKey: " ", IntentID: ""}).options(); len(opts) != 0 {
		t.Fatalf("expected no options for blank fields, got %d", len(opts))
	}
}

func TestMutationCommands_DelegateToService(t *testing.T) {
	t.Run("cancel payment", func(t *testing.T) {
		svc := stubPaymentService{
			cancelFn: func(_ context.Context, paymentID string, reason string) (api.Payment, error) {
				if paymentID != "pay_1" || reason != "duplicate" {
					t.Fatalf("unexpected cancel payload: %q %q", paymentID, reason)
				}
				return api.Payment{ID: paymentID, Status: "cancelled"}, nil
			},
		}
		collector := gocmd.NewResult[api.Payment]()
		ctx := gocmd.ContextWithResult(context.Background(), collector)
		if err := NewCancelPaymentCommand(svc).Execute(ctx, CancelPaymentMessage{PaymentID: "pay_1", Reason: "duplicate"}); err != nil {
			t.Fatalf("execute cancel: %v", err)
		}
		if result, ok := collector.Load(); !ok || result.Status != "cancelled" {
			t.Fatalf("expected cancelled payment result, got %#v", result)
		}
	})

	t.Run("mpesa stk push", func(t *testing.T) {
		svc := stubPaymentService{
			mpesaFn: func(_ context.Context, req api.MpesaSTKPushRequest) (api.MpesaSTKPushResponse, error) {
				if req.PhoneNumber != "254700000000" {
					t.Fatalf("unexpected phone number %q", req.PhoneNumber)
				}
				return api.MpesaSTKPushResponse{ID: "stk_1", Status: "pending"}, nil
			},
		}
		if err := NewMpesaSTKPushCommand(svc).Execute(context.Background(), MpesaSTKPushMessage{
			Request: api.MpesaSTKPushRequest{PhoneNumber: "254700000000", Amount: decimal.NewFromInt(5)},
		}); err != nil {
			t.Fatalf("execute stk push: %v", err)
		}
	})

	t.Run("register webhook endpoint", func(t *testing.T) {
		svc := stubWebhookEndpointService{
			registerFn: func(_ context.Context, req api.WebhookEndpointRequest) (api.WebhookEndpoint, error) {
				return api.WebhookEndpoint{ID: "wh_1", URL: req.URL, Events: req.Events}, nil
			},
		}
		collector := gocmd.NewResult[api.WebhookEndpoint]()
		ctx := gocmd.ContextWithResult(context.Background(), collector)
		if err := NewRegisterWebhookEndpointCommand(svc).Execute(ctx, RegisterWebhookEndpointMessage{
			Request: api.WebhookEndpointRequest{URL: "https://example.com/hooks", Events: []string{"payment.completed"}},
		}); err != nil {
			t.Fatalf("execute register: %v", err)
		}
		if result, ok := collector.Load(); !ok || result.ID != "wh_1" {
			t.Fatalf("expected webhook endpoint result, got %#v", result)
		}
	})
}

func TestCommands_PropagateServiceErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := stubPaymentService{
		cancelFn: func(context.Context, string, string) (api.Payment, error) {
			return api.Payment{}, boom
		},
	}
	collector := gocmd.NewResult[api.Payment]()
	ctx := gocmd.ContextWithResult(context.Background(), collector)
	err := NewCancelPaymentCommand(svc).Execute(ctx, CancelPaymentMessage{PaymentID: "pay_1", Reason: "x"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected service error, got %v", err)
	}
	if _, ok := collector.Load(); ok {
		t.Fatalf("expected no result on failure")
	}
}

package webhooks

import "context"

// TypedHandler decodes the event data into T before calling fn.
func TypedHandler[T any](fn func(ctx context.Context, data T) (any, error)) Handler {
	return HandlerFunc(func(ctx context.Context, event Event) (any, error) {
		var data T
		if err := event.Decode(&data); err != nil {
			return nil, err
		}
		return fn(ctx, data)
	})
}

func TransactionHandler(fn func(ctx context.Context, data TransactionEventData) error) Handler {
	return TypedHandler(func(ctx context.Context, data TransactionEventData) (any, error) {
		return nil, fn(ctx, data)
	})
}

func PaymentHandler(fn func(ctx context.Context, data PaymentEventData) error) Handler {
	return TypedHandler(func(ctx context.Context, data PaymentEventData) (any, error) {
		return nil, fn(ctx, data)
	})
}

func BalanceLowHandler(fn func(ctx context.Context, data BalanceLowEventData) error) Handler {
	return TypedHandler(func(ctx context.Context, data BalanceLowEventData) (any, error) {
		return nil, fn(ctx, data)
	})
}

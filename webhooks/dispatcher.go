package webhooks

import (
	"context"

	"github.com/goliatone/go-wekeza/core"
)

type Handler interface {
	HandleEvent(ctx context.Context, event Event) (any, error)
}

type HandlerFunc func(ctx context.Context, event Event) (any, error)

func (f HandlerFunc) HandleEvent(ctx context.Context, event Event) (any, error) {
	return f(ctx, event)
}

// HandlerTable routes event types to handlers. Unknown event types may be
// registered like any other.
type HandlerTable map[EventType]Handler

// DispatchResult reports what happened to a dispatched event. Handled is
// false when no handler was registered for the event type.
type DispatchResult struct {
	Type    EventType
	Handled bool
	Value   any
}

type Dispatcher struct {
	logger core.Logger
}

func NewDispatcher(logger core.Logger) *Dispatcher {
	return &Dispatcher{logger: core.ResolveLogger("wekeza.webhooks", nil, logger)}
}

// Dispatch invokes the handler registered for event.Type. Handler errors are
// logged and returned unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, event Event, handlers HandlerTable) (DispatchResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if event.Type == "" {
		return DispatchResult{}, core.NewPayloadError("webhooks: event type not specified in webhook payload", nil)
	}
	logger := d.resolveLogger()

	handler := handlers[event.Type]
	if handler == nil {
		core.LogWarn(ctx, logger, "no handler registered for webhook event type", map[string]any{
			"event_type": string(event.Type),
		})
		return DispatchResult{Type: event.Type}, nil
	}

	value, err := handler.HandleEvent(ctx, event)
	if err != nil {
		core.LogError(ctx, logger, "webhook event handler failed", map[string]any{
			"event_type": string(event.Type),
			"error":      err.Error(),
		})
		return DispatchResult{Type: event.Type, Handled: true}, err
	}
	return DispatchResult{Type: event.Type, Handled: true, Value: value}, nil
}

func (d *Dispatcher) resolveLogger() core.Logger {
	if d == nil || d.logger == nil {
		return core.ResolveLogger("wekeza.webhooks", nil, nil)
	}
	return d.logger
}

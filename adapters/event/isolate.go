package event

import (
	"fmt"

	"github.com/storefront/backend/domain"
	"github.com/storefront/backend/pkg/sentry"
	"go.uber.org/zap"
)

type isolatedHandler struct {
	next   domain.EventHandler
	logger *zap.SugaredLogger
}

// Isolate wraps handler so that its error or panic is logged and reported
// instead of stopping the delivery to the handlers registered after it.
func Isolate(handler domain.EventHandler, logger *zap.SugaredLogger) domain.EventHandler {
	return &isolatedHandler{next: handler, logger: logger}
}

func (h *isolatedHandler) Handle(event domain.BaseDomainEvent) error {
	defer func() {
		if r := recover(); r != nil {
			h.log(event, fmt.Errorf("handler panicked: %v", r))
			sentry.Global().Recovered(r)
		}
	}()

	if err := h.next.Handle(event); err != nil {
		h.log(event, err)
		sentry.Global().Error(err)
	}

	return nil
}

func (h *isolatedHandler) log(event domain.BaseDomainEvent, err error) {
	h.logger.Errorw("event handler failed",
		zap.String("event", event.EventName()),
		zap.String("handler", fmt.Sprintf("%T", h.next)),
		zap.Error(err),
	)
}

package listeners

import (
	"context"
	"fmt"

	"github.com/storefront/backend/domain"
	"github.com/storefront/backend/domain/customer"
	"github.com/storefront/backend/domain/notification"
	"go.uber.org/zap"
)

type LogWhenCustomerIsCreatedHandler struct {
	logger *zap.SugaredLogger
}

func NewLogWhenCustomerIsCreatedHandler(logger *zap.SugaredLogger) *LogWhenCustomerIsCreatedHandler {
	return &LogWhenCustomerIsCreatedHandler{logger: logger}
}

func (h *LogWhenCustomerIsCreatedHandler) Handle(event domain.BaseDomainEvent) error {
	customerCreatedEvent, ok := event.(customer.CustomerCreatedEvent)
	if !ok {
		return nil
	}

	h.logger.Infow("customer created",
		zap.String("event", event.EventName()),
		zap.String("customer_id", customerCreatedEvent.ID),
		zap.String("name", customerCreatedEvent.Name),
	)

	return nil
}

type SendEmailWhenCustomerIsCreatedHandler struct {
	notifier  notification.Service
	recipient string
}

func NewSendEmailWhenCustomerIsCreatedHandler(notifier notification.Service, recipient string) *SendEmailWhenCustomerIsCreatedHandler {
	return &SendEmailWhenCustomerIsCreatedHandler{notifier: notifier, recipient: recipient}
}

func (h *SendEmailWhenCustomerIsCreatedHandler) Handle(event domain.BaseDomainEvent) error {
	customerCreatedEvent, ok := event.(customer.CustomerCreatedEvent)
	if !ok {
		return nil
	}

	n := notification.Notification{
		Recipient: h.recipient,
		Subject:   "Welcome to the store",
		Content:   fmt.Sprintf("Customer %s (%s) signed up", customerCreatedEvent.Name, customerCreatedEvent.ID),
	}

	if err := h.notifier.SendNotification(context.Background(), []notification.Notification{n}); err != nil {
		return fmt.Errorf("send customer created email: %w", err)
	}

	return nil
}

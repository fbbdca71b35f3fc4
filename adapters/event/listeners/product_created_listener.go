package listeners

import (
	"context"
	"fmt"

	"github.com/storefront/backend/domain"
	"github.com/storefront/backend/domain/notification"
	"github.com/storefront/backend/domain/product"
)

type SendEmailWhenProductIsCreatedHandler struct {
	notifier  notification.Service
	recipient string
}

func NewSendEmailWhenProductIsCreatedHandler(notifier notification.Service, recipient string) *SendEmailWhenProductIsCreatedHandler {
	return &SendEmailWhenProductIsCreatedHandler{notifier: notifier, recipient: recipient}
}

func (h *SendEmailWhenProductIsCreatedHandler) Handle(event domain.BaseDomainEvent) error {
	productCreatedEvent, ok := event.(product.ProductCreatedEvent)
	if !ok {
		return nil
	}

	n := notification.Notification{
		Recipient: h.recipient,
		Subject:   fmt.Sprintf("New product: %s", productCreatedEvent.Name),
		Content: fmt.Sprintf("%s (%s) is now available for %.2f",
			productCreatedEvent.Name, productCreatedEvent.Description, productCreatedEvent.Price),
	}

	if err := h.notifier.SendNotification(context.Background(), []notification.Notification{n}); err != nil {
		return fmt.Errorf("send product created email: %w", err)
	}

	return nil
}

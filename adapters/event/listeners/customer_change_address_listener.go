package listeners

import (
	"context"
	"fmt"

	"github.com/storefront/backend/domain"
	"github.com/storefront/backend/domain/customer"
	"github.com/storefront/backend/domain/notification"
)

type SendEmailWhenCustomerChangeAddressHandler struct {
	notifier  notification.Service
	recipient string
}

func NewSendEmailWhenCustomerChangeAddressHandler(notifier notification.Service, recipient string) *SendEmailWhenCustomerChangeAddressHandler {
	return &SendEmailWhenCustomerChangeAddressHandler{notifier: notifier, recipient: recipient}
}

func (h *SendEmailWhenCustomerChangeAddressHandler) Handle(event domain.BaseDomainEvent) error {
	changeAddressEvent, ok := event.(customer.CustomerChangeAddressEvent)
	if !ok {
		return nil
	}

	n := notification.Notification{
		Recipient: h.recipient,
		Subject:   "Address changed",
		Content: fmt.Sprintf("Address of customer %s, %s changed to: %s",
			changeAddressEvent.ID, changeAddressEvent.Name, changeAddressEvent.Address),
	}

	if err := h.notifier.SendNotification(context.Background(), []notification.Notification{n}); err != nil {
		return fmt.Errorf("send address changed email: %w", err)
	}

	return nil
}

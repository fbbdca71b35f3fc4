package listeners

import (
	"github.com/storefront/backend/adapters/event"
	"github.com/storefront/backend/domain"
	"github.com/storefront/backend/domain/customer"
	"github.com/storefront/backend/domain/notification"
	"github.com/storefront/backend/domain/product"
	"github.com/storefront/backend/domain/pubsub"
	"go.uber.org/zap"
)

type Dependencies struct {
	Logger    *zap.SugaredLogger
	Notifier  notification.Service
	Recipient string

	// PubSub is optional, events are only relayed when it is set.
	PubSub        pubsub.Service
	ChannelPrefix string
}

// RegisterAll wires the application handlers into d. Handlers that talk to
// remote services are wrapped with event.Isolate.
func RegisterAll(d domain.EventDispatcher, deps Dependencies) {
	d.Register(product.ProductCreatedEventName,
		event.Isolate(NewSendEmailWhenProductIsCreatedHandler(deps.Notifier, deps.Recipient), deps.Logger))

	d.Register(customer.CustomerCreatedEventName, NewLogWhenCustomerIsCreatedHandler(deps.Logger))
	d.Register(customer.CustomerCreatedEventName,
		event.Isolate(NewSendEmailWhenCustomerIsCreatedHandler(deps.Notifier, deps.Recipient), deps.Logger))

	d.Register(customer.CustomerChangeAddressEventName,
		event.Isolate(NewSendEmailWhenCustomerChangeAddressHandler(deps.Notifier, deps.Recipient), deps.Logger))

	if deps.PubSub == nil {
		return
	}

	publisher := event.Isolate(NewPublishEventHandler(deps.PubSub, deps.ChannelPrefix), deps.Logger)
	for _, name := range []string{
		product.ProductCreatedEventName,
		customer.CustomerCreatedEventName,
		customer.CustomerChangeAddressEventName,
	} {
		d.Register(name, publisher)
	}
}

package notificationhub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/storefront/backend/domain/notification"
	"github.com/storefront/backend/pkg/config"
)

type NotificationHub struct {
	host   *url.URL
	client *resty.Client
	token  string
	sender string
}

func NewNotificationHub(cfg *config.Config) (*NotificationHub, error) {
	u, err := url.Parse(cfg.NotificationHub.Endpoint)
	if err != nil {
		return nil, err
	}

	return &NotificationHub{
		host:   u,
		client: resty.New().SetBaseURL(u.String()).SetTimeout(10 * time.Second),
		token:  cfg.NotificationHub.Token,
		sender: cfg.NotificationHub.Sender,
	}, nil
}

func (n *NotificationHub) pushNotification(ctx context.Context, notificationReq NotificationRequest) error {
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", n.token)).
		SetBody(notificationReq).
		Post("/api/internal/notifications")

	if err != nil {
		return err
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("failed to push notification: %s", resp.Status())
	}

	return nil
}

func (n *NotificationHub) SendNotification(ctx context.Context, notifications []notification.Notification) error {
	notificationReq := NotificationRequest{
		Notifications: notifications,
		From:          n.sender,
	}

	return n.pushNotification(ctx, notificationReq)
}

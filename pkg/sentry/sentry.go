package sentry

import (
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

const FlushTime = 2 * time.Second

type Reporter struct {
	hub *sentrygo.Hub
}

// WithContext returns a reporter bound to the request hub installed by the
// sentryecho middleware, falling back to the global hub.
func WithContext(c echo.Context) *Reporter {
	if hub := sentryecho.GetHubFromContext(c); hub != nil {
		return &Reporter{hub: hub}
	}

	return &Reporter{hub: sentrygo.CurrentHub()}
}

func Global() *Reporter {
	return &Reporter{hub: sentrygo.CurrentHub()}
}

func (r *Reporter) Error(err error) {
	if err == nil {
		return
	}

	r.hub.CaptureException(err)
}

func (r *Reporter) Recovered(v interface{}) {
	r.hub.Recover(v)
}

package app

import (
	"context"

	"github.com/labstack/echo/v4"
)

type echoContextAdapter struct {
	context.Context
	c echo.Context
}

// NewEchoContextAdapter exposes an echo.Context as a context.Context: the
// request context drives cancellation, and string keys fall back to the
// values stored with c.Set.
func NewEchoContextAdapter(c echo.Context) context.Context {
	return &echoContextAdapter{
		Context: c.Request().Context(),
		c:       c,
	}
}

func (a *echoContextAdapter) Value(key interface{}) interface{} {
	if k, ok := key.(string); ok {
		if v := a.c.Get(k); v != nil {
			return v
		}
	}

	return a.Context.Value(key)
}

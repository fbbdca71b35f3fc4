package httpserver

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// requestLogger logs one line per request, at warn level for client errors
// and error level for server errors.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		path := c.Path()
		if path == "" {
			path = c.Request().URL.Path
		}

		status := c.Response().Status
		fields := []interface{}{
			"method", strings.ToUpper(c.Request().Method),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", s.requestID(c),
		}

		switch {
		case status >= 500:
			s.Logger.Errorw("HTTP request", fields...)
		case status >= 400:
			s.Logger.Warnw("HTTP request", fields...)
		default:
			s.Logger.Infow("HTTP request", fields...)
		}

		return nil
	}
}

// acceptsXML reports whether the client asked for XML rather than JSON.
func acceptsXML(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	if strings.Contains(accept, echo.MIMEApplicationJSON) {
		return false
	}

	return strings.Contains(accept, echo.MIMEApplicationXML) || strings.Contains(accept, echo.MIMETextXML)
}

package httpserver

import (
	"net/http"
	"strings"

	"github.com/storefront/backend/adapters/httpserver/model"
	"github.com/storefront/backend/domain"
	"github.com/storefront/backend/domain/checkout"
	"github.com/storefront/backend/domain/customer"
	"github.com/storefront/backend/domain/product"
	"github.com/storefront/backend/internal"
	"github.com/storefront/backend/pkg/apperror"
	"github.com/storefront/backend/pkg/config"
	"github.com/storefront/backend/pkg/sentry"
	"github.com/storefront/backend/usecase"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Options func(s *Server) error

type Server struct {
	router *echo.Echo
	Config *config.Config
	Logger *zap.SugaredLogger

	// internal services
	MapperService internal.Mapper
	CSVService    internal.CSVService

	// storage adapters
	CustomerStore customer.Store
	ProductStore  product.Store
	OrderStore    checkout.Store

	// event bus
	EventDispatcher domain.EventDispatcher
}

func New(cfg *config.Config, logger *zap.SugaredLogger, options ...Options) (*Server, error) {
	s := Server{
		router: echo.New(),
		Config: cfg,
		Logger: logger,
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	s.router.HideBanner = true
	s.router.HidePort = true

	s.RegisterGlobalMiddlewares()
	s.RegisterHealthCheck(s.router.Group(""))

	s.RegisterProductRoutes(s.router.Group("/api/products"))
	s.RegisterCustomerRoutes(s.router.Group("/api/customers"))
	s.RegisterOrderRoutes(s.router.Group("/api/orders"))

	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.router.Use(middleware.Recover())
	s.router.Use(middleware.Secure())
	s.router.Use(middleware.RequestID())
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Gzip())
	s.router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS
	if s.Config.AllowOrigins != "" {
		aos := strings.Split(s.Config.AllowOrigins, ",")
		s.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: aos,
		}))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) RegisterHealthCheck(router *echo.Group) {
	router.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}

// domainError maps use case errors to their HTTP counterpart.
func (s *Server) domainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return s.error(c, apperror.ErrInvalidDomainState(err))
	case errors.Is(err, customer.ErrCustomerNotFound):
		return s.error(c, apperror.ErrCustomerNotFound(err))
	case errors.Is(err, product.ErrProductNotFound):
		return s.error(c, apperror.ErrProductNotFound(err))
	case errors.Is(err, checkout.ErrOrderNotFound):
		return s.error(c, apperror.ErrOrderNotFound(err))
	default:
		return s.error(c, apperror.ErrInternalServer(err))
	}
}

func (s *Server) error(c echo.Context, err error) error {
	s.Logger.Errorw(
		err.Error(),
		zap.String("request_id", s.requestID(c)),
	)

	var appErr apperror.Error
	if !errors.As(err, &appErr) {
		sentry.WithContext(c).Error(err)

		return s.respond(c, http.StatusInternalServerError, model.ErrorResponse{
			Code:    "000000",
			Message: "Internal Server Error",
			Info:    err.Error(),
		})
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		sentry.WithContext(c).Error(err)
	}

	var errMessage string
	if appErr.Raw != nil {
		errMessage = appErr.Raw.Error()
	}

	return s.respond(c, appErr.HTTPCode, model.ErrorResponse{
		Code:    appErr.ErrorCode,
		Message: appErr.Message,
		Info:    errMessage,
	})
}

// success wraps data in the JSON envelope. XML clients get the bare
// document.
func (s *Server) success(c echo.Context, data interface{}) error {
	if acceptsXML(c) {
		return c.XML(http.StatusOK, data)
	}

	return c.JSON(http.StatusOK, model.SuccessResponse{
		Message: "OK",
		Data:    data,
	})
}

func (s *Server) respond(c echo.Context, code int, data interface{}) error {
	if acceptsXML(c) {
		return c.XML(code, data)
	}

	return c.JSON(code, data)
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

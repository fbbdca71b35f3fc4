package httpserver

import (
	"github.com/labstack/echo/v4"
	"github.com/storefront/backend/adapters/httpserver/model"
	"github.com/storefront/backend/pkg/app"
	"github.com/storefront/backend/pkg/apperror"
	"github.com/storefront/backend/usecase/customer"
)

// CreateCustomer godoc
// @Summary CreateCustomer
// @Description CreateCustomer
// @Tags customers
// @Accept json,xml
// @Produce json,xml
// @Param payload body model.CreateCustomerRequest true "Create customer request"
// @Success 200 {object} model.SuccessResponse{data=customer.Output}
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /customers [post]
func (s *Server) CreateCustomer(c echo.Context) error {
	var (
		ctx = app.NewEchoContextAdapter(c)
		req model.CreateCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	out, err := customer.NewCreateUseCase(s.CustomerStore, s.EventDispatcher).
		Execute(ctx, s.MapperService.ToCreateCustomerInput(req))
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, out)
}

// ListCustomers godoc
// @Summary ListCustomers
// @Description ListCustomers
// @Tags customers
// @Produce json,xml
// @Param paging query model.ListRequest false "Paging"
// @Success 200 {object} model.SuccessResponse{data=customer.ListOutput}
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /customers [get]
func (s *Server) ListCustomers(c echo.Context) error {
	var (
		ctx = app.NewEchoContextAdapter(c)
		req model.ListRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	out, err := customer.NewListUseCase(s.CustomerStore).Execute(ctx, customer.ListInput{Page: req.Page, Limit: req.Limit})
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, out)
}

// GetCustomer godoc
// @Summary GetCustomer
// @Description GetCustomer
// @Tags customers
// @Produce json,xml
// @Param id path string true "Customer ID"
// @Success 200 {object} model.SuccessResponse{data=customer.Output}
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /customers/{id} [get]
func (s *Server) GetCustomer(c echo.Context) error {
	var (
		ctx = app.NewEchoContextAdapter(c)
		req model.GetByIDRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	out, err := customer.NewFindUseCase(s.CustomerStore).Execute(ctx, customer.FindInput{ID: req.ID})
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, out)
}

// UpdateCustomer godoc
// @Summary UpdateCustomer
// @Description UpdateCustomer, a changed address is announced to the address listeners
// @Tags customers
// @Accept json,xml
// @Produce json,xml
// @Param id path string true "Customer ID"
// @Param payload body model.UpdateCustomerRequest true "Update customer request"
// @Success 200 {object} model.SuccessResponse{data=customer.Output}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /customers/{id} [put]
func (s *Server) UpdateCustomer(c echo.Context) error {
	var (
		ctx = app.NewEchoContextAdapter(c)
		req model.UpdateCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	out, err := customer.NewUpdateUseCase(s.CustomerStore, s.EventDispatcher).
		Execute(ctx, s.MapperService.ToUpdateCustomerInput(req))
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, out)
}

func (s *Server) RegisterCustomerRoutes(router *echo.Group) {
	router.POST("", s.CreateCustomer)
	router.GET("", s.ListCustomers)
	router.GET("/:id", s.GetCustomer)
	router.PUT("/:id", s.UpdateCustomer)
}

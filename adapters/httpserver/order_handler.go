package httpserver

import (
	"github.com/labstack/echo/v4"
	"github.com/storefront/backend/adapters/httpserver/model"
	"github.com/storefront/backend/pkg/app"
	"github.com/storefront/backend/pkg/apperror"
	"github.com/storefront/backend/usecase/order"
)

// CreateOrder godoc
// @Summary CreateOrder
// @Description CreateOrder, the customer earns half of the order total as reward points
// @Tags orders
// @Accept json,xml
// @Produce json,xml
// @Param payload body model.CreateOrderRequest true "Create order request"
// @Success 200 {object} model.SuccessResponse{data=order.Output}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	var (
		ctx = app.NewEchoContextAdapter(c)
		req model.CreateOrderRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	out, err := order.NewCreateUseCase(s.OrderStore, s.CustomerStore, s.ProductStore).
		Execute(ctx, s.MapperService.ToCreateOrderInput(req))
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, out)
}

// ListOrders godoc
// @Summary ListOrders
// @Description ListOrders
// @Tags orders
// @Produce json,xml
// @Param paging query model.ListRequest false "Paging"
// @Success 200 {object} model.SuccessResponse{data=order.ListOutput}
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /orders [get]
func (s *Server) ListOrders(c echo.Context) error {
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

	out, err := order.NewListUseCase(s.OrderStore).Execute(ctx, order.ListInput{Page: req.Page, Limit: req.Limit})
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, out)
}

// GetOrder godoc
// @Summary GetOrder
// @Description GetOrder
// @Tags orders
// @Produce json,xml
// @Param id path string true "Order ID"
// @Success 200 {object} model.SuccessResponse{data=order.Output}
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /orders/{id} [get]
func (s *Server) GetOrder(c echo.Context) error {
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

	out, err := order.NewFindUseCase(s.OrderStore).Execute(ctx, order.FindInput{ID: req.ID})
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, out)
}

// ChangeOrderCustomer godoc
// @Summary ChangeOrderCustomer
// @Description ChangeOrderCustomer
// @Tags orders
// @Accept json,xml
// @Produce json,xml
// @Param id path string true "Order ID"
// @Param payload body model.ChangeOrderCustomerRequest true "Change customer request"
// @Success 200 {object} model.SuccessResponse{data=order.Output}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /orders/{id}/customer [patch]
func (s *Server) ChangeOrderCustomer(c echo.Context) error {
	var (
		ctx = app.NewEchoContextAdapter(c)
		req model.ChangeOrderCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	out, err := order.NewChangeCustomerUseCase(s.OrderStore, s.CustomerStore).
		Execute(ctx, order.ChangeCustomerInput{ID: req.ID, CustomerID: req.CustomerID})
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, out)
}

func (s *Server) RegisterOrderRoutes(router *echo.Group) {
	router.POST("", s.CreateOrder)
	router.GET("", s.ListOrders)
	router.GET("/:id", s.GetOrder)
	router.PATCH("/:id/customer", s.ChangeOrderCustomer)
}

package httpserver

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/storefront/backend/adapters/httpserver/model"
	"github.com/storefront/backend/pkg/app"
	"github.com/storefront/backend/pkg/apperror"
	"github.com/storefront/backend/usecase/product"
)

// CreateProduct godoc
// @Summary CreateProduct
// @Description CreateProduct
// @Tags products
// @Accept json,xml
// @Produce json,xml
// @Param payload body model.CreateProductRequest true "Create product request"
// @Success 200 {object} model.SuccessResponse{data=product.Output}
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /products [post]
func (s *Server) CreateProduct(c echo.Context) error {
	var (
		ctx = app.NewEchoContextAdapter(c)
		req model.CreateProductRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	out, err := product.NewCreateUseCase(s.ProductStore, s.EventDispatcher).
		Execute(ctx, s.MapperService.ToCreateProductInput(req))
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, out)
}

// CreateMultipleProducts godoc
// @Summary CreateMultipleProducts
// @Description CreateMultipleProducts from a CSV file with the columns name, price and description
// @Tags products
// @Accept multipart/form-data
// @Produce json,xml
// @Param file formData file true "CSV file"
// @Success 200 {object} model.SuccessResponse{data=product.ListOutput}
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /products/bulk [post]
func (s *Server) CreateMultipleProducts(c echo.Context) error {
	ctx := app.NewEchoContextAdapter(c)

	file, err := app.BindMultipartFile(c, "file")
	if err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}
	defer file.Close()

	mime, reader, err := app.DetectContentType(file)
	if err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if !strings.HasPrefix(mime, "text/") {
		return s.error(c, apperror.ErrUnsupportedFile(fmt.Errorf("unexpected content type %s", mime)))
	}

	rows, err := s.CSVService.CsvToEntities(reader, s.MapperService.ToProductRequest)
	if err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	in, err := s.MapperService.ToBulkCreateProductInput(rows)
	if err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	out, err := product.NewBulkCreateUseCase(s.ProductStore, s.EventDispatcher).Execute(ctx, in)
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, out)
}

// ListProducts godoc
// @Summary ListProducts
// @Description ListProducts
// @Tags products
// @Produce json,xml
// @Param paging query model.ListRequest false "Paging"
// @Success 200 {object} model.SuccessResponse{data=product.ListOutput}
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /products [get]
func (s *Server) ListProducts(c echo.Context) error {
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

	out, err := product.NewListUseCase(s.ProductStore).Execute(ctx, product.ListInput{Page: req.Page, Limit: req.Limit})
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, out)
}

// GetProduct godoc
// @Summary GetProduct
// @Description GetProduct
// @Tags products
// @Produce json,xml
// @Param id path string true "Product ID"
// @Success 200 {object} model.SuccessResponse{data=product.Output}
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /products/{id} [get]
func (s *Server) GetProduct(c echo.Context) error {
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

	out, err := product.NewFindUseCase(s.ProductStore).Execute(ctx, product.FindInput{ID: req.ID})
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, out)
}

// UpdateProduct godoc
// @Summary UpdateProduct
// @Description UpdateProduct
// @Tags products
// @Accept json,xml
// @Produce json,xml
// @Param id path string true "Product ID"
// @Param payload body model.UpdateProductRequest true "Update product request"
// @Success 200 {object} model.SuccessResponse{data=product.Output}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /products/{id} [put]
func (s *Server) UpdateProduct(c echo.Context) error {
	var (
		ctx = app.NewEchoContextAdapter(c)
		req model.UpdateProductRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	out, err := product.NewUpdateUseCase(s.ProductStore).Execute(ctx, s.MapperService.ToUpdateProductInput(req))
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, out)
}

func (s *Server) RegisterProductRoutes(router *echo.Group) {
	router.POST("", s.CreateProduct)
	router.POST("/bulk", s.CreateMultipleProducts)
	router.GET("", s.ListProducts)
	router.GET("/:id", s.GetProduct)
	router.PUT("/:id", s.UpdateProduct)
}

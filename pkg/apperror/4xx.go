package apperror

import (
	"net/http"
)

const (
	BindingCode            = "400001"
	ValidationCode         = "400002"
	InvalidDomainStateCode = "400003"
	UnsupportedFileCode    = "400004"
	CustomerNotFoundCode   = "404007"
	ProductNotFoundCode    = "404008"
	OrderNotFoundCode      = "404009"
)

// 400 Bad Request
func ErrInvalidRequest(err error) Error {
	return NewError(err, http.StatusBadRequest, BindingCode, "Invalid request")
}

func ErrInvalidParam(err error) Error {
	return NewError(err, http.StatusBadRequest, ValidationCode, "Invalid param")
}

func ErrInvalidDomainState(err error) Error {
	return NewError(err, http.StatusBadRequest, InvalidDomainStateCode, "Invalid entity state")
}

func ErrUnsupportedFile(err error) Error {
	return NewError(err, http.StatusBadRequest, UnsupportedFileCode, "Unsupported file")
}

// 404 Not Found
func ErrCustomerNotFound(err error) Error {
	return NewError(err, http.StatusNotFound, CustomerNotFoundCode, "Customer not found")
}

func ErrProductNotFound(err error) Error {
	return NewError(err, http.StatusNotFound, ProductNotFoundCode, "Product not found")
}

func ErrOrderNotFound(err error) Error {
	return NewError(err, http.StatusNotFound, OrderNotFoundCode, "Order not found")
}

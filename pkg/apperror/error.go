package apperror

import "fmt"

type Error struct {
	Raw       error
	HTTPCode  int
	ErrorCode string
	Message   string
}

func NewError(err error, httpCode int, errCode string, msg string) Error {
	return Error{
		Raw:       err,
		HTTPCode:  httpCode,
		ErrorCode: errCode,
		Message:   msg,
	}
}

func (e Error) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Raw.Error())
	}

	return e.Message
}

func (e Error) Unwrap() error {
	return e.Raw
}

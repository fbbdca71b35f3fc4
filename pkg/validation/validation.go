package validation

import (
	"context"
	"sync"

	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	conform  *mold.Transformer
	once     sync.Once
)

func setup() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	conform = modifiers.New()
}

func Validate() *validator.Validate {
	once.Do(setup)

	return validate
}

// Conform applies the `mod` struct tags (trim, lcase, ...) in place.
func Conform() *mold.Transformer {
	once.Do(setup)

	return conform
}

// Struct conforms v and then validates it.
func Struct(ctx context.Context, v interface{}) error {
	if err := Conform().Struct(ctx, v); err != nil {
		return err
	}

	return Validate().StructCtx(ctx, v)
}

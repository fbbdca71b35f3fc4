package product

import (
	"context"
	"fmt"

	"github.com/storefront/backend/domain/product"
	"github.com/storefront/backend/usecase"
)

type UpdateUseCase struct {
	store product.Store
}

func NewUpdateUseCase(store product.Store) *UpdateUseCase {
	return &UpdateUseCase{store: store}
}

func (u *UpdateUseCase) Execute(ctx context.Context, in UpdateInput) (Output, error) {
	p, err := u.store.Find(ctx, in.ID)
	if err != nil {
		return Output{}, err
	}

	if err := p.ChangeName(in.Name); err != nil {
		return Output{}, usecase.Invalid(err)
	}

	if err := p.ChangePrice(in.Price); err != nil {
		return Output{}, usecase.Invalid(err)
	}

	if err := u.store.Update(ctx, p); err != nil {
		return Output{}, fmt.Errorf("update product: %w", err)
	}

	return newOutput(p), nil
}

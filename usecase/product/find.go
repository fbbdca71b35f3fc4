package product

import (
	"context"

	"github.com/storefront/backend/domain/product"
	"github.com/storefront/backend/pkg/pagination"
)

type FindUseCase struct {
	store product.Store
}

func NewFindUseCase(store product.Store) *FindUseCase {
	return &FindUseCase{store: store}
}

func (u *FindUseCase) Execute(ctx context.Context, in FindInput) (Output, error) {
	p, err := u.store.Find(ctx, in.ID)
	if err != nil {
		return Output{}, err
	}

	return newOutput(p), nil
}

type ListUseCase struct {
	store product.Store
}

func NewListUseCase(store product.Store) *ListUseCase {
	return &ListUseCase{store: store}
}

func (u *ListUseCase) Execute(ctx context.Context, in ListInput) (ListOutput, error) {
	var (
		products []product.Product
		pager    *pagination.Pager
		err      error
	)

	if in.paged() {
		pager = pagination.NewPager(in.Page, in.Limit)
		products, err = u.store.List(ctx, pager)
	} else {
		products, err = u.store.FindAll(ctx)
	}
	if err != nil {
		return ListOutput{}, err
	}

	out := ListOutput{Products: make([]Output, 0, len(products))}
	for i := range products {
		out.Products = append(out.Products, newOutput(&products[i]))
	}

	if pager != nil {
		info := pager.PageInfo()
		out.Pagination = &info
	}

	return out, nil
}

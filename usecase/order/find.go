package order

import (
	"context"

	"github.com/storefront/backend/domain/checkout"
	"github.com/storefront/backend/pkg/pagination"
)

type FindUseCase struct {
	store checkout.Store
}

func NewFindUseCase(store checkout.Store) *FindUseCase {
	return &FindUseCase{store: store}
}

func (u *FindUseCase) Execute(ctx context.Context, in FindInput) (Output, error) {
	o, err := u.store.Find(ctx, in.ID)
	if err != nil {
		return Output{}, err
	}

	return newOutput(o), nil
}

type ListUseCase struct {
	store checkout.Store
}

func NewListUseCase(store checkout.Store) *ListUseCase {
	return &ListUseCase{store: store}
}

// Execute lists orders together with the sum of their totals.
func (u *ListUseCase) Execute(ctx context.Context, in ListInput) (ListOutput, error) {
	var (
		orders []checkout.Order
		pager  *pagination.Pager
		err    error
	)

	if in.paged() {
		pager = pagination.NewPager(in.Page, in.Limit)
		orders, err = u.store.List(ctx, pager)
	} else {
		orders, err = u.store.FindAll(ctx)
	}
	if err != nil {
		return ListOutput{}, err
	}

	out := ListOutput{
		Orders: make([]Output, 0, len(orders)),
		Total:  checkout.Total(orders),
	}
	for i := range orders {
		out.Orders = append(out.Orders, newOutput(&orders[i]))
	}

	if pager != nil {
		info := pager.PageInfo()
		out.Pagination = &info
	}

	return out, nil
}

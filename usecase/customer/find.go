package customer

import (
	"context"

	"github.com/storefront/backend/domain/customer"
	"github.com/storefront/backend/pkg/pagination"
)

type FindUseCase struct {
	store customer.Store
}

func NewFindUseCase(store customer.Store) *FindUseCase {
	return &FindUseCase{store: store}
}

func (u *FindUseCase) Execute(ctx context.Context, in FindInput) (Output, error) {
	c, err := u.store.Find(ctx, in.ID)
	if err != nil {
		return Output{}, err
	}

	return newOutput(c), nil
}

type ListUseCase struct {
	store customer.Store
}

func NewListUseCase(store customer.Store) *ListUseCase {
	return &ListUseCase{store: store}
}

func (u *ListUseCase) Execute(ctx context.Context, in ListInput) (ListOutput, error) {
	var (
		customers []customer.Customer
		pager     *pagination.Pager
		err       error
	)

	if in.paged() {
		pager = pagination.NewPager(in.Page, in.Limit)
		customers, err = u.store.List(ctx, pager)
	} else {
		customers, err = u.store.FindAll(ctx)
	}
	if err != nil {
		return ListOutput{}, err
	}

	out := ListOutput{Customers: make([]Output, 0, len(customers))}
	for i := range customers {
		out.Customers = append(out.Customers, newOutput(&customers[i]))
	}

	if pager != nil {
		info := pager.PageInfo()
		out.Pagination = &info
	}

	return out, nil
}

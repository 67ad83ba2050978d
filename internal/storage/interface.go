package storage

import (
	"context"

	"expensedesk/internal/domain"
)

type CustomerStorage interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id int64) (domain.Customer, error)
	Add(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	Update(ctx context.Context, customer domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"expensedesk/internal/domain"
	"expensedesk/internal/storage"

	"github.com/sirupsen/logrus"
)

var (
	ErrNotFound   = errors.New("customer not found")
	ErrValidation = errors.New("name and phone are required")
)

type CustomerService struct {
	storage storage.CustomerStorage
	log     *logrus.Entry
}

func New(l *logrus.Logger, storage storage.CustomerStorage) *CustomerService {
	return &CustomerService{
		storage: storage,
		log: l.WithFields(map[string]interface{}{
			"from": "customer-service",
		}),
	}
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.storage.ListCustomers(ctx)
}

func (s *CustomerService) Get(ctx context.Context, id int64) (domain.Customer, error) {
	customer, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, ErrNotFound
		}
		return domain.Customer{}, err
	}
	return customer, nil
}

func (s *CustomerService) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	if err := validate(customer); err != nil {
		return domain.Customer{}, err
	}
	if customer.Status == "" {
		customer.Status = domain.DefaultCustomerStatus
	}
	created, err := s.storage.Add(ctx, customer)
	if err != nil {
		return domain.Customer{}, err
	}
	s.log.WithField("id", created.ID).Info("customer created")
	return created, nil
}

// Update loads the current record, applies only the fields present in
// the update, validates the merged result and persists it.
func (s *CustomerService) Update(ctx context.Context, id int64, update domain.CustomerUpdate) (domain.Customer, error) {
	customer, err := s.Get(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if update.Name != nil {
		customer.Name = *update.Name
	}
	if update.Phone != nil {
		customer.Phone = *update.Phone
	}
	if update.AlternatePhone != nil {
		customer.AlternatePhone = *update.AlternatePhone
	}
	if update.Status != nil {
		customer.Status = *update.Status
	}
	if update.Remark != nil {
		customer.Remark = *update.Remark
	}
	if customer.Status == "" {
		customer.Status = domain.DefaultCustomerStatus
	}
	if err := validate(customer); err != nil {
		return domain.Customer{}, err
	}
	if err := s.storage.Update(ctx, customer); err != nil {
		return domain.Customer{}, err
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.storage.Delete(ctx, id)
}

func validate(customer domain.Customer) error {
	if strings.TrimSpace(customer.Name) == "" || strings.TrimSpace(customer.Phone) == "" {
		return ErrValidation
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"

	embedded "expensedesk"
	"expensedesk/gen/model"
	"expensedesk/gen/table"
	"expensedesk/internal/config"
	"expensedesk/internal/domain"
	"expensedesk/internal/migrate"
	"expensedesk/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.CustomerStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.Server) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "customer-storage",
	})
	db, err := sql.Open("sqlite3", "file:"+cfg.SqliteFile+"?cache=shared")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = migrate.Up(db, embedded.ServerMigrations, "migrations", "server")
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("customer storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func (s *Storage) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var dbCustomers []model.Customer
	err := table.Customer.
		SELECT(table.Customer.AllColumns).
		FROM(table.Customer).
		QueryContext(ctx, s.db, &dbCustomers)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return convertCustomers(dbCustomers), nil
}

func (s *Storage) Get(ctx context.Context, id int64) (domain.Customer, error) {
	var dbCustomer model.Customer
	err := table.Customer.
		SELECT(table.Customer.AllColumns).
		FROM(table.Customer).
		WHERE(table.Customer.Cid.EQ(sqlite.Int(id))).
		QueryContext(ctx, s.db, &dbCustomer)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Customer{}, sql.ErrNoRows
		}
		return domain.Customer{}, err
	}
	return convertCustomer(dbCustomer), nil
}

func (s *Storage) Add(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	dbCustomer := convertToDB(customer)
	res, err := table.Customer.
		INSERT(table.Customer.MutableColumns).
		MODEL(dbCustomer).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.Customer{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Customer{}, err
	}
	return s.Get(ctx, id)
}

func (s *Storage) Update(ctx context.Context, customer domain.Customer) error {
	dbCustomer := convertToDB(customer)
	_, err := table.Customer.
		UPDATE(table.Customer.MutableColumns).
		MODEL(dbCustomer).
		WHERE(table.Customer.Cid.EQ(sqlite.Int(customer.ID))).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) Delete(ctx context.Context, id int64) error {
	_, err := table.Customer.
		DELETE().
		WHERE(table.Customer.Cid.EQ(sqlite.Int(id))).
		ExecContext(ctx, s.db)
	return err
}

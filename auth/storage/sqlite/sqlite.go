package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	embedded "expensedesk"
	"expensedesk/auth/accounts"
	"expensedesk/auth/gen/model"
	"expensedesk/auth/gen/table"
	"expensedesk/auth/storage"
	"expensedesk/internal/config"
	"expensedesk/internal/migrate"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.AuthStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.Server) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "auth-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.AuthSqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = migrate.Up(db, embedded.AuthMigrations, "auth/migrations", "auth")
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("auth storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func (s *Storage) GetAccount(ctx context.Context, email string, role string) (accounts.Account, error) {
	var dbEmployee model.Employee
	err := table.Employee.
		SELECT(table.Employee.AllColumns).
		FROM(table.Employee).
		WHERE(
			table.Employee.Email.EQ(sqlite.String(email)).
				AND(table.Employee.Role.EQ(sqlite.String(role))).
				AND(table.Employee.DeletedAt.IS_NULL()),
		).
		QueryContext(ctx, s.db, &dbEmployee)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return accounts.Account{}, sql.ErrNoRows
		}
		return accounts.Account{}, err
	}
	return convertAccountToModel(dbEmployee)
}

func (s *Storage) CreateAccount(ctx context.Context, account accounts.Account) error {
	dbEmployee := model.Employee{
		ID:           account.ID.String(),
		Email:        account.Email,
		Role:         account.Role,
		PasswordHash: account.SecretHash,
		Name:         account.Profile.Name,
		CreatedAt:    time.Now(),
	}
	if account.Profile.Phone != "" {
		phone := account.Profile.Phone
		dbEmployee.Phone = &phone
	}
	_, err := table.Employee.
		INSERT(table.Employee.AllColumns).
		MODEL(dbEmployee).
		ExecContext(ctx, s.db)
	return err
}

func convertAccountToModel(employee model.Employee) (accounts.Account, error) {
	id, err := uuid.Parse(employee.ID)
	if err != nil {
		return accounts.Account{}, err
	}
	a := accounts.Account{
		ID:         id,
		Email:      employee.Email,
		Role:       employee.Role,
		SecretHash: employee.PasswordHash,
		Profile: accounts.Profile{
			Name: employee.Name,
		},
		CreatedAt: employee.CreatedAt,
	}
	if employee.Phone != nil {
		a.Profile.Phone = *employee.Phone
	}
	return a, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

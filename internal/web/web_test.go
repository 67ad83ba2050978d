package web

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"expensedesk/auth/accounts"
	memcache "expensedesk/auth/cache/mem"
	authservice "expensedesk/auth/service"
	"expensedesk/internal/config"
	"expensedesk/internal/domain"
	"expensedesk/internal/logger"
	"expensedesk/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAuthStorage struct {
	accounts map[string]accounts.Account
	err      error
}

func (f *fakeAuthStorage) GetAccount(_ context.Context, email string, role string) (accounts.Account, error) {
	if f.err != nil {
		return accounts.Account{}, f.err
	}
	a, ok := f.accounts[email+":"+role]
	if !ok {
		return accounts.Account{}, sql.ErrNoRows
	}
	return a, nil
}

func (f *fakeAuthStorage) CreateAccount(_ context.Context, account accounts.Account) error {
	f.accounts[account.Email+":"+account.Role] = account
	return nil
}

type fakeCustomerStorage struct {
	customers map[int64]domain.Customer
	nextID    int64
}

func (f *fakeCustomerStorage) ListCustomers(_ context.Context) ([]domain.Customer, error) {
	list := make([]domain.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		list = append(list, c)
	}
	return list, nil
}

func (f *fakeCustomerStorage) Get(_ context.Context, id int64) (domain.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return domain.Customer{}, sql.ErrNoRows
	}
	return c, nil
}

func (f *fakeCustomerStorage) Add(_ context.Context, customer domain.Customer) (domain.Customer, error) {
	customer.ID = f.nextID
	f.nextID++
	f.customers[customer.ID] = customer
	return customer, nil
}

func (f *fakeCustomerStorage) Update(_ context.Context, customer domain.Customer) error {
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerStorage) Delete(_ context.Context, id int64) error {
	delete(f.customers, id)
	return nil
}

func newTestServer(t *testing.T, authStorage *fakeAuthStorage) *Server {
	t.Helper()
	log := logger.New()
	authService, err := authservice.New(context.Background(), log, authservice.Config{
		Token:      "test-signing-key",
		Expiration: "15m",
		Rules: []authservice.Rule{
			{Name: "login", Path: "^/api/login$", Method: []string{"POST"}, Allow: []string{"*"}},
			{Name: "customers", Path: "^/api/customers", Method: []string{"*"}, Allow: []string{"admin", "staff"}},
		},
	}, authStorage, memcache.New())
	require.NoError(t, err)

	customerService := service.New(log, &fakeCustomerStorage{
		customers: make(map[int64]domain.Customer),
		nextID:    1,
	})
	return New(log, customerService, config.Server{Host: "127.0.0.1", Port: 3000}, authService)
}

func seedBob(t *testing.T) *fakeAuthStorage {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.MinCost)
	require.NoError(t, err)
	bob := accounts.Account{
		ID:         uuid.New(),
		Email:      "bob@co.com",
		Role:       "staff",
		SecretHash: string(hash),
		Profile:    accounts.Profile{Name: "Bob"},
	}
	return &fakeAuthStorage{
		accounts: map[string]accounts.Account{
			"bob@co.com:staff": bob,
		},
	}
}

func doLogin(t *testing.T, s *Server, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestHandleLogin_Success(t *testing.T) {
	s := newTestServer(t, seedBob(t))

	status, body := doLogin(t, s, `{"email":"bob@co.com","password":"pw123","role":"staff"}`)
	assert.Equal(t, fiber.StatusOK, status)

	var resp loginResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "bob@co.com", resp.User.Email)
	assert.Equal(t, "staff", resp.User.Role)
	assert.Equal(t, "Login successful", resp.Message)
	// neither the hash nor the password leak into the response
	assert.NotContains(t, body, "secretHash")
	assert.NotContains(t, body, "pw123")
	assert.NotContains(t, body, "$2a$")
}

func TestHandleLogin_Failures(t *testing.T) {
	s := newTestServer(t, seedBob(t))

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "wrong password",
			body:       `{"email":"bob@co.com","password":"wrongpw","role":"staff"}`,
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "unknown account",
			body:       `{"email":"nobody@co.com","password":"x","role":"staff"}`,
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "wrong role partition",
			body:       `{"email":"bob@co.com","password":"pw123","role":"admin"}`,
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "missing fields",
			body:       `{"email":"bob@co.com"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "garbage body",
			body:       `{not json`,
			wantStatus: fiber.StatusBadRequest,
		},
	}
	var authFailureBody string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doLogin(t, s, tt.body)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantStatus == fiber.StatusUnauthorized {
				// every auth failure has the one indistinguishable shape
				if authFailureBody == "" {
					authFailureBody = body
				}
				assert.Equal(t, authFailureBody, body)
			}
		})
	}
}

func TestHandleLogin_StorageDown(t *testing.T) {
	st := seedBob(t)
	st.err = errors.New("connection refused")
	s := newTestServer(t, st)

	status, _ := doLogin(t, s, `{"email":"bob@co.com","password":"pw123","role":"staff"}`)
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

func TestCustomerRoutes_RequireToken(t *testing.T) {
	s := newTestServer(t, seedBob(t))

	req := httptest.NewRequest("GET", "/api/customers", nil)
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCustomerRoutes_WithToken(t *testing.T) {
	s := newTestServer(t, seedBob(t))

	status, body := doLogin(t, s, `{"email":"bob@co.com","password":"pw123","role":"staff"}`)
	require.Equal(t, fiber.StatusOK, status)
	var login loginResponse
	require.NoError(t, json.Unmarshal([]byte(body), &login))

	req := httptest.NewRequest("POST", "/api/customers", strings.NewReader(`{"cname":"ACME Ltd","cphone":"555-0100"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+login.Token)
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/customers", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	resp, err = s.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "ACME Ltd")
}

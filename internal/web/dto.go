package web

import (
	"errors"
	"strings"

	"expensedesk/auth/accounts"
	"expensedesk/internal/domain"
)

var ErrMissingFields = errors.New("all fields are required")
var ErrMissingNamePhone = errors.New("name and phone are required")

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r loginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" ||
		strings.TrimSpace(r.Password) == "" ||
		strings.TrimSpace(r.Role) == "" {
		return ErrMissingFields
	}
	return nil
}

type accountData struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type loginResponse struct {
	Token   string      `json:"token"`
	User    accountData `json:"user"`
	Message string      `json:"message"`
}

func convertAccount(a accounts.Account) accountData {
	return accountData{
		ID:    a.ID.String(),
		Email: a.Email,
		Role:  a.Role,
		Name:  a.Profile.Name,
		Phone: a.Profile.Phone,
	}
}

type createCustomer struct {
	Cname          string `json:"cname"`
	Cphone         string `json:"cphone"`
	AlternatePhone string `json:"alternate_phone"`
	Status         string `json:"status"`
	Remark         string `json:"remark"`
}

func (c createCustomer) Validate() error {
	if strings.TrimSpace(c.Cname) == "" || strings.TrimSpace(c.Cphone) == "" {
		return ErrMissingNamePhone
	}
	return nil
}

func (c createCustomer) convertToDomainCustomer() domain.Customer {
	return domain.Customer{
		Name:           c.Cname,
		Phone:          c.Cphone,
		AlternatePhone: c.AlternatePhone,
		Status:         c.Status,
		Remark:         c.Remark,
	}
}

// updateCustomer distinguishes absent fields from empty ones so the
// service can merge only what the client actually sent.
type updateCustomer struct {
	Cname          *string `json:"cname"`
	Cphone         *string `json:"cphone"`
	AlternatePhone *string `json:"alternate_phone"`
	Status         *string `json:"status"`
	Remark         *string `json:"remark"`
}

func (c updateCustomer) convertToDomainUpdate() domain.CustomerUpdate {
	return domain.CustomerUpdate{
		Name:           c.Cname,
		Phone:          c.Cphone,
		AlternatePhone: c.AlternatePhone,
		Status:         c.Status,
		Remark:         c.Remark,
	}
}

type customerData struct {
	Cid            int64  `json:"cid"`
	Cname          string `json:"cname"`
	Cphone         string `json:"cphone"`
	AlternatePhone string `json:"alternate_phone,omitempty"`
	Status         string `json:"status"`
	Remark         string `json:"remark,omitempty"`
}

func convertCustomer(c domain.Customer) customerData {
	return customerData{
		Cid:            c.ID,
		Cname:          c.Name,
		Cphone:         c.Phone,
		AlternatePhone: c.AlternatePhone,
		Status:         c.Status,
		Remark:         c.Remark,
	}
}

func convertCustomers(cs []domain.Customer) []customerData {
	customers := make([]customerData, 0, len(cs))
	for i := range cs {
		customers = append(customers, convertCustomer(cs[i]))
	}
	return customers
}

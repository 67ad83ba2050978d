package sqlite

import (
	"expensedesk/gen/model"
	"expensedesk/internal/domain"
)

func convertCustomer(c model.Customer) domain.Customer {
	customer := domain.Customer{
		ID:     int64(c.Cid),
		Name:   c.Cname,
		Phone:  c.Cphone,
		Status: c.Status,
	}
	if c.AlternatePhone != nil {
		customer.AlternatePhone = *c.AlternatePhone
	}
	if c.Remark != nil {
		customer.Remark = *c.Remark
	}
	return customer
}

func convertCustomers(cs []model.Customer) []domain.Customer {
	customers := make([]domain.Customer, 0, len(cs))
	for i := range cs {
		customers = append(customers, convertCustomer(cs[i]))
	}
	return customers
}

func convertToDB(c domain.Customer) model.Customer {
	dbCustomer := model.Customer{
		Cid:    int32(c.ID),
		Cname:  c.Name,
		Cphone: c.Phone,
		Status: c.Status,
	}
	if c.AlternatePhone != "" {
		alternatePhone := c.AlternatePhone
		dbCustomer.AlternatePhone = &alternatePhone
	}
	if c.Remark != "" {
		remark := c.Remark
		dbCustomer.Remark = &remark
	}
	return dbCustomer
}

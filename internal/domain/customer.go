package domain

const DefaultCustomerStatus = "lead"

type Customer struct {
	ID             int64
	Name           string
	Phone          string
	AlternatePhone string
	Status         string
	Remark         string
}

// CustomerUpdate is a partial update: nil fields keep their current
// value, set fields replace it.
type CustomerUpdate struct {
	Name           *string
	Phone          *string
	AlternatePhone *string
	Status         *string
	Remark         *string
}

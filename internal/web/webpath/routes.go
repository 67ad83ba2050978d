package webpath

const (
	Api          = "/api"
	ApiLogin     = Api + "/login"
	ApiCustomers = Api + "/customers"
	ApiCustomer  = ApiCustomers + "/:id"
)

package models

// Address represents a billing or customer address
type Address struct {
	StreetAddress1 string
	StreetAddress2 string
	City           string
	State          string
	PostalCode     string
	Country        string
}

// Customer represents a customer record at the gateway. Key is assigned by
// the gateway on create and required for update/delete and for attaching
// recurring payment methods.
type Customer struct {
	Key         string
	FirstName   string
	LastName    string
	Email       string
	HomePhone   string
	MobilePhone string
	Address     *Address
}

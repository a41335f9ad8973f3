package model

type Customer struct {
	DTO
	Name  string `gorm:"not null" validate:"required" json:"name"`
	Phone string `json:"phone"`
}

type Customers []Customer

type CreateCustomerInput struct {
	Name  string `validate:"required" json:"name"`
	Phone string `json:"phone"`
}

// EditCustomerInput replaces name and phone wholesale, keyed by the path id.
type EditCustomerInput struct {
	Name  string `validate:"required" json:"name"`
	Phone string `json:"phone"`
}

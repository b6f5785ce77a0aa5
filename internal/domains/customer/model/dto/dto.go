package dto

import (
	"hotelsys/internal/domains/customer/model"
	"hotelsys/shared"
)

type CreateCustomerRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

func (c *CreateCustomerRequest) ToModel() model.Customer {
	return model.Customer{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Email:      c.Email,
	}
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (u *UpdateCustomerRequest) IsEmpty() bool {
	return u.Name == nil && u.Email == nil
}

func (u *UpdateCustomerRequest) ApplyTo(customer *model.Customer) {
	if u.Name != nil {
		customer.Name = *u.Name
	}

	if u.Email != nil {
		customer.Email = *u.Email
	}
}

func (u *UpdateCustomerRequest) ChangedFields() map[string]any {
	return shared.TransformFields(u)
}

type CustomerResponse struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.CustomerID = model.CustomerID
	r.Name = model.Name
	r.Email = model.Email
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer) {
	r.TotalData = len(models)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}

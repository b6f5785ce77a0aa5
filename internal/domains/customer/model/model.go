package model

import "hotelsys/shared/constant"

const (
	CollectionName = constant.CollectionCustomers
	EntityName     = "customer"

	FieldID    = "customer_id"
	FieldName  = "name"
	FieldEmail = "email"
)

type Customer struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

func (c Customer) Key() string {
	return c.CustomerID
}

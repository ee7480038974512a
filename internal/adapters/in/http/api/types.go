package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Created struct {
	Id openapi_types.UUID `json:"id"`
}

type NewUser struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber int64  `json:"phone_number"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type ContactUpdate struct {
	Email       *string `json:"email,omitempty"`
	PhoneNumber *int64  `json:"phone_number,omitempty"`
}

type User struct {
	Id          openapi_types.UUID `json:"id"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	PhoneNumber int64              `json:"phone_number"`
	Email       string             `json:"email"`
	Group       string             `json:"group"`
	CreatedAt   time.Time          `json:"created_at"`
}

type ProductIDs struct {
	ProductIds []openapi_types.UUID `json:"product_ids"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type Owner struct {
	Id        openapi_types.UUID `json:"id"`
	FirstName string             `json:"first_name"`
	LastName  string             `json:"last_name"`
	Email     string             `json:"email"`
}

type OrderSummary struct {
	Id           openapi_types.UUID `json:"id"`
	Status       string             `json:"status"`
	Total        string             `json:"total"`
	ProductCount int                `json:"product_count"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type Order struct {
	OrderSummary
	Owner Owner `json:"owner"`
}

type OrderPage struct {
	Count int            `json:"count"`
	Data  []OrderSummary `json:"data"`
}

type Product struct {
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	Sku         string             `json:"sku,omitempty"`
	Brand       string             `json:"brand,omitempty"`
	Category    string             `json:"category,omitempty"`
	Description string             `json:"description,omitempty"`
	Unit        string             `json:"unit,omitempty"`
	Weight      float64            `json:"weight,omitempty"`
	Price       string             `json:"price"`
}

type ProductPage struct {
	Count int       `json:"count"`
	Data  []Product `json:"data"`
}

type PageParams struct {
	Page *int `form:"page,omitempty" json:"page,omitempty"`
}

type GetProductsParams struct {
	Page *int    `form:"page,omitempty" json:"page,omitempty"`
	Name *string `form:"name,omitempty" json:"name,omitempty"`
}

type RemoveOrderProductsParams struct {
	ProductIds []openapi_types.UUID `form:"product_ids" json:"product_ids"`
}

package handlers

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Id          int            `json:"id,omitempty"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Batches     []BatchRequest `json:"batches"`
}

type BatchRequest struct {
	Id        int             `json:"id,omitempty"`
	LotNumber string          `json:"lotNumber"`
	EntryDate time.Time       `json:"entryDate"`
	Price     decimal.Decimal `json:"price"`
	ProductId int             `json:"productId,omitempty"`
}

// ProductTransfer is the product shape returned across the API boundary.
type ProductTransfer struct {
	Id          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Batches     []BatchTransfer `json:"batches"`
}

// BatchTransfer is the nested batch projection inside a ProductTransfer.
// Quantity is deliberately not part of it.
type BatchTransfer struct {
	Id        int             `json:"id"`
	LotNumber string          `json:"lotNumber"`
	EntryDate time.Time       `json:"entryDate"`
	Price     decimal.Decimal `json:"price"`
}

// BatchResponse is the standalone batch shape on /api/products-batches.
type BatchResponse struct {
	Id        int             `json:"id"`
	LotNumber string          `json:"lotNumber"`
	EntryDate time.Time       `json:"entryDate"`
	Price     decimal.Decimal `json:"price"`
	ProductId int             `json:"productId"`
}

// ProductPage is the pagination envelope for the product listing.
type ProductPage struct {
	TotalItems int               `json:"totalItems"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
	Items      []ProductTransfer `json:"items"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type MessageResult struct {
	Message string `json:"message"`
}

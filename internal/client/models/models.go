// Package models defines the wire types exchanged with the PayTrack REST API.
//
// The API serves Mongo-style documents: the id field is "_id", and income
// references come back populated (embedded objects) from list endpoints but
// as raw id strings from single-record endpoints. CustomerRef and CurrencyRef
// absorb both shapes.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Status is the income payment status enum. The API never produces values
// outside the three constants below, and the forms never send any other.
type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"
	StatusCanceled Status = "canceled"
)

// StatusValues lists the selectable statuses in form order.
func StatusValues() []Status {
	return []Status{StatusPending, StatusPaid, StatusCanceled}
}

// ParseStatus validates s against the enum.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPaid, StatusCanceled:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

type Customer struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type Currency struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	ExchangeRate float64 `json:"exchange_rate"`
}

// CustomerRef is an income's customer reference. List endpoints populate it
// with the full customer document; single-record endpoints return just the id.
type CustomerRef struct {
	Customer
}

func (r *CustomerRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}
	return json.Unmarshal(data, &r.Customer)
}

func (r CustomerRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// CurrencyRef is an income's currency reference, with the same dual shape
// as CustomerRef.
type CurrencyRef struct {
	Currency
}

func (r *CurrencyRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}
	return json.Unmarshal(data, &r.Currency)
}

func (r CurrencyRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

type Income struct {
	ID          string      `json:"_id"`
	Amount      float64     `json:"amount"`
	Customer    CustomerRef `json:"customer_id"`
	Currency    CurrencyRef `json:"currency_id"`
	Status      Status      `json:"status"`
	PaymentDate *time.Time  `json:"payment_date"`
	Description string      `json:"description"`
}

// IncomeRequest is the create/update payload for an income. References are
// always sent as raw ids; the date as an RFC3339 timestamp string.
type IncomeRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	PaymentDate string  `json:"payment_date"`
	CustomerID  string  `json:"customer_id"`
	CurrencyID  string  `json:"currency_id"`
	Status      Status  `json:"status"`
}

// CurrencyRequest is the create/update payload for a currency.
type CurrencyRequest struct {
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	ExchangeRate float64 `json:"exchange_rate"`
}

// User is the profile returned by login and persisted locally for the
// lifetime of the session.
type User struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Session groups the credentials returned by a successful login.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

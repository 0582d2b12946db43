package domain

import (
	"github.com/shopspring/decimal"
)

// Record is anything the flat-file and bolt repositories can index by id.
type Record interface {
	RecordID() string
}

// Customer is the person renting a car. Only Age affects pricing.
type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func (c Customer) RecordID() string { return c.ID }

// CarCategory groups cars that share a base daily price.
type CarCategory struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	CarIDs []string        `json:"carIds"`
	Price  decimal.Decimal `json:"price"`
}

func (c CarCategory) RecordID() string { return c.ID }

// Car is the record allocated to a rental. Pricing never looks inside it.
type Car struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ReleaseYear  int    `json:"releaseYear"`
	Available    bool   `json:"available"`
	GasAvailable bool   `json:"gasAvailable"`
}

func (c Car) RecordID() string { return c.ID }

// Transaction is the receipt of a completed rental.
type Transaction struct {
	ID       string   `json:"id"`
	Customer Customer `json:"customer"`
	Car      Car      `json:"car"`
	DueDate  string   `json:"dueDate"`
	Amount   string   `json:"amount"`
}

// Quote is the price breakdown for a rental that has not allocated a car.
type Quote struct {
	Customer   Customer        `json:"customer"`
	Category   CarCategory     `json:"category"`
	Days       int             `json:"days"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Total      decimal.Decimal `json:"total"`
	Amount     string          `json:"amount"`
}

// RentalEntry is one line of the rental history.
type RentalEntry struct {
	Timestamp     string `json:"timestamp"`
	TransactionID string `json:"transaction_id"`
	CustomerID    string `json:"customer_id"`
	CategoryID    string `json:"category_id,omitempty"`
	CarID         string `json:"car_id"`
	DueDate       string `json:"due_date"`
	Amount        string `json:"amount"`
	DataRevision  string `json:"data_revision,omitempty"`
}

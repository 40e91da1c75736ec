package domain

import "errors"

// ErrRecordNotFound is returned by back-office repositories when a lookup by
// id matches nothing. The records below are plain rows with no derived
// invariants beyond foreign-key references.
var ErrRecordNotFound = errors.New("record not found")

// Center is a milk collection center.
type Center struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Collection is a single day's collection amount booked against a center.
type Collection struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	CenterID string  `json:"center_id"`
}

// Sale records an outbound sale of produce.
type Sale struct {
	ID         string  `json:"id"`
	Item       string  `json:"item"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Date       string  `json:"date"`
	CenterID   string  `json:"center_id,omitempty"`
	CustomerID string  `json:"customer_id,omitempty"`
}

// Customer is a trading counterparty with bank and tax details.
type Customer struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	GSTNumber     string `json:"gst_number,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	IFSCCode      string `json:"ifsc_code,omitempty"`
	Bank          string `json:"bank,omitempty"`
	Address       string `json:"address,omitempty"`
	MobileNumber  string `json:"mobile_number,omitempty"`
}

// Account is a named ledger balance.
type Account struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// CenterBankAccount holds a center's payout bank details, keyed by code.
type CenterBankAccount struct {
	Code          int     `json:"code"`
	SubCode       string  `json:"sub_code,omitempty"`
	BankAccNumber string  `json:"bank_acc_number"`
	Name          string  `json:"name"`
	IFSC          string  `json:"ifsc"`
	Branch        string  `json:"branch,omitempty"`
	Amount        float64 `json:"amount"`
}

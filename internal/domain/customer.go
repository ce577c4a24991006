package domain

import "time"

// Customer is the canonical profile row as served by the identity resolver.
// Field names on the wire match what the mobile client already expects.
type Customer struct {
	CustomerID  string `json:"CustomerId" dynamodbav:"customer_id"`
	FirstName   string `json:"FirstName" dynamodbav:"first_name"`
	MiddleName  string `json:"MiddleName,omitempty" dynamodbav:"middle_name"`
	LastName    string `json:"LastName" dynamodbav:"last_name"`
	DOB         string `json:"Dob,omitempty" dynamodbav:"dob"` // YYYY-MM-DD
	MobileNo    string `json:"MobileNo,omitempty" dynamodbav:"mobile_no"`
	PerMobileNo string `json:"PerMobileNo,omitempty" dynamodbav:"per_mobile_no"`
	Email       string `json:"-" dynamodbav:"email"`
}

// Account is the single canonical account/product row. All field-name
// normalization happens at the resolver boundary; nothing downstream ever
// sees alternate spellings. The raw account number never leaves the server.
type Account struct {
	AccountNumber string  `json:"-" dynamodbav:"account_number"`
	CustomerID    string  `json:"-" dynamodbav:"customer_id"`
	ProductName   string  `json:"productName" dynamodbav:"product_name"`
	Balance       float64 `json:"balance" dynamodbav:"balance"`
	Status        int     `json:"status" dynamodbav:"status"`
	IsActive      bool    `json:"-" dynamodbav:"is_active"`
}

type Transaction struct {
	TransactionID   string    `json:"TransactionId" dynamodbav:"transaction_id"`
	AccountNumber   string    `json:"-" dynamodbav:"account_number"`
	Type            string    `json:"Type" dynamodbav:"type"` // "CREDIT" | "DEBIT"
	Amount          float64   `json:"Amount" dynamodbav:"amount"`
	Balance         float64   `json:"Balance" dynamodbav:"balance"`
	Description     string    `json:"Description" dynamodbav:"description"`
	TransactionTime time.Time `json:"TransactionTime" dynamodbav:"transaction_time"`
}

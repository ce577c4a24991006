package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bank-mobile-api/internal/application/account"
	"github.com/bank-mobile-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OTPEnvelope wraps send-otp responses. OTP is populated only when the
// server runs with in-band echo enabled (non-production test mode).
type OTPEnvelope struct {
	Message string `json:"message"`
	OTP     string `json:"otp,omitempty"`
}

// TokenEnvelope wraps login responses.
type TokenEnvelope struct {
	Token string `json:"token"`
}

// ProductsEnvelope wraps the product listing, already rank-sorted.
type ProductsEnvelope struct {
	Products []account.Product `json:"products"`
}

// TransactionsEnvelope wraps the transaction history, newest first.
type TransactionsEnvelope struct {
	Transactions []domain.Transaction `json:"transactions"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

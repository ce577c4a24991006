package handler

import (
	"net/http"

	"github.com/bank-mobile-api/internal/application/account"
	"github.com/bank-mobile-api/internal/transport/http/middleware"
)

// AccountHandler handles the authenticated profile/product/transaction endpoints.
type AccountHandler struct {
	svc account.Service
}

func NewAccountHandler(svc account.Service) *AccountHandler {
	return &AccountHandler{svc: svc}
}

func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	cust, err := h.svc.Profile(r.Context(), claims.CustomerID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cust)
}

func (h *AccountHandler) Products(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	products, err := h.svc.Products(r.Context(), claims.CustomerID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ProductsEnvelope{Products: products})
}

func (h *AccountHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	handle := r.URL.Query().Get("acc")
	if handle == "" {
		writeError(w, http.StatusBadRequest, "account handle required")
		return
	}
	txs, err := h.svc.Transactions(r.Context(), claims.CustomerID, handle)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TransactionsEnvelope{Transactions: txs})
}

package http

import (
	"context"

	"github.com/bank-mobile-api/internal/application/account"
	"github.com/bank-mobile-api/internal/application/auth"
	"github.com/bank-mobile-api/internal/domain"
	jwtinfra "github.com/bank-mobile-api/internal/infrastructure/jwt"
	"github.com/bank-mobile-api/internal/infrastructure/smtp"
	"github.com/bank-mobile-api/internal/infrastructure/sns"
)

// CustomerRepository is the resolver surface for customer profiles.
type CustomerRepository interface {
	GetCustomer(ctx context.Context, clientID string) (*domain.Customer, error)
}

// AccountRepository is the resolver surface for account rows.
type AccountRepository interface {
	ListAccounts(ctx context.Context, clientID string) ([]domain.Account, error)
	GetAccountOwner(ctx context.Context, accountNumber string) (string, error)
}

// TransactionRepository is the resolver surface for transaction history.
type TransactionRepository interface {
	ListTransactions(ctx context.Context, accountNumber string) ([]domain.Transaction, error)
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	Customers    CustomerRepository
	Accounts     AccountRepository
	Transactions TransactionRepository
	OTPs         auth.OTPStore
	Codec        account.HandleCodec
	JWTProvider  *jwtinfra.Provider
	SMS          sns.SMSSender
	Mailer       smtp.Mailer
}

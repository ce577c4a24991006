package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/bank-mobile-api/internal/domain"
)

// resolverTimeout bounds every call to the identity resolver.
const resolverTimeout = 5 * time.Second

// Product is the client-facing view of an account row: the raw account
// number is replaced by its opaque handle and a display rank is attached.
type Product struct {
	AccountHandle string  `json:"accountHandle"`
	ProductName   string  `json:"productName"`
	Balance       float64 `json:"balance"`
	Status        int     `json:"status"`
	Rank          int     `json:"rank"`
}

type CustomerResolver interface {
	GetCustomer(ctx context.Context, clientID string) (*domain.Customer, error)
}

type AccountResolver interface {
	ListAccounts(ctx context.Context, clientID string) ([]domain.Account, error)
	GetAccountOwner(ctx context.Context, accountNumber string) (string, error)
}

type TransactionResolver interface {
	ListTransactions(ctx context.Context, accountNumber string) ([]domain.Transaction, error)
}

// HandleCodec seals account numbers into opaque handles and back.
type HandleCodec interface {
	Encode(accountNumber string) string
	Decode(token string) (string, error)
}

type Service interface {
	Profile(ctx context.Context, customerID string) (*domain.Customer, error)
	Products(ctx context.Context, customerID string) ([]Product, error)
	// Transactions decodes the handle, confirms the decoded account belongs
	// to customerID, and only then reads the history. A valid handle for
	// someone else's account fails with domain.ErrForbidden.
	Transactions(ctx context.Context, customerID, handle string) ([]domain.Transaction, error)
}

type ServiceDeps struct {
	Customers    CustomerResolver
	Accounts     AccountResolver
	Transactions TransactionResolver
	Codec        HandleCodec
}

type service struct {
	customers    CustomerResolver
	accounts     AccountResolver
	transactions TransactionResolver
	codec        HandleCodec
}

func NewService(d ServiceDeps) Service {
	return &service{
		customers:    d.Customers,
		accounts:     d.Accounts,
		transactions: d.Transactions,
		codec:        d.Codec,
	}
}

func (s *service) Profile(ctx context.Context, customerID string) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, resolverTimeout)
	defer cancel()

	cust, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, s.upstream("profile lookup", customerID, err)
	}
	return cust, nil
}

func (s *service) Products(ctx context.Context, customerID string) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, resolverTimeout)
	defer cancel()

	accounts, err := s.accounts.ListAccounts(ctx, customerID)
	if err != nil {
		return nil, s.upstream("account listing", customerID, err)
	}

	products := make([]Product, 0, len(accounts))
	for _, a := range accounts {
		products = append(products, Product{
			AccountHandle: s.codec.Encode(a.AccountNumber),
			ProductName:   a.ProductName,
			Balance:       a.Balance,
			Status:        a.Status,
			Rank:          domain.ProductRank(a.ProductName),
		})
	}
	// stable: equal ranks keep the resolver's order
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Rank < products[j].Rank
	})
	return products, nil
}

func (s *service) Transactions(ctx context.Context, customerID, handle string) ([]domain.Transaction, error) {
	accountNumber, err := s.codec.Decode(handle)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, resolverTimeout)
	defer cancel()

	owner, err := s.accounts.GetAccountOwner(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// a decoded account that no longer exists is reported exactly
			// like one the caller doesn't own
			return nil, fmt.Errorf("account ownership: %w", domain.ErrForbidden)
		}
		return nil, s.upstream("owner lookup", customerID, err)
	}
	if owner != customerID {
		slog.Warn("cross-account transaction read rejected", "customer_id", customerID)
		return nil, fmt.Errorf("account ownership: %w", domain.ErrForbidden)
	}

	txs, err := s.transactions.ListTransactions(ctx, accountNumber)
	if err != nil {
		return nil, s.upstream("transaction listing", customerID, err)
	}
	return txs, nil
}

// upstream translates resolver failures, keeping sentinels and hiding
// store-specific detail behind domain.ErrUpstream.
func (s *service) upstream(op, customerID string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	slog.Error("resolver call failed", "op", op, "customer_id", customerID, "err", err)
	return fmt.Errorf("%s: %w", op, domain.ErrUpstream)
}

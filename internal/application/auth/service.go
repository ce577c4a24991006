package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/bank-mobile-api/internal/domain"
	"github.com/bank-mobile-api/internal/infrastructure/smtp"
	"github.com/bank-mobile-api/internal/infrastructure/sns"
	"github.com/bank-mobile-api/internal/pkg/id"
)

// resolverTimeout bounds every call to the identity resolver.
const resolverTimeout = 5 * time.Second

type SendOTPRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
}

type VerifyOTPRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
	OTP        string `json:"otp" validate:"required,len=6,numeric"`
}

type LoginRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
	Credential string `json:"credential" validate:"required"`
}

// CustomerResolver is the slice of the identity resolver this service needs.
type CustomerResolver interface {
	GetCustomer(ctx context.Context, clientID string) (*domain.Customer, error)
}

// OTPStore is the keyed passcode store.
type OTPStore interface {
	Put(identifier, code, issueID string, now time.Time)
	Verify(identifier, code string, now time.Time) error
	IsVerified(identifier string, now time.Time) bool
}

// TokenSigner mints session tokens for verified identities.
type TokenSigner interface {
	Sign(customerID string) (string, error)
}

type Service interface {
	// RequestOTP issues and delivers a passcode. The returned echo is empty
	// unless the server runs with in-band echo enabled (test mode only).
	RequestOTP(ctx context.Context, req SendOTPRequest) (echo string, err error)
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) error
	// Login exchanges a verified identifier for a signed session token.
	Login(ctx context.Context, req LoginRequest) (token string, err error)
}

type ServiceDeps struct {
	Customers CustomerResolver
	OTPs      OTPStore
	SMS       sns.SMSSender
	Mailer    smtp.Mailer
	Tokens    TokenSigner
	EchoOTP   bool
}

type service struct {
	customers CustomerResolver
	otps      OTPStore
	sms       sns.SMSSender
	mailer    smtp.Mailer
	tokens    TokenSigner
	echoOTP   bool
}

func NewService(d ServiceDeps) Service {
	return &service{
		customers: d.Customers,
		otps:      d.OTPs,
		sms:       d.SMS,
		mailer:    d.Mailer,
		tokens:    d.Tokens,
		echoOTP:   d.EchoOTP,
	}
}

func (s *service) RequestOTP(ctx context.Context, req SendOTPRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, resolverTimeout)
	defer cancel()

	cust, err := s.customers.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("customer lookup: %w", domain.ErrNotFound)
		}
		slog.Error("customer lookup failed", "customer_id", req.CustomerID, "err", err)
		return "", fmt.Errorf("customer lookup: %w", domain.ErrUpstream)
	}

	code, err := newCode()
	if err != nil {
		return "", err
	}
	issueID := id.New()
	s.otps.Put(cust.CustomerID, code, issueID, time.Now())

	if err := s.deliver(ctx, cust, code); err != nil {
		slog.Error("passcode delivery failed", "customer_id", cust.CustomerID, "issue_id", issueID, "err", err)
		return "", fmt.Errorf("passcode delivery: %w", domain.ErrUpstream)
	}
	slog.Info("passcode issued", "customer_id", cust.CustomerID, "issue_id", issueID)

	if s.echoOTP {
		return code, nil
	}
	return "", nil
}

// deliver sends the code out-of-band: SMS when a mobile number is on file,
// email otherwise.
func (s *service) deliver(ctx context.Context, cust *domain.Customer, code string) error {
	msg := "Your one-time passcode is " + code + ". It expires in 5 minutes."
	switch {
	case cust.MobileNo != "" && s.sms != nil:
		return s.sms.SendSMS(ctx, cust.MobileNo, msg)
	case cust.Email != "" && s.mailer != nil:
		return s.mailer.SendEmail(cust.Email, "Your one-time passcode", msg)
	default:
		return errors.New("no delivery channel on file")
	}
}

func (s *service) VerifyOTP(ctx context.Context, req VerifyOTPRequest) error {
	return s.otps.Verify(req.CustomerID, req.OTP, time.Now())
}

func (s *service) Login(ctx context.Context, req LoginRequest) (string, error) {
	// The credential is required but not matched against a stored secret;
	// the passcode verification is the authentication factor here.
	if !s.otps.IsVerified(req.CustomerID, time.Now()) {
		return "", fmt.Errorf("login for %s: %w", req.CustomerID, domain.ErrUnverified)
	}
	token, err := s.tokens.Sign(req.CustomerID)
	if err != nil {
		slog.Error("session signing failed", "customer_id", req.CustomerID, "err", err)
		return "", fmt.Errorf("session signing: %w", domain.ErrUpstream)
	}
	slog.Info("session issued", "customer_id", req.CustomerID)
	return token, nil
}

// newCode draws a uniformly random 6-digit passcode.
func newCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generate passcode: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

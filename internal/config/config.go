package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	JWTSecret    string // HS256 signing secret, server-side only
	HandleSecret string // 32-byte key material for the account-handle codec

	// OTPEcho returns the generated passcode in the send-otp response.
	// Only honored outside production; see EchoOTP().
	OTPEcho bool

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	SNSRegion string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each resolver entity.
type DynamoTables struct {
	Customers    string
	Accounts     string
	Transactions string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "5000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Customers:    getEnv("DYNAMO_TABLE_CUSTOMERS", "customers"),
			Accounts:     getEnv("DYNAMO_TABLE_ACCOUNTS", "customer_accounts"),
			Transactions: getEnv("DYNAMO_TABLE_TRANSACTIONS", "transactions"),
		},

		JWTSecret:    getEnv("JWT_SECRET", ""),
		HandleSecret: getEnv("HANDLE_SECRET", ""),

		OTPEcho: getEnvBool("OTP_ECHO", false),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@example.com"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		SNSRegion: getEnv("SNS_REGION", "us-east-1"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

// EchoOTP reports whether passcodes may be returned in-band. The flag is a
// test convenience and is hard-disabled in production regardless of env value.
func (c *Config) EchoOTP() bool {
	return c.OTPEcho && c.AppEnv != "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	JWTSecret     string
	JWTTTLMinutes int

	// MaxInstallmentPayment bounds both the eligibility lookahead (months)
	// and the installments settled per payment call.
	MaxInstallmentPayment int

	LockWaitSecs  int
	LockLeaseSecs int

	LoanCacheTTLSecs          int
	CustomerLoansCacheTTLSecs int
	IdempTTLSecs              int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	return &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "loans"),
		MySQLUser: getenv("MYSQL_USER", "loans"),
		MySQLPass: getenv("MYSQL_PASS", "loans"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		JWTSecret:     getenv("JWT_SECRET", ""),
		JWTTTLMinutes: getenvInt("JWT_TTL_MINUTES", 60),

		MaxInstallmentPayment: getenvInt("MAX_INSTALLMENT_PAYMENT", 3),

		LockWaitSecs:  getenvInt("LOCK_WAIT_SECONDS", 10),
		LockLeaseSecs: getenvInt("LOCK_LEASE_SECONDS", 30),

		LoanCacheTTLSecs:          getenvInt("LOAN_CACHE_TTL_SECONDS", 30*60),
		CustomerLoansCacheTTLSecs: getenvInt("CUSTOMER_LOANS_CACHE_TTL_SECONDS", 30*60),
		IdempTTLSecs:              getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if c.MaxInstallmentPayment <= 0 {
		return errors.New("MAX_INSTALLMENT_PAYMENT must be positive")
	}
	return nil
}

func (c *Config) JWTTTL() time.Duration   { return time.Duration(c.JWTTTLMinutes) * time.Minute }
func (c *Config) LockWait() time.Duration { return time.Duration(c.LockWaitSecs) * time.Second }
func (c *Config) LockLease() time.Duration {
	return time.Duration(c.LockLeaseSecs) * time.Second
}
func (c *Config) LoanCacheTTL() time.Duration {
	return time.Duration(c.LoanCacheTTLSecs) * time.Second
}
func (c *Config) CustomerLoansCacheTTL() time.Duration {
	return time.Duration(c.CustomerLoansCacheTTLSecs) * time.Second
}
func (c *Config) IdempTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME columns
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

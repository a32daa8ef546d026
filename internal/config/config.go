package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
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

	IdempTTLSecs int

	// Loan business constants.
	DefaultLoanDays    int
	FinePerDay         int64 // currency minor units per overdue day
	MaxConcurrentLoans int

	// Listing limits.
	DefaultPageSize int
	MaxPageSize     int
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
	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "library"),
		MySQLUser: getenv("MYSQL_USER", "library"),
		MySQLPass: getenv("MYSQL_PASS", "library"),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:      getenvInt("REDIS_DB", 0),
		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		DefaultLoanDays:    getenvInt("DEFAULT_LOAN_DAYS", 14),
		MaxConcurrentLoans: getenvInt("MAX_CONCURRENT_LOANS", 3),

		DefaultPageSize: getenvInt("DEFAULT_PAGE_SIZE", 20),
		MaxPageSize:     getenvInt("MAX_PAGE_SIZE", 100),
	}
	c.FinePerDay = int64(getenvInt("FINE_PER_DAY", 2000))
	return c
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
	if c.DefaultLoanDays <= 0 {
		return errors.New("DEFAULT_LOAN_DAYS must be positive")
	}
	if c.FinePerDay < 0 {
		return errors.New("FINE_PER_DAY must not be negative")
	}
	if c.MaxConcurrentLoans <= 0 {
		return errors.New("MAX_CONCURRENT_LOANS must be positive")
	}
	if c.DefaultPageSize <= 0 || c.MaxPageSize < c.DefaultPageSize {
		return errors.New("page size config inconsistent")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATE/DATETIME columns
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

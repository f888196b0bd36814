package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.JWTIssuer == "" {
		return fmt.Errorf("auth.jwt_issuer must not be empty")
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be within [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.CookieName == "" {
		return fmt.Errorf("auth.cookie_name must not be empty")
	}

	if err := c.Bank.validate(); err != nil {
		return fmt.Errorf("bank: %w", err)
	}
	if err := c.Realtime.validate(); err != nil {
		return fmt.Errorf("realtime: %w", err)
	}

	if c.RateLimit.LoginPerMinute <= 0 {
		return fmt.Errorf("rate_limit.login_per_minute must be > 0 (got %d)", c.RateLimit.LoginPerMinute)
	}

	if c.Seed.Enabled && (c.Seed.UserEmail == "" || c.Seed.AdminEmail == "") {
		return fmt.Errorf("seed: user_email and admin_email are required when seeding is enabled")
	}

	return nil
}

func (b *BankConfig) validate() error {
	opening, err := ParseAmount(b.OpeningBalanceRaw)
	if err != nil {
		return fmt.Errorf("opening_balance: %w", err)
	}
	if opening.IsNegative() {
		return fmt.Errorf("opening_balance must be >= 0 (got %s)", opening)
	}

	maxAmount, err := ParseAmount(b.MaxAmountRaw)
	if err != nil {
		return fmt.Errorf("max_amount: %w", err)
	}
	if !maxAmount.IsPositive() {
		return fmt.Errorf("max_amount must be > 0 (got %s)", maxAmount)
	}

	b.OpeningBalance = opening
	b.MaxAmount = maxAmount
	return nil
}

func (r *RealtimeConfig) validate() error {
	if r.WriteTimeout <= 0 {
		return fmt.Errorf("write_timeout must be > 0 (got %v)", r.WriteTimeout)
	}
	if r.PingPeriod <= 0 || r.PingPeriod >= r.PongWait {
		return fmt.Errorf("ping_period must be > 0 and < pong_wait (got %v, pong_wait %v)", r.PingPeriod, r.PongWait)
	}
	if r.SendBuffer <= 0 {
		return fmt.Errorf("send_buffer must be > 0 (got %d)", r.SendBuffer)
	}
	if r.MaxMessageSize <= 0 {
		return fmt.Errorf("max_message_size must be > 0 (got %d)", r.MaxMessageSize)
	}
	return nil
}

// ParseAmount parses a monetary value with at most two decimal places.
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return decimal.Zero, fmt.Errorf("invalid amount %q: more than 2 decimal places", raw)
	}
	return d, nil
}

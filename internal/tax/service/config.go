package service

import "github.com/shopspring/decimal"

// Config carries the statutory rates. Rates are fixed for the process
// lifetime; a zero rate falls back to the current statutory default.
type Config struct {
	GSTRate decimal.Decimal
	QSTRate decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		GSTRate: decimal.RequireFromString("0.05"),
		QSTRate: decimal.RequireFromString("0.09975"),
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.GSTRate.IsZero() {
		c.GSTRate = defaults.GSTRate
	}

	if c.QSTRate.IsZero() {
		c.QSTRate = defaults.QSTRate
	}
	return c
}

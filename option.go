package investmind

import (
	"github.com/shopspring/decimal"
)

// OptionType is the closed category of an investment product. It controls
// how the return value of an investment is computed.
type OptionType string

const (
	// Interest options treat the rate as a fractional annual return.
	Interest OptionType = "interest"
	// Fixed options treat the rate as a flat multiplier of the invested amount.
	Fixed OptionType = "fixed"
	// Equity options treat the rate as a fractional expected return.
	Equity OptionType = "equity"
)

// ParseOptionType parses a string into an OptionType.
func ParseOptionType(s string) (OptionType, error) {
	switch OptionType(s) {
	case Interest, Fixed, Equity:
		return OptionType(s), nil
	default:
		return "", validationErrorf("option_type", "must be one of interest, fixed, equity, got %q", s)
	}
}

func (t OptionType) String() string { return string(t) }

// Valid reports whether t belongs to the closed set of option types.
func (t OptionType) Valid() bool {
	_, err := ParseOptionType(string(t))
	return err == nil
}

// InvestmentOption is a company listed for investment in a user's personal
// catalog. Options are immutable once listed; there is no update or delete
// path.
type InvestmentOption struct {
	Name          string          `json:"name"`
	Type          OptionType      `json:"option_type"`
	RateOfReturn  decimal.Decimal `json:"rate_of_return"`
	MinInvestment Money           `json:"min_investment"`
	MaxInvestment Money           `json:"max_investment"`
}

// NewInvestmentOption validates the company details and builds the option
// record. It returns a *ValidationError naming the offending field.
func NewInvestmentOption(name string, typ OptionType, rate decimal.Decimal, min, max Money) (InvestmentOption, error) {
	if name == "" {
		return InvestmentOption{}, validationErrorf("name", "cannot be empty")
	}
	if !typ.Valid() {
		return InvestmentOption{}, validationErrorf("option_type", "must be one of interest, fixed, equity, got %q", string(typ))
	}
	if rate.IsNegative() {
		return InvestmentOption{}, validationErrorf("rate_of_return", "cannot be negative")
	}
	if min.IsNegative() {
		return InvestmentOption{}, validationErrorf("min_investment", "cannot be negative")
	}
	if max.IsNegative() {
		return InvestmentOption{}, validationErrorf("max_investment", "cannot be negative")
	}
	if max.LessThan(min) {
		return InvestmentOption{}, validationErrorf("max_investment", "cannot be below the minimum investment")
	}
	return InvestmentOption{
		Name:          name,
		Type:          typ,
		RateOfReturn:  rate,
		MinInvestment: min,
		MaxInvestment: max,
	}, nil
}

// Return computes the projected return value for investing amount into the
// option. For fixed options the rate behaves as a flat multiplier of the
// amount; for interest and equity options it is a fractional rate applied
// on top of the principal.
func (o InvestmentOption) Return(amount Money) Money {
	if o.Type == Fixed {
		return amount.Mul(o.RateOfReturn)
	}
	return amount.Mul(decimal.NewFromInt(1).Add(o.RateOfReturn))
}

func (o InvestmentOption) Equal(p InvestmentOption) bool {
	return o.Name == p.Name &&
		o.Type == p.Type &&
		o.RateOfReturn.Equal(p.RateOfReturn) &&
		o.MinInvestment.Equal(p.MinInvestment) &&
		o.MaxInvestment.Equal(p.MaxInvestment)
}

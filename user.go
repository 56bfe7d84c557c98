package investmind

import "github.com/shopspring/decimal"

// startingBalance is the play-money grant every new account begins with.
var startingBalance = M(10000.0)

// Profile holds the optional descriptive fields collected at signup. They
// carry no invariants.
type Profile struct {
	ContactInfo          string `json:"contact_info,omitempty"`
	InvestmentGoals      string `json:"investment_goals,omitempty"`
	RiskTolerance        string `json:"risk_tolerance,omitempty"`
	InvestmentExperience string `json:"investment_experience,omitempty"`
}

// User is a tracked account: identity, credentials, balance, the personal
// investment catalog and the chronological investment history.
type User struct {
	Username          string             `json:"username"`
	Age               int                `json:"age"`
	PasswordDigest    string             `json:"password"`
	Balance           Money              `json:"balance"`
	Investments       []Investment       `json:"investments"`
	InvestmentOptions []InvestmentOption `json:"investment_options"`
	Profile
}

// NewUser creates an account with the default starting balance and empty
// histories. The password is stored only as its digest.
func NewUser(username string, age int, password string, profile Profile) *User {
	return &User{
		Username:       username,
		Age:            age,
		PasswordDigest: HashPassword(password),
		Balance:        startingBalance,
		Profile:        profile,
	}
}

// ListOption validates the company details and appends a new investment
// option to the user's catalog. On failure nothing is appended and the
// returned error names the offending field.
func (u *User) ListOption(name string, typ OptionType, rate decimal.Decimal, min, max Money) (InvestmentOption, error) {
	opt, err := NewInvestmentOption(name, typ, rate, min, max)
	if err != nil {
		return InvestmentOption{}, err
	}
	u.InvestmentOptions = append(u.InvestmentOptions, opt)
	return opt, nil
}

// Option returns the catalog option with the given name, or nil if the
// user never listed it.
func (u *User) Option(name string) *InvestmentOption {
	for i := range u.InvestmentOptions {
		if u.InvestmentOptions[i].Name == name {
			return &u.InvestmentOptions[i]
		}
	}
	return nil
}

func (u *User) Equal(v *User) bool {
	if u.Username != v.Username || u.Age != v.Age ||
		u.PasswordDigest != v.PasswordDigest ||
		!u.Balance.Equal(v.Balance) || u.Profile != v.Profile {
		return false
	}
	if len(u.Investments) != len(v.Investments) ||
		len(u.InvestmentOptions) != len(v.InvestmentOptions) {
		return false
	}
	for i := range u.Investments {
		if !u.Investments[i].Equal(v.Investments[i]) {
			return false
		}
	}
	for i := range u.InvestmentOptions {
		if !u.InvestmentOptions[i].Equal(v.InvestmentOptions[i]) {
			return false
		}
	}
	return true
}

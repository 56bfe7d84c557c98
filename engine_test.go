package investmind

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

func newTestUser(t *testing.T) *User {
	t.Helper()
	return NewUser("alice", 30, "pw", Profile{})
}

func mustOption(t *testing.T, typ OptionType, rate float64, min, max Money) InvestmentOption {
	t.Helper()
	opt, err := NewInvestmentOption("Acme", typ, decimal.NewFromFloat(rate), min, max)
	if err != nil {
		t.Fatalf("NewInvestmentOption: %v", err)
	}
	return opt
}

func TestUser_Invest(t *testing.T) {
	testCases := []struct {
		name        string
		opt         InvestmentOption
		amount      Money
		wantReturn  Money
		wantBalance Money
	}{
		{
			name:        "fixed option return is rate times amount",
			opt:         InvestmentOption{Name: "Acme", Type: Fixed, RateOfReturn: decimal.NewFromFloat(0.05), MinInvestment: M(100), MaxInvestment: M(5000)},
			amount:      M(1000),
			wantReturn:  M(50),
			wantBalance: M(9000),
		},
		{
			name:        "equity option return includes the principal",
			opt:         InvestmentOption{Name: "Acme", Type: Equity, RateOfReturn: decimal.NewFromFloat(0.10), MinInvestment: M(100), MaxInvestment: M(5000)},
			amount:      M(2000),
			wantReturn:  M(2200),
			wantBalance: M(8000),
		},
		{
			name:        "interest option return includes the principal",
			opt:         InvestmentOption{Name: "Acme", Type: Interest, RateOfReturn: decimal.NewFromFloat(0.05), MinInvestment: M(100), MaxInvestment: M(5000)},
			amount:      M(1000),
			wantReturn:  M(1050),
			wantBalance: M(9000),
		},
		{
			name:        "amount at the minimum bound",
			opt:         InvestmentOption{Name: "Acme", Type: Fixed, RateOfReturn: decimal.NewFromFloat(0.05), MinInvestment: M(100), MaxInvestment: M(5000)},
			amount:      M(100),
			wantReturn:  M(5),
			wantBalance: M(9900),
		},
		{
			name:        "amount at the maximum bound",
			opt:         InvestmentOption{Name: "Acme", Type: Fixed, RateOfReturn: decimal.NewFromFloat(0.05), MinInvestment: M(100), MaxInvestment: M(5000)},
			amount:      M(5000),
			wantReturn:  M(250),
			wantBalance: M(5000),
		},
		{
			name:        "amount at the full balance when it caps the maximum",
			opt:         InvestmentOption{Name: "Acme", Type: Equity, RateOfReturn: decimal.NewFromFloat(0.10), MinInvestment: M(100), MaxInvestment: M(50000)},
			amount:      M(10000),
			wantReturn:  M(11000),
			wantBalance: M(0),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user := newTestUser(t)

			record, err := user.Invest(tc.opt, tc.amount, "first try", testNow)
			if err != nil {
				t.Fatalf("Invest returned error: %v", err)
			}

			if !record.ReturnValue.Equal(tc.wantReturn) {
				t.Errorf("return value = %s, want %s", record.ReturnValue, tc.wantReturn)
			}
			if !user.Balance.Equal(tc.wantBalance) {
				t.Errorf("balance = %s, want %s", user.Balance, tc.wantBalance)
			}
			if len(user.Investments) != 1 {
				t.Fatalf("history has %d records, want 1", len(user.Investments))
			}
			if !user.Investments[0].Equal(record) {
				t.Error("appended record differs from returned record")
			}
			if record.User != user.Username {
				t.Errorf("record user = %q, want %q", record.User, user.Username)
			}
			if record.Date != "2026-09-01 10:30:00" {
				t.Errorf("record date = %q, want %q", record.Date, "2026-09-01 10:30:00")
			}
			if record.Notes != "first try" {
				t.Errorf("record notes = %q", record.Notes)
			}
			if !record.Option.Equal(tc.opt) {
				t.Error("record option is not a faithful snapshot")
			}
		})
	}
}

func TestUser_Invest_Rejections(t *testing.T) {
	testCases := []struct {
		name    string
		opt     InvestmentOption
		amount  Money
		wantMsg string
	}{
		{
			name:    "amount below the minimum",
			opt:     mustOptionArgs(Fixed, 0.05, M(100), M(5000)),
			amount:  M(50),
			wantMsg: "out of bounds",
		},
		{
			name:    "amount above the maximum",
			opt:     mustOptionArgs(Fixed, 0.05, M(100), M(5000)),
			amount:  M(5001),
			wantMsg: "out of bounds",
		},
		{
			name:    "amount above the balance",
			opt:     mustOptionArgs(Equity, 0.10, M(100), M(50000)),
			amount:  M(10001),
			wantMsg: "out of bounds",
		},
		{
			name:    "negative amount",
			opt:     mustOptionArgs(Fixed, 0.05, M(100), M(5000)),
			amount:  M(-100),
			wantMsg: "out of bounds",
		},
		{
			// A minimum above the balance makes the option univestable: the
			// ceiling min(max, balance) drops below the floor.
			name:    "minimum above the balance",
			opt:     mustOptionArgs(Fixed, 0.05, M(20000), M(50000)),
			amount:  M(20000),
			wantMsg: "out of bounds",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user := newTestUser(t)
			before := user.Balance

			_, err := user.Invest(tc.opt, tc.amount, "", testNow)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Invest error = %v, want *ValidationError", err)
			}
			if !strings.Contains(verr.Msg, tc.wantMsg) {
				t.Errorf("error message %q does not mention %q", verr.Msg, tc.wantMsg)
			}
			if !user.Balance.Equal(before) {
				t.Errorf("failed investment changed the balance: %s -> %s", before, user.Balance)
			}
			if len(user.Investments) != 0 {
				t.Errorf("failed investment appended to the history: %d records", len(user.Investments))
			}
		})
	}
}

// mustOptionArgs builds an option directly, bypassing listing validation,
// so rejection cases can use bounds a catalog would refuse.
func mustOptionArgs(typ OptionType, rate float64, min, max Money) InvestmentOption {
	return InvestmentOption{
		Name:          "Acme",
		Type:          typ,
		RateOfReturn:  decimal.NewFromFloat(rate),
		MinInvestment: min,
		MaxInvestment: max,
	}
}

func TestUser_Invest_SnapshotIsIndependent(t *testing.T) {
	user := newTestUser(t)
	opt := mustOption(t, Fixed, 0.05, M(100), M(5000))

	record, err := user.Invest(opt, M(1000), "", testNow)
	if err != nil {
		t.Fatalf("Invest: %v", err)
	}

	// Mutating the caller's copy must not reach into the history.
	opt.Name = "Globex"
	if record.Option.Name != "Acme" {
		t.Error("history record shares state with the caller's option")
	}
	if user.Investments[0].Option.Name != "Acme" {
		t.Error("appended record shares state with the caller's option")
	}
}

func TestUser_Invest_SequentialDebits(t *testing.T) {
	user := newTestUser(t)
	opt := mustOption(t, Fixed, 0.05, M(100), M(5000))

	for i, amount := range []Money{M(1000), M(2000), M(3000)} {
		if _, err := user.Invest(opt, amount, "", testNow); err != nil {
			t.Fatalf("investment %d: %v", i+1, err)
		}
	}

	if !user.Balance.Equal(M(4000)) {
		t.Errorf("balance after three investments = %s, want %s", user.Balance, M(4000))
	}
	if len(user.Investments) != 3 {
		t.Errorf("history has %d records, want 3", len(user.Investments))
	}
}

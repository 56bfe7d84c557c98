package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/investmind/investmind"
)

func newTestUser(t *testing.T) *investmind.User {
	t.Helper()
	u := investmind.NewUser("alice", 30, "pw", investmind.Profile{})
	opt, err := u.ListOption("Acme", investmind.Fixed, decimal.NewFromFloat(0.05), investmind.M(100), investmind.M(5000))
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	if _, err := u.Invest(opt, investmind.M(1000), "first", now); err != nil {
		t.Fatal(err)
	}
	return u
}

func TestInvestments(t *testing.T) {
	u := newTestUser(t)
	md := Investments(u)

	for _, want := range []string{
		"# Your Investments",
		"| 1 | Acme | Fixed | $1,000.00 | $50.00 | 2026-09-01 10:30:00 | first |",
		"**Remaining balance:** $9,000.00",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Investments output misses %q:\n%s", want, md)
		}
	}
}

func TestInvestments_Empty(t *testing.T) {
	u := investmind.NewUser("bob", 40, "pw", investmind.Profile{})
	md := Investments(u)

	if !strings.Contains(md, "No investments yet.") {
		t.Errorf("empty history not announced:\n%s", md)
	}
	if !strings.Contains(md, "$10,000.00") {
		t.Errorf("starting balance missing:\n%s", md)
	}
}

func TestOptions(t *testing.T) {
	u := newTestUser(t)
	if _, err := u.ListOption("Globex", investmind.Equity, decimal.NewFromFloat(0.10), investmind.M(50), investmind.M(2000)); err != nil {
		t.Fatal(err)
	}

	md := Options(u)
	for _, want := range []string{
		"# Investment Options",
		"| 1 | Acme | Fixed | x0.05 | $100.00 | $5,000.00 |",
		"| 2 | Globex | Equity | 10% | $50.00 | $2,000.00 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Options output misses %q:\n%s", want, md)
		}
	}
}

func TestSummary(t *testing.T) {
	u := newTestUser(t)
	md := Summary(u)

	for _, want := range []string{
		"# Welcome, alice!",
		"Age: 30",
		"**$9,000.00**",
		"Investments on record: 1",
		"Companies listed: 1",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Summary output misses %q:\n%s", want, md)
		}
	}
}

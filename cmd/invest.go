package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/investmind/investmind"
	"github.com/investmind/investmind/renderer"
)

type investCmd struct {
	username string
	password string
	option   string
	amount   float64
	notes    string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "invest part of the balance into a listed company" }
func (*investCmd) Usage() string {
	return `ivm invest -u <username> -p <password> -o <company> -a <amount> [-n <notes>]

  Executes an investment into one of the user's listed companies. The
  amount must lie within the option's investment bounds and within the
  current balance; the return value is computed once at execution time.

Usage Examples:
$ ivm invest -u alice -p s3cret -o Acme -a 1000 -n "first try"
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username of the account.")
	f.StringVar(&c.password, "p", "", "Password of the account.")
	f.StringVar(&c.option, "o", "", "Name of the listed company to invest in.")
	f.Float64Var(&c.amount, "a", 0, "Amount to invest.")
	f.StringVar(&c.notes, "n", "", "Free-text notes attached to the investment (optional).")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reg, user, status := authenticate(c.username, c.password)
	if status != subcommands.ExitSuccess {
		return status
	}
	logger, closer, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer.Close()

	opt := user.Option(c.option)
	if opt == nil {
		fmt.Fprintf(os.Stderr, "Error: company %q is not listed for %q.\n", c.option, user.Username)
		return subcommands.ExitUsageError
	}

	record, err := user.Invest(*opt, investmind.M(c.amount), c.notes, time.Now())
	if err != nil {
		logger.Error().Str("username", user.Username).Str("option", opt.Name).Err(err).Msg("investment rejected")
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	if err := SaveRegistry(reg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	logger.Info().
		Str("username", user.Username).
		Str("option", opt.Name).
		Str("amount", record.Amount.String()).
		Str("return", record.ReturnValue.String()).
		Msg("investment executed")
	fmt.Printf("Invested %s in %s, projected return %s.\n", record.Amount, opt.Name, record.ReturnValue)
	printMarkdown(renderer.Investments(user))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/investmind/investmind"
	"github.com/investmind/investmind/renderer"
)

type listCmd struct {
	username string
	password string
	name     string
	typ      string
	rate     float64
	min      float64
	max      float64
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list a company as a new investment option" }
func (*listCmd) Usage() string {
	return `ivm list -u <username> -p <password> -name <company> -type <interest|fixed|equity> -rate <rate> -min <amount> -max <amount>

  Appends a company to the user's personal investment catalog. For
  interest and equity options the rate is a decimal fraction (0.05 for
  5%); for fixed options it behaves as a flat multiplier of the invested
  amount. Options are immutable once listed.

Usage Examples:
$ ivm list -u alice -p s3cret -name Acme -type fixed -rate 0.05 -min 100 -max 5000
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username of the account.")
	f.StringVar(&c.password, "p", "", "Password of the account.")
	f.StringVar(&c.name, "name", "", "Name of the company to list.")
	f.StringVar(&c.typ, "type", "", "Option type: interest, fixed, or equity.")
	f.Float64Var(&c.rate, "rate", 0, "Rate of return.")
	f.Float64Var(&c.min, "min", 0, "Minimum investment amount.")
	f.Float64Var(&c.max, "max", 0, "Maximum investment amount.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	typ, err := investmind.ParseOptionType(c.typ)
	if err != nil {
		logger.Error().Str("option_type", c.typ).Msg("invalid investment type")
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	opt, err := user.ListOption(c.name, typ, decimal.NewFromFloat(c.rate), investmind.M(c.min), investmind.M(c.max))
	if err != nil {
		logger.Error().Str("username", user.Username).Err(err).Msg("listing rejected")
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	if err := SaveRegistry(reg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	logger.Info().Str("username", user.Username).Str("option", opt.Name).Msg("company listed")
	fmt.Printf("%s has been listed as an investment option.\n", opt.Name)
	printMarkdown(renderer.Options(user))
	return subcommands.ExitSuccess
}

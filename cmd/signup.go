package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/investmind/investmind"
)

type signupCmd struct {
	username   string
	age        int
	password   string
	contact    string
	goals      string
	risk       string
	experience string
}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "create a new account with the default starting balance" }
func (*signupCmd) Usage() string {
	return `ivm signup -u <username> -age <age> -p <password> [-contact <info>] [-goals <goals>] [-risk <tolerance>] [-experience <level>]

  Creates a new account. The password is stored as a digest, never in
  plaintext. Signups below age 15 and duplicate usernames are rejected.

Usage Examples:
$ ivm signup -u alice -age 30 -p s3cret -goals "retire early"
`
}

func (c *signupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username of the new account.")
	f.IntVar(&c.age, "age", 0, "Age of the account holder (must be at least 15).")
	f.StringVar(&c.password, "p", "", "Password of the new account.")
	f.StringVar(&c.contact, "contact", "", "Contact information (optional).")
	f.StringVar(&c.goals, "goals", "", "Investment goals (optional).")
	f.StringVar(&c.risk, "risk", "", "Risk tolerance (optional).")
	f.StringVar(&c.experience, "experience", "", "Investment experience (optional).")
}

func (c *signupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reg, err := OpenRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	logger, closer, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer.Close()

	user, err := reg.Create(c.username, c.age, c.password, investmind.Profile{
		ContactInfo:          c.contact,
		InvestmentGoals:      c.goals,
		RiskTolerance:        c.risk,
		InvestmentExperience: c.experience,
	})
	if err != nil {
		logger.Error().Str("username", c.username).Err(err).Msg("signup rejected")
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	if err := SaveRegistry(reg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	logger.Info().Str("username", user.Username).Msg("account created")
	fmt.Printf("Account %q created with a starting balance of %s.\n", user.Username, user.Balance)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/investmind/investmind/renderer"
)

type investmentsCmd struct {
	username string
	password string
}

func (*investmentsCmd) Name() string     { return "investments" }
func (*investmentsCmd) Synopsis() string { return "display the chronological investment history" }
func (*investmentsCmd) Usage() string {
	return `ivm investments -u <username> -p <password>

  Lists every investment on record, in the order they were executed, with
  the projected return captured at execution time and the remaining
  balance.
`
}

func (c *investmentsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username of the account.")
	f.StringVar(&c.password, "p", "", "Password of the account.")
}

func (c *investmentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, user, status := authenticate(c.username, c.password)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.Investments(user))
	return subcommands.ExitSuccess
}

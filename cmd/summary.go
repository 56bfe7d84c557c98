package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/investmind/investmind/renderer"
)

type summaryCmd struct {
	username string
	password string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the account summary" }
func (*summaryCmd) Usage() string {
	return `ivm summary -u <username> -p <password>

  Shows the current balance and the size of the investment history and
  catalog.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username of the account.")
	f.StringVar(&c.password, "p", "", "Password of the account.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, user, status := authenticate(c.username, c.password)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.Summary(user))
	return subcommands.ExitSuccess
}

package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/investmind/investmind"
	"github.com/investmind/investmind/docs"
	"github.com/investmind/investmind/renderer"
)

type sessionCmd struct{}

func (*sessionCmd) Name() string { return "session" }
func (*sessionCmd) Synopsis() string {
	return "start an interactive session: log in or sign up, then use the main menu"
}
func (*sessionCmd) Usage() string {
	return `ivm session

  Starts the interactive tracker. After logging in (or signing up) the main
  menu offers: invest, educational resources, list a company, view
  investments, exit. The user store is written back on exit.
`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {}

func (c *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	s := &session{
		in:   bufio.NewReader(os.Stdin),
		out:  os.Stdout,
		reg:  reg,
		log:  logger,
		save: func() error { return SaveRegistry(reg) },
		now:  time.Now,
	}
	if err := s.run(); err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(os.Stderr, "\nInput closed, session ended.")
			return subcommands.ExitFailure
		}
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// session drives the interactive menu. All retry-on-invalid-input loops
// live here: the core returns typed errors and never re-prompts.
type session struct {
	in   *bufio.Reader
	out  io.Writer
	reg  *investmind.Registry
	log  zerolog.Logger
	save func() error
	now  func() time.Time
}

func (s *session) run() error {
	user, err := s.loginOrSignup()
	if err != nil {
		return err
	}
	return s.mainMenu(user)
}

func (s *session) print(md string) {
	printMarkdownTo(s.out, md)
}

// prompt prints a label and reads one trimmed line of input.
func (s *session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt keeps asking until the answer is a number.
func (s *session) promptInt(label string) (int, error) {
	for {
		line, err := s.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a number.")
			continue
		}
		return n, nil
	}
}

// promptDecimal keeps asking until the answer is a non-negative number.
func (s *session) promptDecimal(label string) (decimal.Decimal, error) {
	for {
		line, err := s.prompt(label)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(line)
		if err != nil {
			s.log.Error().Str("input", line).Msg("invalid numeric input")
			fmt.Fprintln(s.out, "Invalid input. Please enter a valid number.")
			continue
		}
		if d.IsNegative() {
			s.log.Error().Msg("negative value entered")
			fmt.Fprintln(s.out, "Value cannot be negative.")
			continue
		}
		return d, nil
	}
}

func (s *session) loginOrSignup() (*investmind.User, error) {
	fmt.Fprintln(s.out, "Welcome to InvestMind!")
	for {
		fmt.Fprintln(s.out, "1. Login")
		fmt.Fprintln(s.out, "2. Sign Up")
		choice, err := s.prompt("Choose an option (1-2): ")
		if err != nil {
			return nil, err
		}
		switch choice {
		case "1":
			return s.login()
		case "2":
			return s.signup()
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *session) login() (*investmind.User, error) {
	for {
		username, err := s.prompt("Enter your username: ")
		if err != nil {
			return nil, err
		}
		password, err := s.prompt("Enter your password: ")
		if err != nil {
			return nil, err
		}

		user, err := s.reg.Authenticate(username, password)
		if err != nil {
			s.log.Error().Str("username", username).Msg("login failed")
			fmt.Fprintln(s.out, "Invalid username or password.")
			continue
		}
		s.log.Info().Str("username", username).Msg("login succeeded")
		return user, nil
	}
}

func (s *session) signup() (*investmind.User, error) {
	for {
		username, err := s.prompt("Enter a username: ")
		if err != nil {
			return nil, err
		}
		age, err := s.promptInt("Enter your age: ")
		if err != nil {
			return nil, err
		}
		password, err := s.prompt("Create a password: ")
		if err != nil {
			return nil, err
		}

		var profile investmind.Profile
		if profile.ContactInfo, err = s.prompt("Enter your contact information: "); err != nil {
			return nil, err
		}
		if profile.InvestmentGoals, err = s.prompt("Enter your investment goals: "); err != nil {
			return nil, err
		}
		if profile.RiskTolerance, err = s.prompt("Enter your risk tolerance: "); err != nil {
			return nil, err
		}
		if profile.InvestmentExperience, err = s.prompt("Enter your investment experience: "); err != nil {
			return nil, err
		}

		user, err := s.reg.Create(username, age, password, profile)
		if err != nil {
			var verr *investmind.ValidationError
			if errors.As(err, &verr) {
				s.log.Error().Str("username", username).Str("field", verr.Field).Msg("signup rejected")
				fmt.Fprintf(s.out, "Cannot sign up: %v\n", err)
				continue
			}
			return nil, err
		}
		if err := s.save(); err != nil {
			return nil, err
		}
		s.log.Info().Str("username", username).Msg("account created")
		fmt.Fprintln(s.out, "Account created successfully!")
		return user, nil
	}
}

func (s *session) mainMenu(user *investmind.User) error {
	for {
		s.print(renderer.Summary(user))
		fmt.Fprintln(s.out, "Main Menu:")
		fmt.Fprintln(s.out, "1. Invest")
		fmt.Fprintln(s.out, "2. Educational Resources")
		fmt.Fprintln(s.out, "3. List a Company for Investment")
		fmt.Fprintln(s.out, "4. View Investments")
		fmt.Fprintln(s.out, "5. Exit")

		choice, err := s.promptInt("Choose an option (1-5): ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = s.invest(user)
		case 2:
			err = s.education()
		case 3:
			err = s.listCompany(user)
		case 4:
			s.print(renderer.Investments(user))
		case 5:
			if err := s.save(); err != nil {
				return err
			}
			fmt.Fprintln(s.out, "Exiting the tracker. Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter a number between 1 and 5.")
		}
		if err != nil {
			return err
		}
	}
}

func (s *session) invest(user *investmind.User) error {
	if len(user.InvestmentOptions) == 0 {
		fmt.Fprintln(s.out, "No companies listed yet. List a company first.")
		return nil
	}
	s.print(renderer.Options(user))

	var opt investmind.InvestmentOption
	for {
		n, err := s.promptInt(fmt.Sprintf("Choose an investment option (1-%d): ", len(user.InvestmentOptions)))
		if err != nil {
			return err
		}
		if n < 1 || n > len(user.InvestmentOptions) {
			fmt.Fprintf(s.out, "Invalid choice. Please enter a number between 1 and %d.\n", len(user.InvestmentOptions))
			continue
		}
		opt = user.InvestmentOptions[n-1]
		break
	}

	ceiling := opt.MaxInvestment.Min(user.Balance)
	fmt.Fprintf(s.out, "\nSelected Option: %s (%s)\n", opt.Name, opt.Type)
	fmt.Fprintf(s.out, "Minimum Investment: %s\n", opt.MinInvestment)
	fmt.Fprintf(s.out, "Maximum Investment: %s\n", ceiling)

	for {
		d, err := s.promptDecimal(fmt.Sprintf("Enter the amount you want to invest (between %s and %s): ", opt.MinInvestment, ceiling))
		if err != nil {
			return err
		}
		amount := investmind.M(d)

		confirm, err := s.prompt(fmt.Sprintf("Confirm investment of %s in %s? (yes/no): ", amount, opt.Name))
		if err != nil {
			return err
		}
		if !strings.EqualFold(confirm, "yes") {
			fmt.Fprintln(s.out, "Investment cancelled.")
			return nil
		}
		notes, err := s.prompt("Enter any notes for this investment (optional): ")
		if err != nil {
			return err
		}

		record, err := user.Invest(opt, amount, notes, s.now())
		if err != nil {
			s.log.Error().Str("username", user.Username).Str("option", opt.Name).Err(err).Msg("investment rejected")
			fmt.Fprintln(s.out, err)
			continue
		}

		s.log.Info().
			Str("username", user.Username).
			Str("option", opt.Name).
			Str("amount", record.Amount.String()).
			Str("return", record.ReturnValue.String()).
			Msg("investment executed")
		fmt.Fprintf(s.out, "\nInvestment of %s in %s has been added to your account.\n", record.Amount, opt.Name)
		s.print(renderer.Investments(user))
		return nil
	}
}

func (s *session) education() error {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Educational Resources:")
	for i, topic := range topics {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, topic)
	}

	n, err := s.promptInt(fmt.Sprintf("Choose a topic to learn about (1-%d): ", len(topics)))
	if err != nil {
		return err
	}
	if n < 1 || n > len(topics) {
		fmt.Fprintf(s.out, "Invalid choice. Please enter a number between 1 and %d.\n", len(topics))
		return nil
	}

	content, err := docs.GetTopic(topics[n-1])
	if err != nil {
		return err
	}
	s.print(content)
	return nil
}

func (s *session) listCompany(user *investmind.User) error {
	name, err := s.prompt("Enter the company name: ")
	if err != nil {
		return err
	}
	typeStr, err := s.prompt("Enter the investment type (interest, fixed, equity): ")
	if err != nil {
		return err
	}
	typ, err := investmind.ParseOptionType(strings.ToLower(typeStr))
	if err != nil {
		s.log.Error().Str("option_type", typeStr).Msg("invalid investment type")
		fmt.Fprintln(s.out, "Invalid investment type.")
		return nil
	}

	var rateLabel string
	switch typ {
	case investmind.Interest:
		rateLabel = "Enter the annual interest rate (as a decimal, e.g., 0.05 for 5%): "
	case investmind.Fixed:
		rateLabel = "Enter the fixed return multiplier: "
	case investmind.Equity:
		rateLabel = "Enter the expected equity return (as a decimal, e.g., 0.10 for 10%): "
	}
	rate, err := s.promptDecimal(rateLabel)
	if err != nil {
		return err
	}
	min, err := s.promptDecimal("Enter the minimum investment amount: ")
	if err != nil {
		return err
	}
	max, err := s.promptDecimal("Enter the maximum investment amount: ")
	if err != nil {
		return err
	}

	opt, err := user.ListOption(name, typ, rate, investmind.M(min), investmind.M(max))
	if err != nil {
		s.log.Error().Str("username", user.Username).Err(err).Msg("listing rejected")
		fmt.Fprintln(s.out, err)
		return nil
	}

	s.log.Info().Str("username", user.Username).Str("option", opt.Name).Msg("company listed")
	fmt.Fprintf(s.out, "%s has been listed as an investment option.\n", opt.Name)
	return nil
}

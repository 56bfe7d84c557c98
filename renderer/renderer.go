// Package renderer turns tracker state into markdown suitable for
// terminal display. The actual ANSI rendering is left to the caller.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"

	"github.com/investmind/investmind"
)

//go:embed templates/*.md
var templates embed.FS

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, "templates/"+file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// percent formats a fractional rate for display, e.g. 0.05 -> "5%".
func percent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String() + "%"
}

// capitalize upper-cases the first rune of an option type for display.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

type investmentRow struct {
	Index  int
	Name   string
	Type   string
	Amount string
	Return string
	Date   string
	Notes  string
}

type investmentsView struct {
	Rows    []investmentRow
	Balance string
}

// Investments renders the user's chronological investment history followed
// by the remaining balance.
func Investments(u *investmind.User) string {
	view := investmentsView{Balance: u.Balance.String()}
	for i, inv := range u.Investments {
		view.Rows = append(view.Rows, investmentRow{
			Index:  i + 1,
			Name:   inv.Option.Name,
			Type:   capitalize(inv.Option.Type.String()),
			Amount: inv.Amount.String(),
			Return: inv.ReturnValue.String(),
			Date:   inv.Date,
			Notes:  inv.Notes,
		})
	}
	return renderTemplate("investments", "investments.md", nil, view)
}

type optionRow struct {
	Index int
	Name  string
	Type  string
	Rate  string
	Min   string
	Max   string
}

type optionsView struct {
	Rows []optionRow
}

// Options renders the user's catalog of listed companies. Fixed options
// show their rate as a flat multiplier, the others as a percentage.
func Options(u *investmind.User) string {
	var view optionsView
	for i, opt := range u.InvestmentOptions {
		rate := percent(opt.RateOfReturn)
		if opt.Type == investmind.Fixed {
			rate = "x" + opt.RateOfReturn.String()
		}
		view.Rows = append(view.Rows, optionRow{
			Index: i + 1,
			Name:  opt.Name,
			Type:  capitalize(opt.Type.String()),
			Rate:  rate,
			Min:   opt.MinInvestment.String(),
			Max:   opt.MaxInvestment.String(),
		})
	}
	return renderTemplate("options", "options.md", nil, view)
}

type summaryView struct {
	Username    string
	Age         int
	Balance     string
	Investments int
	Options     int
}

// Summary renders the account header shown at the top of a session.
func Summary(u *investmind.User) string {
	return renderTemplate("summary", "summary.md", nil, summaryView{
		Username:    u.Username,
		Age:         u.Age,
		Balance:     u.Balance.String(),
		Investments: len(u.Investments),
		Options:     len(u.InvestmentOptions),
	})
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown to the terminal with ANSI styling.
func printMarkdown(md string) {
	printMarkdownTo(os.Stdout, md)
}

func printMarkdownTo(w io.Writer, md string) {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		// fall back to the raw markdown
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) { fprintMarkdown(os.Stdout, md) }

// fprintMarkdown renders markdown to w, or prints it raw if it cannot be rendered.
func fprintMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		log.Printf("cannot create markdown renderer: %v", err)
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}

// Command apicheck exercises a running sentiment API and prints the results.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gookit/color"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8000", "Base URL of the sentiment API")
	timeout := flag.Duration("timeout", 30*time.Second, "Per-request timeout")
	noColor := flag.Bool("no-color", false, "Disable coloured output")
	flag.Parse()

	if *noColor {
		color.Disable()
	}

	c := NewChecker(*baseURL, &http.Client{Timeout: *timeout})
	if err := run(context.Background(), c, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Render("❌ Error: "+err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, c *Checker, w io.Writer) error {
	fmt.Fprintln(w, color.New(color.Bold, color.FgCyan).Render("🧪 Sentiment Analysis API Tests"))

	failed := 0
	for _, step := range c.Steps() {
		fmt.Fprintf(w, "\n🔍 Testing %s...\n", step.Name)

		rows, err := step.Run(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", step.Name, err)
		}
		renderRows(w, rows)

		for _, r := range rows {
			if !r.OK {
				failed++
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}

	fmt.Fprintln(w, "\n"+color.Green.Render("✅ All tests completed!"))
	return nil
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang-stock-analyzer/internal/analyzer/dto"
	"golang-stock-analyzer/internal/analyzer/service"
	"golang-stock-analyzer/pkg/logger"

	"github.com/labstack/gommon/color"
)

const (
	prompt    = "Enter your stock-related query (or 'exit' to quit): "
	exitWord  = "exit"
	separator = "------------------------------------------------------------"
)

// Runner is the interactive console front end of the analyzer.
type Runner struct {
	analyzer service.AnalyzerService
	in       io.Reader
	out      io.Writer
	colorer  *color.Color
	logger   *logger.Logger
}

// NewRunner creates a Runner reading queries from in and writing results to out.
// Colors are enabled only when stdout is a terminal.
func NewRunner(analyzer service.AnalyzerService, in io.Reader, out io.Writer, log *logger.Logger) *Runner {
	return &Runner{
		analyzer: analyzer,
		in:       in,
		out:      out,
		colorer:  color.New(),
		logger:   log,
	}
}

// DisableColor turns off ANSI colors, e.g. when out is not a terminal.
func (r *Runner) DisableColor() {
	r.colorer.Disable()
}

// Run reads one query per line until "exit", EOF or ctx is done.
// Cancelling ctx returns immediately, even while waiting for input.
func (r *Runner) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, r.colorer.Green("Stock Analysis CLI Mode"))

	stop := make(chan struct{})
	defer close(stop)
	lines, readErr := r.readLines(stop)

	for {
		fmt.Fprint(r.out, r.colorer.Blue(prompt))

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(r.out)
				return <-readErr
			}
			line = l
		}
		if ctx.Err() != nil {
			return nil
		}

		query := strings.TrimSpace(line)
		if strings.EqualFold(query, exitWord) {
			return nil
		}

		r.RunOnce(ctx, query)
		fmt.Fprintf(r.out, "\n%s\n\n", separator)
	}
}

// readLines scans r.in on its own goroutine so a blocked read never holds up Run.
// The scan error, possibly nil, is sent on the second channel before lines is closed.
func (r *Runner) readLines(stop <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				readErr <- nil
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}

// RunOnce analyzes a single query and renders the outcome. It reports whether the analysis succeeded.
func (r *Runner) RunOnce(ctx context.Context, query string) bool {
	outcome := r.analyzer.Analyze(ctx, query)
	if !outcome.Success {
		r.logger.DebugContext(ctx, "Analysis failed", logger.StringField("kind", string(outcome.Kind)))
	}
	r.Render(outcome)
	return outcome.Success
}

// Render writes the outcome in the console layout.
func (r *Runner) Render(outcome dto.PipelineOutcome) {
	if !outcome.Success || outcome.Data == nil {
		fmt.Fprintln(r.out, r.colorer.Red(outcome.Error))
		return
	}

	data := outcome.Data
	sign := ""
	if data.Change >= 0 {
		sign = "+"
	}
	price := fmt.Sprintf("$%s / ₹%s", formatAmount(data.Price), formatAmount(data.PriceINR))
	change := fmt.Sprintf("%s$%s / %s₹%s (%.2f%%)", sign, formatAmount(data.Change), sign, formatAmount(data.ChangeINR), data.Percent)

	fmt.Fprintln(r.out, r.colorer.Cyan(fmt.Sprintf("Identified Ticker: %s for Company: %s", data.Ticker, data.Company)))
	fmt.Fprintln(r.out, r.colorer.Green("Current Price: "+price))
	fmt.Fprintln(r.out, r.colorer.Yellow("Price Change: "+change))
	fmt.Fprintln(r.out, r.colorer.Magenta("Ticker Analysis:\n"+data.Analysis))

	fmt.Fprintf(r.out, "\nFinal Summary for %s (%s):\n", data.Company, data.Ticker)
	fmt.Fprintf(r.out, "Price: %s\n", price)
	fmt.Fprintf(r.out, "Change: %s\n", change)
	fmt.Fprintf(r.out, "News articles: %d\n", data.NewsArticles)
	fmt.Fprintf(r.out, "Analysis:\n%s\n", data.Analysis)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

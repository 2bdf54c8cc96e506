// Command cardcheck shows the network of a card number as typed and asks a
// card validator service whether the checksum holds.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/AlenaMolokova/cardvalidator/internal/card"
	"github.com/AlenaMolokova/cardvalidator/internal/client"
	"github.com/AlenaMolokova/cardvalidator/internal/constants"
	"github.com/AlenaMolokova/cardvalidator/internal/models"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitError   = 2
)

type validator interface {
	Validate(ctx context.Context, cardNumber string) (*models.ValidationResponse, error)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, func(url string) validator {
		return client.NewClient(url)
	}))
}

func run(args []string, stdout, stderr io.Writer, newValidator func(string) validator) int {
	fs := flag.NewFlagSet("cardcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	server := fs.String("s", "http://localhost"+constants.DefaultRunAddr, "validator service URL")
	retry := fs.Bool("retry", false, "retry once when the service is unreachable")
	timeout := fs.Duration("t", 15*time.Second, "overall timeout")
	offline := fs.Bool("offline", false, "check the number locally without calling the service")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	raw := strings.Join(fs.Args(), " ")
	if raw == "" {
		fmt.Fprintln(stderr, "usage: cardcheck [-s url] [-retry] [-offline] <card number>")
		return exitError
	}

	digits := card.Normalize(raw)
	fmt.Fprintf(stdout, "Card:    %s\n", card.Format(digits))
	if network := card.Classify(digits); network != card.Unknown {
		fmt.Fprintf(stdout, "Network: %s card\n", network)
	}

	if len(digits) < constants.MinCardLength {
		fmt.Fprintf(stdout, "Enter at least %d digits to validate\n", constants.MinCardLength)
		return exitInvalid
	}

	if *offline {
		// only typed separators are dropped here; any other symbol fails the check
		return report(stdout, card.IsValidInput(raw))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	v := newValidator(*server)
	resp, err := v.Validate(ctx, digits)
	if err != nil && *retry && client.IsRetryable(err) {
		fmt.Fprintf(stderr, "%v, trying again\n", err)
		resp, err = v.Validate(ctx, digits)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	return report(stdout, resp.IsValid)
}

func report(stdout io.Writer, valid bool) int {
	if valid {
		fmt.Fprintln(stdout, "✓ Valid card number")
		return exitValid
	}
	fmt.Fprintln(stdout, "✗ Invalid card number")
	return exitInvalid
}

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ecoparking/shared/constant"
	"ecoparking/shared/failure"

	"github.com/shopspring/decimal"
)

// ErrInputClosed ends the session when the operator's input runs out.
var ErrInputClosed = errors.New("console input closed")

type prompt struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompt(in io.Reader, out io.Writer) *prompt {
	return &prompt{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *prompt) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *prompt) println(args ...any) {
	_, _ = fmt.Fprintln(p.out, args...)
}

// menu prints a numbered list of options under a title.
func (p *prompt) menu(title string, options ...string) {
	p.printf("\n=== %s ===\n", title)

	for i, option := range options {
		p.printf("%d. %s\n", i+1, option)
	}
}

func (p *prompt) line(label string) (string, error) {
	p.printf("%s: ", label)

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return constant.Empty, fmt.Errorf("failed to read console input: %w", err)
		}

		return constant.Empty, ErrInputClosed
	}

	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *prompt) integer(label string) (int, error) {
	text, err := p.line(label)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, failure.BadRequestFromString(fmt.Sprintf("%q is not a whole number", text)) // nolint:wrapcheck
	}

	return value, nil
}

func (p *prompt) id(label string) (int64, error) {
	value, err := p.integer(label)
	if err != nil {
		return 0, err
	}

	return int64(value), nil
}

func (p *prompt) decimal(label string) (decimal.Decimal, error) {
	text, err := p.line(label)
	if err != nil {
		return decimal.Zero, err
	}

	value, err := decimal.NewFromString(strings.ReplaceAll(text, ",", "."))
	if err != nil {
		return decimal.Zero, failure.BadRequestFromString(fmt.Sprintf("%q is not a number", text)) // nolint:wrapcheck
	}

	return value, nil
}

// confirm accepts y/yes/s/si, anything else is a no.
func (p *prompt) confirm(label string) (bool, error) {
	text, err := p.line(label + " (y/n)")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(text) {
	case "y", "yes", "s", "si", "sí":
		return true, nil
	default:
		return false, nil
	}
}

// choice reads a menu option. Anything outside 1..n is reported and yields 0.
func (p *prompt) choice(n int) (int, error) {
	text, err := p.line("Select an option")
	if err != nil {
		return 0, err
	}

	option, convErr := strconv.Atoi(text)
	if convErr != nil || option < 1 || option > n {
		p.println("Invalid option, try again.")

		return 0, nil
	}

	return option, nil
}

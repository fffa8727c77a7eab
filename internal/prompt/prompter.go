// Package prompt provides validating line-input primitives shared by the
// menu CLI and the terminal browser dialogs.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Prompter asks questions on w and reads answers line by line from r.
// Every method blocks until a line is available and returns io.EOF once the
// input is exhausted.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Prompter over r and w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

// Printf writes to the prompter's output.
func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line to the prompter's output.
func (p *Prompter) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

func (p *Prompter) readLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.in.Text(), "\r"), nil
}

// Text returns the answer with surrounding whitespace removed.
func (p *Prompter) Text(label string) (string, error) {
	line, err := p.readLine(label)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Int asks until the answer parses as a whole number. With allowEmpty a blank
// answer returns ok == false; otherwise it is asked again.
func (p *Prompter) Int(label string, allowEmpty bool) (n int, ok bool, err error) {
	for {
		line, err := p.readLine(label)
		if err != nil {
			return 0, false, err
		}
		n, perr := ParseInt(line)
		switch {
		case perr == nil:
			return n, true, nil
		case errors.Is(perr, ErrEmpty) && allowEmpty:
			return 0, false, nil
		case errors.Is(perr, ErrEmpty):
			fmt.Fprintln(p.out, "A value is required.")
		default:
			fmt.Fprintf(p.out, "Invalid input: %v. Please enter a whole number.\n", perr)
		}
	}
}

// Decimal asks until the answer parses as a number. Blank answers follow the
// same rule as Int.
func (p *Prompter) Decimal(label string, allowEmpty bool) (d decimal.Decimal, ok bool, err error) {
	for {
		line, err := p.readLine(label)
		if err != nil {
			return decimal.Zero, false, err
		}
		d, perr := ParseDecimal(line)
		switch {
		case perr == nil:
			return d, true, nil
		case errors.Is(perr, ErrEmpty) && allowEmpty:
			return decimal.Zero, false, nil
		case errors.Is(perr, ErrEmpty):
			fmt.Fprintln(p.out, "A value is required.")
		default:
			fmt.Fprintf(p.out, "Invalid input: %v. Please enter a number.\n", perr)
		}
	}
}

// YesNo asks a yes/no question; anything but an affirmative answer is no.
func (p *Prompter) YesNo(label string) (bool, error) {
	line, err := p.readLine(label)
	if err != nil {
		return false, err
	}
	return ParseYesNo(line), nil
}

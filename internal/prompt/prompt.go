// Package prompt implements line-based interactive input with validation
// retry loops. Invalid input never escapes: each reader re-issues its prompt
// until the line parses and satisfies the configured minimum.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Prompts issued by the interactive flow, in order. The trailing spaces are
// part of the prompt; input is read on the same line.
const (
	PromptPrincipal = "Enter Principal Amount (e.g., 10000.00): "
	PromptRate      = "Enter Annual Interest Rate (e.g., 5.25 for 5.25%): "
	PromptPeriods   = "Enter Number of Periods (Years): "
)

// Retry messages. Parse failures and range violations get distinct fixed
// wording but identical handling: print and re-prompt.
const (
	MsgInvalidDecimal  = "Invalid amount. Please enter a number (e.g., 10000.00)."
	MsgNegativeDecimal = "Amount cannot be negative. Please try again."
	MsgInvalidInteger  = "Invalid input. Please enter a whole number (0 or more)."
)

// Reader prompts on out and reads line-based replies from in.
type Reader struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewReader creates a Reader over the given streams. Prompts and retry
// messages both go to out.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// readLine prints the prompt and blocks for one line. The only error is an
// exhausted input stream; interactive terminals never hit it.
func (r *Reader) readLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.in.Text()), nil
}

// Decimal prompts until the input parses as an exact decimal satisfying the
// optional minimum. Comma thousands separators are stripped before parsing,
// so "1,000.00" is accepted. Scientific notation, empty lines, and
// non-numeric text are all rejected the same way.
func (r *Reader) Decimal(prompt string, min *decimal.Decimal) (decimal.Decimal, error) {
	for {
		line, err := r.readLine(prompt)
		if err != nil {
			return decimal.Decimal{}, err
		}
		cleaned := strings.ReplaceAll(line, ",", "")
		if cleaned == "" || strings.ContainsAny(cleaned, "eE") {
			fmt.Fprintln(r.out, MsgInvalidDecimal)
			continue
		}
		d, perr := decimal.NewFromString(cleaned)
		if perr != nil {
			fmt.Fprintln(r.out, MsgInvalidDecimal)
			continue
		}
		if min != nil && d.LessThan(*min) {
			fmt.Fprintln(r.out, MsgNegativeDecimal)
			continue
		}
		return d, nil
	}
}

// Int prompts until the input parses directly as a whole number >= min.
// Fractional input such as "2.5" is a parse failure, not a rounding case.
func (r *Reader) Int(prompt string, min int) (int, error) {
	for {
		line, err := r.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, perr := strconv.Atoi(line)
		if perr != nil || n < min {
			fmt.Fprintln(r.out, MsgInvalidInteger)
			continue
		}
		return n, nil
	}
}

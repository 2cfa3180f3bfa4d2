package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

const dateLayout = "2006-01-02"

// prompter reads and validates line-oriented input. Invalid input is
// reported and the question is asked again rather than aborting the flow.
type prompter struct {
	in     *bufio.Scanner
	out    io.Writer
	termFD int // file descriptor for no-echo reads, -1 when in is not a terminal
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{in: bufio.NewScanner(in), out: out, termFD: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.termFD = int(f.Fd())
	}
	return p
}

func (p *prompter) line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) nonEmpty(label string) (string, error) {
	for {
		s, err := p.line(label)
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		fmt.Fprintln(p.out, "A value is required.")
	}
}

func (p *prompter) int32Value(label string) (int32, error) {
	for {
		s, err := p.line(label)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.ParseInt(s, 10, 32)
		if convErr == nil && n > 0 {
			return int32(n), nil
		}
		fmt.Fprintln(p.out, "Enter a positive number.")
	}
}

// optionalID reads a positive id, or zero when the line is left blank.
func (p *prompter) optionalID(label string) (int32, error) {
	for {
		s, err := p.line(label)
		if err != nil {
			return 0, err
		}
		if s == "" {
			return 0, nil
		}
		n, convErr := strconv.ParseInt(s, 10, 32)
		if convErr == nil && n > 0 {
			return int32(n), nil
		}
		fmt.Fprintln(p.out, "Enter a positive number or leave blank.")
	}
}

// money reads a decimal amount like 125.50 and returns cents.
func (p *prompter) money(label string) (int64, error) {
	for {
		s, err := p.line(label)
		if err != nil {
			return 0, err
		}
		cents, convErr := parseMoney(s)
		if convErr == nil {
			return cents, nil
		}
		fmt.Fprintln(p.out, "Enter an amount like 125.50.")
	}
}

func (p *prompter) date(label string) (time.Time, error) {
	for {
		s, err := p.line(label + " (YYYY-MM-DD)")
		if err != nil {
			return time.Time{}, err
		}
		t, convErr := time.Parse(dateLayout, s)
		if convErr == nil {
			return t, nil
		}
		fmt.Fprintln(p.out, "Enter a date like 2026-03-15.")
	}
}

// password reads without echo when the injected input is a terminal, falling
// back to a plain line read otherwise so piped input still works.
func (p *prompter) password(label string) (string, error) {
	if p.termFD >= 0 {
		fmt.Fprintf(p.out, "%s: ", label)
		raw, err := term.ReadPassword(p.termFD)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(raw)), nil
	}
	return p.line(label)
}

func parseMoney(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	whole, frac, _ := strings.Cut(s, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	cents := units * 100
	if frac != "" {
		if len(frac) > 2 {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		for len(frac) < 2 {
			frac += "0"
		}
		c, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		cents += c
	}
	return cents, nil
}

func formatMoney(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aalvaropc/phonebook/internal/ports"
)

// Prompter asks questions on w and reads answers line by line from r.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

var _ ports.Prompter = (*Prompter)(nil)

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

// Ask writes prompt without a newline and returns the next input line with
// its line terminator removed. Exhausted input yields io.EOF.
func (p *Prompter) Ask(prompt string) (string, error) {
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", err
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(p.in.Text(), "\r"), nil
}

func (p *Prompter) Say(line string) error {
	_, err := fmt.Fprintln(p.out, line)
	return err
}

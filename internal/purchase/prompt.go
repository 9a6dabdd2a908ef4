package purchase

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"
)

// StdinConfirmer asks a y/N question on a terminal.
type StdinConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdinConfirmer reads answers from in and writes prompts to out.
func NewStdinConfirmer(in io.Reader, out io.Writer) *StdinConfirmer {
	return &StdinConfirmer{in: bufio.NewReader(in), out: out}
}

// Confirm implements Confirmer. Only "y" or "yes" confirms; end of input
// counts as no.
func (s *StdinConfirmer) Confirm(message string) bool {
	color.New(color.FgYellow, color.Bold).Fprint(s.out, message)
	color.New(color.FgWhite).Fprint(s.out, " [y/N]: ")

	answer, err := s.in.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

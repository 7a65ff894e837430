package display

import (
	"fmt"
	"io"

	"github.com/backmassage/phonesub/internal/term"
)

const banner = `===========================================
  Phoneme Replacement - Speech Therapy
===========================================`

// PrintBanner prints the startup banner; magenta when colors are enabled.
func PrintBanner(w io.Writer) {
	term.Magenta.Fprintln(w, banner)
	fmt.Fprintln(w)
}

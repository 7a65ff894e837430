package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/backmassage/phonesub/internal/display"
	"github.com/backmassage/phonesub/internal/rules"
)

// Logger is the subset of the CLI logger the session uses.
type Logger interface {
	Info(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Options configures a session.
type Options struct {
	Verbose bool
	Log     Logger
}

const prompt = "\n> "

// exitWords end the loop in addition to an empty line.
var exitWords = map[string]bool{"exit": true, "quit": true}

// Normalizer trims and lower-cases user input. It is not safe for
// concurrent use.
type Normalizer struct {
	lower cases.Caser
}

// NewNormalizer returns a language-neutral normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{lower: cases.Lower(language.Und)}
}

// Normalize trims surrounding whitespace and lower-cases s.
func (n *Normalizer) Normalize(s string) string {
	return n.lower.String(strings.TrimSpace(s))
}

// Run reads one word per line from in until an empty line, "exit", "quit",
// end of input, or ctx cancellation, printing suggestions for each to out.
func Run(ctx context.Context, in io.Reader, out io.Writer, eng *rules.Engine, opts Options) Stats {
	// Stops the reader goroutine on every return path, not just on cancel.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var stats Stats
	norm := NewNormalizer()
	lines := scanLines(ctx, in)

	fmt.Fprintln(out, "\nEnter a word to see possible phoneme replacements (or 'exit' to quit):")
	for {
		fmt.Fprint(out, prompt)

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return stats
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(out)
			break
		}

		word := norm.Normalize(line)
		if word == "" || exitWords[word] {
			break
		}
		lookup(out, eng, word, &stats, opts)
	}

	fmt.Fprintln(out, "\nThank you for using Phoneme Replacement!")
	return stats
}

// Once looks up each word non-interactively. Blank words are skipped.
func Once(out io.Writer, eng *rules.Engine, words []string, opts Options) Stats {
	var stats Stats
	norm := NewNormalizer()
	for _, w := range words {
		word := norm.Normalize(w)
		if word == "" {
			continue
		}
		if stats.Queries > 0 {
			fmt.Fprintln(out)
		}
		lookup(out, eng, word, &stats, opts)
	}
	return stats
}

func lookup(out io.Writer, eng *rules.Engine, word string, stats *Stats, opts Options) {
	repl := eng.Replacements(word)
	display.FormatReplacements(out, word, repl)
	n := len(repl)
	if n == 1 && repl[0] == rules.NoReplacements {
		n = 0
	}
	stats.record(n)
	if opts.Log != nil {
		opts.Log.Debug(opts.Verbose, "%q: %d suggestion(s)", word, n)
	}
}

// scanLines feeds lines from r into a channel so the caller can select on
// ctx while a read is blocked. The goroutine exits at EOF or on ctx.Done;
// a read already blocked on r finishes first.
func scanLines(ctx context.Context, r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case ch <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

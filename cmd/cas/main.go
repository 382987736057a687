// cmd/cas is an interactive REPL for the CAS kernel, adapted from the
// teacher's examples/main.go demonstration driver and restructured as a real
// command: it reads expressions from stdin, parses, simplifies, and prints
// the rendered TeX form of each one.
//
// Usage:
//
//	go run ./cmd/cas -eager-diff -eager-integrate -history ~/.cas_history
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/njchilds90/gocas/evaluator"
	"github.com/njchilds90/gocas/internal/history"
	"github.com/njchilds90/gocas/internal/logutil"
	"github.com/njchilds90/gocas/parser"
	"github.com/njchilds90/gocas/render"
)

func main() {
	eagerDiff := flag.Bool("eager-diff", false, "evaluate dd(...) groupings at parse time instead of leaving them symbolic")
	eagerIntegrate := flag.Bool("eager-integrate", false, "evaluate integrate(...) groupings at parse time instead of leaving them symbolic")
	historyPath := flag.String("history", "", "path to a bbolt database for persisting REPL input/result history")
	color := flag.Bool("color", false, "force ANSI-highlighted output (default: auto-detect a terminal)")
	quiet := flag.Bool("quiet", false, "discard diagnostic logging instead of printing it to stderr")
	flag.Parse()

	logger := log.New(os.Stderr, "cas: ", 0)
	if *quiet {
		logger = logutil.Discard
	}

	var hist *history.Store
	if *historyPath != "" {
		h, err := history.Open(*historyPath)
		if err != nil {
			logger.Fatalf("opening history database: %v", err)
		}
		defer h.Close()
		hist = h
	}

	useColor := *color || isatty.IsTerminal(os.Stdout.Fd())

	r := &repl{
		opts:   parser.Options{EagerDiff: *eagerDiff, EagerIntegrate: *eagerIntegrate},
		out:    os.Stdout,
		logger: logger,
		hist:   hist,
		color:  useColor,
	}
	r.run(os.Stdin)
}

type repl struct {
	opts   parser.Options
	out    io.Writer
	logger *log.Logger
	hist   *history.Store
	color  bool
}

func (r *repl) run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		r.evalLine(line)
	}
}

func (r *repl) evalLine(line string) {
	e, err := parser.ParseStringWithOptions(line, r.opts)
	if err != nil {
		r.logger.Printf("%s: %v", line, err)
		return
	}
	simplified := evaluator.Simplify(e)
	tex := render.Render(simplified)

	if r.color {
		fmt.Fprintf(r.out, "\x1b[36m%s\x1b[0m\n", tex)
	} else {
		fmt.Fprintln(r.out, tex)
	}

	if r.hist != nil {
		if err := r.hist.Append(line, tex); err != nil {
			r.logger.Printf("recording history: %v", err)
		}
	}
}

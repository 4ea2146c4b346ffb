package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zephyrtronium/stackcalc"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1 // some expression was invalid
	exitUsage  = 2 // bad flags or unreadable input
)

// run is the whole program. Each argument is an expression. Without
// arguments, or with -in, each line of the input is an expression.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	lg := log.New(stderr, "stackcalc: ", 0)
	var (
		inname, verb string
		echo         bool
	)
	fs := flag.NewFlagSet("stackcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	fs.StringVar(&verb, "fmt", "%g", "result formatting verb")
	fs.BoolVar(&echo, "echo", false, "print each expression before its result")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if s := fmt.Sprintf(verb, 1.5); strings.Contains(s, "%!") {
		lg.Printf("bad -fmt %q: formats 1.5 as %q", verb, s)
		return exitUsage
	}

	p := printer{out: stdout, errs: stderr, verb: verb + "\n", echo: echo}
	f, prompt, err := infile(inname, fs.NArg() == 0, stdin)
	if err != nil {
		lg.Print(err)
		return exitUsage
	}
	if f != nil {
		defer f.Close()
		if err := p.lines(f, prompt); err != nil {
			lg.Print(err)
			return exitUsage
		}
	}
	for _, arg := range fs.Args() {
		p.eval(arg)
	}
	if p.failed {
		return exitFailed
	}
	return exitOK
}

// printer evaluates expressions and writes their results.
type printer struct {
	out, errs io.Writer
	verb      string
	echo      bool
	failed    bool
}

func (p *printer) eval(expr string) {
	if p.echo {
		fmt.Fprintf(p.out, "%s = ", strings.TrimSpace(expr))
	}
	r, err := stackcalc.Evaluate(expr)
	if err != nil {
		if p.echo {
			fmt.Fprintln(p.out)
		}
		fmt.Fprintln(p.errs, "error:", err)
		p.failed = true
		return
	}
	fmt.Fprintf(p.out, p.verb, r)
}

// lines evaluates each non-blank line of in. If prompt is set, a prompt is
// written before each line is read.
func (p *printer) lines(in io.Reader, prompt bool) error {
	sc := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(p.out, "> ")
		}
		if !sc.Scan() {
			break
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.eval(line)
	}
	if prompt {
		fmt.Fprintln(p.out)
	}
	return sc.Err()
}

// infile opens the input named by inname. If inname is empty and std is set,
// or inname is "-", the input is stdin. prompt reports whether the input is
// an interactive terminal.
func infile(inname string, std bool, stdin io.Reader) (in io.ReadCloser, prompt bool, err error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, false, err
		}
		return f, false, nil
	case inname == "-", std:
		return io.NopCloser(stdin), isTerminal(stdin), nil
	}
	return nil, false, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

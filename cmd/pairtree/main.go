// Command pairtree reads one line of parent→child pairs from stdin and
// prints either the canonical tree serialization or the error code of the
// most severe violation.
//
// Usage:
//
//	echo "(A,B) (A,C)" | pairtree        # (A(B)(C))
//	echo "(A,B) (B,A)" | pairtree        # E4
//	pairtree -i                          # interactive prompt, :quit to exit
//	pairtree -v < pairs.txt              # also log every violation to stderr
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

	"github.com/peterh/liner"

	"github.com/katalvlaran/pairtree/validate"
)

const (
	appName    = "pairtree"
	promptMain = "pairs> "
	quitCmd    = ":quit"
)

func main() {
	interactive := flag.Bool("i", false, "interactive mode: validate each entered line")
	verbose := flag.Bool("v", false, "log every recorded violation to stderr")
	flag.Parse()

	logger := log.New(os.Stderr, appName+": ", 0)
	if !*verbose {
		logger.SetOutput(io.Discard)
	}

	if *interactive {
		os.Exit(repl(logger))
	}

	if err := run(os.Stdin, os.Stdout, logger); err != nil {
		log.Fatalf("%s: %v", appName, err)
	}
}

// run validates the first line of in and writes the verdict line to out.
// A missing line is treated as empty input.
func run(in io.Reader, out io.Writer, logger *log.Logger) error {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read input: %w", err)
	}

	if _, err = fmt.Fprintln(out, evaluate(trimEOL(line), logger)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// evaluate runs the pipeline on one line and logs its diagnostics.
func evaluate(line string, logger *log.Logger) string {
	res := validate.Run(line)
	if res.Err != nil {
		logger.Printf("%v", res.Err)
	}
	for _, v := range res.Violations() {
		logger.Printf("%s", v)
	}
	if res.Tree != nil && len(res.Tree.Roots()) > 1 {
		logger.Printf("roots: %v", res.Tree.Roots())
	}

	return res.Output
}

// repl prompts for lines until EOF or :quit. History lives in memory only.
func repl(logger *log.Logger) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}
		if strings.TrimSpace(line) == quitCmd {
			return 0
		}

		fmt.Println(evaluate(line, logger))
		ln.AppendHistory(line)
	}
}

// trimEOL strips one trailing "\n" or "\r\n".
func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")

	return strings.TrimSuffix(s, "\r")
}

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/msnoigrs/gomorse"
	"github.com/msnoigrs/gomorse/internal/lnreader"
	"github.com/msnoigrs/gomorse/table"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type mode int

const (
	toMorseMode mode = iota + 1
	toTextMode
	tableMode
)

type options struct {
	mode       mode
	outputfile string
	debugmode  bool
	files      []string
}

var errUsage = errors.New("usage error")

func parseArgs(name string, args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, `Converts text to morse, and vice-versa.

Usage of %s:
	%s -m|-t [-o file] [-d] [file ...]
	%s -T [-o file]

Options:
`, name, name, name)
		fs.PrintDefaults()
	}

	var (
		toMorse    bool
		toText     bool
		printTable bool
		opts       options
	)
	fs.BoolVar(&toMorse, "m", false, "convert text to morse")
	fs.BoolVar(&toMorse, "to-morse", false, "convert text to morse")
	fs.BoolVar(&toText, "t", false, "convert morse to text")
	fs.BoolVar(&toText, "to-text", false, "convert morse to text")
	fs.BoolVar(&printTable, "T", false, "print the conversion table")
	fs.BoolVar(&printTable, "table", false, "print the conversion table")
	fs.StringVar(&opts.outputfile, "o", "", "output to file")
	fs.BoolVar(&opts.debugmode, "d", false, "debug mode")

	err := fs.Parse(args)
	if err == flag.ErrHelp {
		return nil, err
	}
	if err != nil {
		return nil, errUsage
	}

	n := 0
	for m, selected := range map[mode]bool{toMorseMode: toMorse, toTextMode: toText, tableMode: printTable} {
		if selected {
			opts.mode = m
			n++
		}
	}
	if n != 1 {
		fmt.Fprintln(stderr, "exactly one of -m, -t or -T is required")
		fs.Usage()
		return nil, errUsage
	}
	opts.files = fs.Args()
	if opts.mode == tableMode && len(opts.files) > 0 {
		fmt.Fprintln(stderr, "-T does not read input files")
		fs.Usage()
		return nil, errUsage
	}
	return &opts, nil
}

func printPrompt(output io.Writer, m mode) {
	if m == toTextMode {
		fmt.Fprintln(output, "Write the morse codes to convert to text.")
	} else {
		fmt.Fprintln(output, "Write the text to convert to morse code.")
	}
	eof := "Control+D"
	if runtime.GOOS == "windows" {
		eof = "Control+Z"
	}
	fmt.Fprintf(output, "End by pressing %s on an empty line.\n\n", eof)
}

func runFromReader(convert func(string) string, input io.Reader, output io.Writer) (int, error) {
	r := lnreader.NewLineNumberReader(input)
	for {
		text, err := r.ReadText()
		if err == io.EOF {
			break
		}
		if err != nil {
			return r.NumLine, err
		}
		_, err = fmt.Fprintln(output, convert(text))
		if err != nil {
			return r.NumLine, err
		}
	}
	return r.NumLine, nil
}

func run(opts *options, stdin io.Reader, interactive bool, stdout io.Writer, stderr io.Writer) (err error) {
	var output io.Writer
	if opts.outputfile != "" {
		outputfile := opts.outputfile
		if !filepath.IsAbs(outputfile) {
			outputfile, err = filepath.Abs(outputfile)
			if err != nil {
				return err
			}
		}
		var outputfd *os.File
		outputfd, err = os.OpenFile(outputfile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("%s: %s", outputfile, err)
		}
		defer func() {
			if cerr := outputfd.Close(); err == nil {
				err = cerr
			}
		}()
		bufiooutput := bufio.NewWriter(outputfd)
		defer func() {
			if ferr := bufiooutput.Flush(); err == nil {
				err = ferr
			}
		}()
		output = bufiooutput
	} else if interactive && len(opts.files) == 0 {
		// echo each line as soon as it is entered
		output = stdout
	} else {
		bufiooutput := bufio.NewWriter(stdout)
		defer func() {
			if ferr := bufiooutput.Flush(); err == nil {
				err = ferr
			}
		}()
		output = bufiooutput
	}

	dict, err := gomorse.NewDefaultMorseDictionary()
	if err != nil {
		return err
	}
	p := message.NewPrinter(language.English)
	if opts.debugmode {
		p.Fprintf(stderr, "%d symbols in the table\n", dict.Table().Size())
	}

	if opts.mode == tableMode {
		return table.PrintTable(dict.Table(), output)
	}

	converter := dict.Create()
	if opts.debugmode {
		converter.DumpOutput = stderr
	}
	convert := converter.TextToMorse
	if opts.mode == toTextMode {
		convert = converter.MorseToText
	}

	total := 0
	if len(opts.files) > 0 {
		for _, arg := range opts.files {
			input, err := os.OpenFile(arg, os.O_RDONLY, 0644)
			if err != nil {
				return fmt.Errorf("%s: %s", arg, err)
			}
			n, err := runFromReader(convert, input, output)
			input.Close()
			total += n
			if err != nil {
				return fmt.Errorf("%s: %s", arg, err)
			}
		}
	} else {
		if interactive {
			printPrompt(stdout, opts.mode)
		}
		n, err := runFromReader(convert, stdin, output)
		total += n
		if err != nil {
			return err
		}
	}

	if opts.debugmode {
		p.Fprintf(stderr, "%d lines converted\n", total)
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func main() {
	opts, err := parseArgs(os.Args[0], os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(1)
	}

	err = run(opts, os.Stdin, isTerminal(os.Stdin), os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Command pixfmt inspects pixel formats and converts images between them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/pixfmt"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const usageStr = `pixfmt inspects pixel formats and converts images between them.

Usage:

    pixfmt [-v] <command> [flags] [path]

Commands:

    list    [-accessible]                      list every format
    bnf     [-accessible]                      print the format names as a BNF alternation
    info    -format F [-size WxHxD]            describe a format and its memory size
    convert -format F [-workers N] [-out file] [path]
                                               decode BMP, GIF, JPEG, PNG, TIFF or WEBP and
                                               write raw pixels in format F
    decode  -format F -size WxH [-out file] [path]
                                               decode block-compressed pixels to PNG

Format names are matched case-insensitively; the PF_ prefix is optional.
A missing path reads stdin; a missing -out writes stdout.
`

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "pixfmt:", err)
		}
		os.Exit(1)
	}
}

// run executes one command. It is main without the process exit.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("pixfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usageStr) }
	verbose := fs.Bool("v", false, "log debug output to stderr")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	pixfmt.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer pixfmt.SetLogger(nil)

	env := &env{stdin: stdin, stdout: stdout, stderr: stderr}
	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "list":
		return env.list(rest)
	case "bnf":
		return env.bnf(rest)
	case "info":
		return env.info(rest)
	case "convert":
		return env.convert(rest)
	case "decode":
		return env.decode(rest)
	case "help":
		fs.Usage()
		return nil
	}
	fmt.Fprintf(stderr, "pixfmt: unknown command %q\n\n", cmd)
	fs.Usage()
	return errUsage
}

// env carries the streams a command reads and writes.
type env struct {
	stdin          io.Reader
	stdout, stderr io.Writer
}

func (e *env) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

// input opens the single optional path argument, or stdin.
func (e *env) input(fs *flag.FlagSet) (io.ReadCloser, error) {
	switch fs.NArg() {
	case 0:
		return io.NopCloser(e.stdin), nil
	case 1:
		return os.Open(fs.Arg(0))
	}
	return nil, errors.New("too many filenames; the maximum is one")
}

// output creates path, or wraps stdout when path is empty.
func (e *env) output(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{e.stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

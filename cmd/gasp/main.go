// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/gasp/config"
	"github.com/ezrec/gasp/gasp"
	"github.com/ezrec/gasp/translate"
)

const VERSION = "1.2"

var f = translate.From

var ErrCommentChar = errors.New(f("comment character must be a single character"))

// flags as given on the command line.
type flags struct {
	alternate    bool
	commentChar  string
	copySource   bool
	debug        bool
	mri          bool
	output       string
	printLineNo  bool
	unreasonable bool
	defines      []string
	includes     []string
	version      bool
	config       string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line, returning the exit status.
func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) (status int) {
	var fl flags

	cmd := &cobra.Command{
		Use:   "gasp [flags] [file...]",
		Short: "Preprocess assembler source",
		Long: `Gasp expands the macros, conditionals, loops, string functions and
preprocessor variables of assembler source files, writing plain source for
the assembler. Standard input is read when no file is given.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if fl.version {
				err = translate.Fprintln(stdout, "gasp version %v", VERSION)
				return
			}

			cfg, err := configure(cmd, &fl)
			if err != nil {
				return
			}

			if cfg.Debug {
				log.SetOutput(stderr)
			}

			status, err = preprocess(cfg, &fl, args, stdin, stdout, stderr)
			return
		},
	}

	fs := cmd.Flags()
	fs.BoolVarP(&fl.alternate, "alternate", "a", false, f("use alternate syntax"))
	fs.StringVarP(&fl.commentChar, "commentchar", "c", "", f("set the comment character"))
	fs.BoolVarP(&fl.copySource, "copysource", "s", false, f("copy source through as comments"))
	fs.BoolVarP(&fl.debug, "debug", "d", false, f("log each line and dump the symbol tables"))
	fs.BoolVarP(&fl.mri, "mri", "M", false, f("use MRI compatible syntax"))
	fs.StringVarP(&fl.output, "output", "o", "", f("write output to a file"))
	fs.BoolVarP(&fl.printLineNo, "print", "p", false, f("number copied source lines"))
	fs.BoolVarP(&fl.unreasonable, "unreasonable", "u", false, f("allow unreasonable expansion"))
	fs.StringArrayVarP(&fl.defines, "define", "D", nil, f("define a variable as name[=expr]"))
	fs.StringArrayVarP(&fl.includes, "include", "I", nil, f("add a directory to the include path"))
	fs.BoolVarP(&fl.version, "version", "v", false, f("print the version"))
	fs.StringVar(&fl.config, "config", "", f("read settings from a starlark file"))

	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		translate.Fprintln(stderr, "gasp: %v", err)
		if status == 0 {
			status = 1
		}
	}

	return
}

// configure layers the defaults, the environment, the configuration file
// and the command line.
func configure(cmd *cobra.Command, fl *flags) (cfg *config.Config, err error) {
	cfg = config.Default()

	err = cfg.FromEnv()
	if err != nil {
		return
	}

	if len(fl.config) != 0 {
		err = cfg.LoadFile(fl.config, nil)
		if err != nil {
			return
		}
	}

	changed := cmd.Flags().Changed
	if changed("alternate") {
		cfg.Alternate = fl.alternate
	}
	if changed("commentchar") {
		if len(fl.commentChar) != 1 {
			err = ErrCommentChar
			return
		}
		cfg.CommentChar = fl.commentChar[0]
	}
	if changed("copysource") {
		cfg.CopySource = fl.copySource
	}
	if changed("mri") {
		cfg.MRI = fl.mri
	}
	if changed("print") {
		cfg.PrintLineNo = fl.printLineNo
	}
	if changed("unreasonable") {
		cfg.Unreasonable = fl.unreasonable
	}
	cfg.Debug = fl.debug
	cfg.IncludePath = append(cfg.IncludePath, fl.includes...)
	cfg.Defines = append(cfg.Defines, fl.defines...)

	return
}

// preprocess runs one session over the named files, or stdin.
func preprocess(cfg *config.Config, fl *flags, files []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) (status int, err error) {
	opts := cfg.Options()
	opts.Output = stdout
	opts.Diagnostics = stderr

	if len(fl.output) != 0 {
		var ouf *os.File
		ouf, err = os.Create(fl.output)
		if err != nil {
			return
		}
		defer func() {
			cerr := ouf.Close()
			if err == nil {
				err = cerr
			}
		}()
		opts.Output = ouf
	}

	s := gasp.New(opts)
	for _, def := range cfg.Defines {
		s.Define(def)
	}

	if len(files) == 0 {
		err = s.Process("<stdin>", stdin)
	} else {
		for _, file := range files {
			err = s.ProcessFile(file)
			if err != nil {
				break
			}
		}
	}

	var fe *gasp.ErrFatal
	if errors.As(err, &fe) {
		// Already reported.
		err = nil
	}

	if cfg.Debug {
		dump(stderr, s)
	}

	status = s.Status()
	return
}

// dump prints the symbol tables of a session.
func dump(w io.Writer, s *gasp.Session) {
	printer := pp.New()
	printer.SetOutput(w)
	printer.SetColoringEnabled(false)

	for name, tagged := range s.Symbols() {
		printer.Println(tagged.Tag, name, tagged.Value)
	}
}

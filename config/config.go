package config

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/xyproto/env/v2"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/gasp/gasp"
	"github.com/ezrec/gasp/source"
)

// Config holds every preprocessor option.
type Config struct {
	Alternate    bool     // Alternate syntax.
	MRI          bool     // MRI compatible syntax.
	CopySource   bool     // Copy source lines to the output.
	PrintLineNo  bool     // Number copied source lines.
	Unreasonable bool     // No expansion limit.
	Debug        bool     // Log each line and dump the symbols at exit.
	CommentChar  byte     // Comment character.
	Radix        int      // Initial radix.
	IfNesting    int      // AIF nesting limit.
	MaxDepth     int      // Input nesting limit.
	MaxExpansion int      // Expansion limit.
	IncludePath  []string // INCLUDE search path.
	Defines      []string // name[=expr] variable definitions.
}

// Default returns the built-in configuration.
func Default() (cfg *Config) {
	cfg = &Config{
		CommentChar:  gasp.COMMENT_CHAR,
		Radix:        10,
		IfNesting:    gasp.IF_NESTING,
		MaxDepth:     source.MAX_DEPTH,
		MaxExpansion: source.MAX_EXPANSION,
	}
	return
}

// FromEnv applies the GASP_* environment variables that are set.
func (cfg *Config) FromEnv() (err error) {
	if env.Has("GASP_INCLUDE") {
		cfg.IncludePath = append(cfg.IncludePath, filepath.SplitList(env.Str("GASP_INCLUDE"))...)
	}
	if env.Has("GASP_COMMENT") {
		comment := env.Str("GASP_COMMENT")
		if len(comment) != 1 {
			err = ErrComment
			return
		}
		cfg.CommentChar = comment[0]
	}
	if env.Has("GASP_MRI") {
		cfg.MRI = env.Bool("GASP_MRI")
	}
	if env.Has("GASP_ALTERNATE") {
		cfg.Alternate = env.Bool("GASP_ALTERNATE")
	}
	if env.Has("GASP_UNREASONABLE") {
		cfg.Unreasonable = env.Bool("GASP_UNREASONABLE")
	}
	cfg.IfNesting = env.Int("GASP_NESTING", cfg.IfNesting)
	cfg.MaxDepth = env.Int("GASP_DEPTH", cfg.MaxDepth)
	cfg.MaxExpansion = env.Int("GASP_EXPANSION", cfg.MaxExpansion)
	return
}

// LoadFile runs a starlark configuration file and applies its globals.
// src is as for starlark.ExecFileOptions; if nil the file is read.
func (cfg *Config) LoadFile(filename string, src any) (err error) {
	defer func() {
		if err != nil {
			err = &ErrFile{File: filename, Err: err}
		}
	}()

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, nil)
	if err != nil {
		return
	}

	for _, name := range globals.Keys() {
		if strings.HasPrefix(name, "_") {
			continue
		}
		err = cfg.set(name, globals[name])
		if err != nil {
			return
		}
	}

	return
}

func (cfg *Config) set(name string, value starlark.Value) (err error) {
	switch name {
	case "include":
		var dirs []string
		dirs, err = stringList(name, value)
		cfg.IncludePath = append(cfg.IncludePath, dirs...)
	case "define":
		var defs []string
		defs, err = defineList(name, value)
		cfg.Defines = append(cfg.Defines, defs...)
	case "comment":
		var comment string
		comment, err = asString(name, value)
		if err == nil && len(comment) != 1 {
			err = ErrComment
		}
		if err == nil {
			cfg.CommentChar = comment[0]
		}
	case "mri":
		cfg.MRI, err = asBool(name, value)
	case "alternate":
		cfg.Alternate, err = asBool(name, value)
	case "copysource":
		cfg.CopySource, err = asBool(name, value)
	case "unreasonable":
		cfg.Unreasonable, err = asBool(name, value)
	case "nesting":
		cfg.IfNesting, err = asInt(name, value)
	case "depth":
		cfg.MaxDepth, err = asInt(name, value)
	case "expansion":
		cfg.MaxExpansion, err = asInt(name, value)
	case "radix":
		var radix int
		radix, err = asInt(name, value)
		if err == nil {
			err = cfg.SetRadix(radix)
		}
	default:
		err = ErrUnknown(name)
	}
	return
}

// SetRadix sets the initial radix.
func (cfg *Config) SetRadix(radix int) (err error) {
	switch radix {
	case 2, 8, 10, 16:
		cfg.Radix = radix
	default:
		err = ErrRadix
	}
	return
}

// Options returns the session options for the configuration.
func (cfg *Config) Options() (opts gasp.Options) {
	opts = gasp.Options{
		Alternate:    cfg.Alternate,
		MRI:          cfg.MRI,
		CopySource:   cfg.CopySource,
		PrintLineNo:  cfg.PrintLineNo,
		Unreasonable: cfg.Unreasonable,
		Verbose:      cfg.Debug,
		CommentChar:  cfg.CommentChar,
		Radix:        cfg.Radix,
		IfNesting:    cfg.IfNesting,
		MaxDepth:     cfg.MaxDepth,
		MaxExpansion: cfg.MaxExpansion,
		IncludePath:  cfg.IncludePath,
	}
	return
}

func asBool(name string, value starlark.Value) (b bool, err error) {
	v, ok := value.(starlark.Bool)
	if !ok {
		err = &ErrType{Name: name, Want: "bool", Got: value.Type()}
		return
	}
	b = bool(v)
	return
}

func asInt(name string, value starlark.Value) (n int, err error) {
	v, ok := value.(starlark.Int)
	if !ok {
		err = &ErrType{Name: name, Want: "int", Got: value.Type()}
		return
	}
	n64, ok := v.Int64()
	if !ok {
		err = &ErrType{Name: name, Want: "int", Got: "big int"}
		return
	}
	n = int(n64)
	return
}

func asString(name string, value starlark.Value) (str string, err error) {
	str, ok := starlark.AsString(value)
	if !ok {
		err = &ErrType{Name: name, Want: "string", Got: value.Type()}
	}
	return
}

// stringList accepts a string or an iterable of strings.
func stringList(name string, value starlark.Value) (list []string, err error) {
	if str, ok := starlark.AsString(value); ok {
		list = []string{str}
		return
	}

	iterable, ok := value.(starlark.Iterable)
	if !ok {
		err = &ErrType{Name: name, Want: "list", Got: value.Type()}
		return
	}

	iter := iterable.Iterate()
	defer iter.Done()

	var item starlark.Value
	for iter.Next(&item) {
		var str string
		str, err = asString(name, item)
		if err != nil {
			return
		}
		list = append(list, str)
	}
	return
}

// defineList accepts a dict of names to values, or a list of name[=expr]
// strings.
func defineList(name string, value starlark.Value) (defs []string, err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		defs, err = stringList(name, value)
		return
	}

	for _, item := range dict.Items() {
		var key string
		key, err = asString(name, item[0])
		if err != nil {
			return
		}

		switch v := item[1].(type) {
		case starlark.Int:
			defs = append(defs, fmt.Sprintf("%v=%v", key, v.String()))
		case starlark.Bool:
			if v {
				defs = append(defs, key+"=1")
			} else {
				defs = append(defs, key+"=0")
			}
		default:
			var text string
			text, err = asString(name, v)
			if err != nil {
				return
			}
			defs = append(defs, key+"="+text)
		}
	}
	return
}

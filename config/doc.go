// Package config gathers preprocessor options from built-in defaults, the
// environment and a starlark configuration file.
//
// A configuration file is a starlark program. Its globals set options:
//
//	include = ["inc", "/usr/share/gasp"]
//	define = {"DEBUG": 1, "CPU": "68000"}
//	comment = ";"
//	mri = False
//	alternate = True
//	copysource = False
//	unreasonable = False
//	nesting = 100
//	depth = 30
//	expansion = 1000
//	radix = 16
//
// Globals whose names start with an underscore are private to the file.
package config

// Package cli contains the command line interface for line.
//
// # Usage
//
//	line [flags] <selector> [<file>]
//	line init [--force]
//
// The select command is the default and prints the lines of file (or stdin)
// whose positions match selector. See package selector for the grammar.
//
//	seq 10 | line 2..=4,8
//	line -n 1..11 README.md
//
// # Configuration
//
// Flags may also be set in the YAML file config.yaml in the user configuration
// directory, for example ~/.config/line/config.yaml. Keys are flag names,
// optionally nested by their hyphenated prefix:
//
//	number: true
//	log:
//	  level: debug
//	  format: json
//
// Command-line flags override the file. The init command writes the current
// flag values to the file.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Style text output when stderr is a terminal
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o line .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/line/pprof)
package cli

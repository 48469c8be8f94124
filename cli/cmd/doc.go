// Package cmd implements the commands of the line command-line interface.
//
// [Select] is the default command: it parses a selector expression, reads the
// input line by line and prints the selected lines. [Init] writes a YAML
// configuration file holding the current flag values.
package cmd

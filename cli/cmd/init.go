package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/line/log"
	"github.com/ardnew/line/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the configuration file.
const defaultConfigIndent = 2

// defaultDirMode is the permission mode of a created configuration directory.
const defaultDirMode os.FileMode = 0o700

// Init generates a configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	doc, err := yaml.MarshalContext(ctx, i.document(ktx), yaml.Indent(defaultConfigIndent))
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	err = os.MkdirAll(filepath.Dir(confPath), defaultDirMode)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	err = writeFile(confPath, doc)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// writeFile creates or truncates path and writes data to it. Errors from
// closing the file are returned as well, as they may report a failed write.
func writeFile(path string, data []byte) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		cerr := file.Close()
		if err == nil {
			err = cerr
		}
	}()

	_, err = file.Write(data)

	return err
}

// document collects the value of every configurable flag of the application
// in declaration order.
func (i *Init) document(ktx *kong.Context) yaml.MapSlice {
	var doc yaml.MapSlice

	ignore := []string{"help", "version", "force", profile.Tag}

	_ = kong.Visit(ktx.Model, func(node kong.Visitable, next kong.Next) error {
		flag, ok := node.(*kong.Flag)
		if !ok {
			return next(nil)
		}

		if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			return next(nil)
		}

		if val, ok := flagValue(ktx.FlagValue(flag)); ok {
			doc = append(doc, yaml.MapItem{Key: flag.Name, Value: val})
		}

		return next(nil)
	})

	return doc
}

// flagValue converts a flag value to a plain YAML scalar or sequence.
// Empty strings and empty sequences are omitted.
func flagValue(val any) (any, bool) {
	if val == nil {
		return nil, false
	}

	v := reflect.ValueOf(val)

	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), true

	case reflect.String:
		if v.Len() == 0 {
			return nil, false
		}

		return v.String(), true

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), true

	case reflect.Float32, reflect.Float64:
		return v.Float(), true

	case reflect.Slice:
		if v.Len() == 0 {
			return nil, false
		}

		seq := make([]any, 0, v.Len())

		for k := range v.Len() {
			if e, ok := flagValue(v.Index(k).Interface()); ok {
				seq = append(seq, e)
			}
		}

		return seq, true

	default:
		return nil, false
	}
}

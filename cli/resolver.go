package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/line/log"
	"github.com/ardnew/line/pkg"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag values from a
// YAML document.
//
// It is used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx), "/path/to/config.yaml")
//
// The document is a mapping from flag names to values:
//
//	log-level: debug
//	log-format: json
//	number: true
//
// Nested mappings are joined with hyphens, so the following is equivalent to
// the first two lines above:
//
//	log:
//	  level: debug
//	  format: json
//
// Underscores may be used in place of hyphens ("log_level"). Numbers are
// handed to kong as strings. An empty document sets nothing, and command-line
// flags override every value read from the document.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		err := yaml.NewDecoder(r).DecodeContext(ctx, &doc)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, pkg.ErrConfig.Wrap(err)
		}

		cfg := config{}
		cfg.flatten("", doc)

		return cfg, nil
	}
}

// config implements [kong.Resolver] over a flattened YAML document.
type config map[string]any

// Validate implements [kong.Resolver]. Keys that name no flag are reported
// at warning level but are not an error.
func (r config) Validate(app *kong.Application) error {
	known := map[string]bool{}

	_ = kong.Visit(app, func(node kong.Visitable, next kong.Next) error {
		if flag, ok := node.(*kong.Flag); ok {
			known[flag.Name] = true
		}

		return next(nil)
	})

	for _, key := range slices.Sorted(maps.Keys(r)) {
		if !known[strings.ReplaceAll(key, "_", "-")] {
			log.Warn("unknown configuration key", slog.String("key", key))
		}
	}

	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found: kong uses the default.
	return nil, nil //nolint:nilnil
}

// flatten copies doc into r, joining the keys of nested mappings to prefix.
func (r config) flatten(prefix string, doc map[string]any) {
	for key, value := range doc {
		if prefix != "" {
			key = prefix + "-" + key
		}

		switch v := value.(type) {
		case map[string]any:
			r.flatten(key, v)

		case int:
			r[key] = strconv.Itoa(v)

		case int64:
			r[key] = strconv.FormatInt(v, 10)

		case uint64:
			r[key] = strconv.FormatUint(v, 10)

		case float64:
			r[key] = strconv.FormatFloat(v, 'f', -1, 64)

		default:
			r[key] = v
		}
	}
}

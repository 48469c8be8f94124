package cli

import (
	"context"
	"errors"

	"github.com/alecthomas/kong"

	"github.com/ardnew/line/cli/cmd"
	"github.com/ardnew/line/pkg"
)

// CLI is the top-level command-line interface for line.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Init   cmd.Init   `cmd:"" help:"Write the current flags to the configuration file."`
	Select cmd.Select `cmd:"" default:"withargs" help:"Print the lines of input selected by position."`
}

// Run executes the line CLI with the given context and arguments.
// The exit function is called by kong for --help, --version and usage errors.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	configFilePath := pkg.ConfigPath()

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		"version":            pkg.Name + " " + pkg.Version,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Apply logger flags before kong reports anything.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				FlagsLast:           false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolve(ctx), configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	// Apply all logger flags, including those read from the configuration
	// file.
	cli.Log.start(ctx)

	// [pprofConfig.start] is a no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	err = ktx.Run(ctx, &cli)

	// kong joins command errors with its own; keep the command's error so that
	// its structured attributes reach the log.
	var cerr *cmd.Error
	if errors.As(err, &cerr) {
		return cerr
	}

	return err
}

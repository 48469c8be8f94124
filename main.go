package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ardnew/line/cli"
	"github.com/ardnew/line/log"
)

func main() {
	ctx, stop := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.Run(ctx, os.Exit, os.Args[1:]...)
	code := exitCode(ctx, err)

	stop()

	var sig signalError

	switch {
	case err == nil:
	case errors.As(context.Cause(ctx), &sig):
		log.Warn("interrupted", slog.String("signal", sig.sig.String()))
	default:
		log.Error(
			"run failed",
			slog.Any("error", err),
		) // slog automatically uses LogValue()
	}

	os.Exit(code)
}

// signalError is the cancellation cause of a context ended by a signal.
type signalError struct{ sig os.Signal }

func (e signalError) Error() string { return "received " + e.sig.String() }

// notifyContext returns a context cancelled by the first of sigs with a
// [signalError] cause. The handler is removed after the first signal, so a
// second one terminates the process the default way.
func notifyContext(parent context.Context, sigs ...os.Signal) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	go func() {
		select {
		case sig := <-ch:
			signal.Stop(ch)
			cancel(signalError{sig})
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(ch)
		cancel(nil)
	}
}

// exitCode returns the process status for the result of a run: 0 on success,
// 128 plus the signal number when interrupted, and 1 otherwise.
func exitCode(ctx context.Context, err error) int {
	if err == nil {
		return 0
	}

	var sig signalError
	if errors.As(context.Cause(ctx), &sig) {
		if n, ok := sig.sig.(syscall.Signal); ok {
			return 128 + int(n)
		}
	}

	return 1
}

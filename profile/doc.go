// Package profile provides optional runtime profiling for the line command.
//
// Profiling integrates [github.com/pkg/profile] and is compiled in only with
// the "pprof" build tag:
//
//	go build -tags pprof -o line .
//
// Without the tag, [Config.Start] always returns a no-op and [Modes] is
// empty, so callers never need build tags of their own.
//
// # Modes
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     blocking profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      heap profiling (live allocations)
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution tracing
//
// # Usage
//
//	var cfg profile.Config = func() (string, string, bool) { return "", "", false }
//	cfg = profile.WithMode("cpu")(cfg)
//	cfg = profile.WithPath("/tmp/line")(cfg)
//	defer cfg.Start().Stop()
//
// Analyze the output with go tool pprof:
//
//	go tool pprof -http=: ./line /tmp/line/cpu.pprof
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`

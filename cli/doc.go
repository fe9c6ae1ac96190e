// Package cli contains the command line interface for fcall.
//
// # Usage
//
// The CLI parses textual tool call expressions and prints them in a chosen
// output format:
//
//	fcall 'get_weather(location: "Boston", unit: "celsius")'
//	fcall --format=yaml -s calls.txt
//	echo 'f(x: 1)' | fcall -s -
//
// Subcommands:
//
//   - parse (default): parse expressions and print typed tool calls
//   - fmt:             reformat expressions in canonical syntax
//   - repl:            interactive parser session
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/fcall/pprof)
//
// # Examples
//
//	# Debug logging with CPU profiling
//	fcall --log-level=debug --pprof-mode=cpu parse -s calls.txt
//
//	# Keep only matching calls using a filter expression
//	fcall --filter 'name == "get_weather"' 'get_weather(), send_mail()'
package cli

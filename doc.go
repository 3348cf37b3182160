// Package human converts raw numeric and system values into short,
// human-readable strings: counts, byte sizes, relative and elapsed time,
// percentages, and Unix-style file permissions.
//
// Every formatter is an immutable value wrapper over a single input. Each
// offers two renderings of the same value: a concise, symbol-based form
// ("1.2K", "5 MiB", "1h 1m 1s") and a full, word-based form ("1.2 thousand",
// "5 mebibytes", "1 hour 1 minute 1 second"). Formatting is a pure
// computation with no I/O and no shared state, so all formatters are safe
// for concurrent use.
package human

// Package logquery provides a RoadRunner plugin that records every log call made
// by the plugins under test, so integration tests can verify them.
//
// The [Plugin] type implements the endure plugin lifecycle (Init, Serve, Stop,
// Provides, Weight, Name) and binds the [Logger] interface, handing out named
// *zap.Logger instances backed by a [recorder.Recorder]. Configuration is read from
// the "logquery" key and is optional:
//
//   - level: lowest level recorded (trace, debug, info, warn, error, critical).
//   - console: also echo recorded calls to stdout.
//   - encoding: console or json, for the echo.
//
// Verification is done with the [query] package against [Plugin.Recorder], or
// against a single plugin's calls through Recorder().Category(name).
package logquery

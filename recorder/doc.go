// Package recorder is the recorded-invocation store that log queries are verified
// against.
//
// [Recorder] captures log calls through a zapcore.Core in a concurrency-safe
// manner and counts the calls selected by a [Matcher] against an expected [Times]
// constraint, returning a [VerificationError] on mismatch. Around it:
//
//   - [Logger]: a zap facade writing level, event id, message and error, with
//     logical operation scopes ([Scope]).
//   - [View]: the calls made by one named logger.
//   - [MockLogger]: a Logger combined with a testify mock, for tests that need
//     callbacks on every call via SetupLog.
package recorder

// Package query builds log invocation queries and verifies them against recorded
// history.
//
// A [Query] holds one criterion per field of a log call: level, event id, message
// and error. Each setter replaces the criterion of its field, so the last call
// wins whatever its kind:
//
//	query.New().
//		AtWarning().
//		WithMessageRegex(`retry \d+`).
//		WithError(query.ErrorOf[*net.OpError]()).
//		Verify(rec, recorder.Once(), "")
//
// Error criteria narrow by type with errors.As semantics and may add an exact
// message, a message pattern or a predicate, see [ErrorOption]. Invalid arguments
// panic with an [ArgumentError] while the query is built.
//
// [Query.Compile] snapshots the query into a [Matcher] whose String form is used in
// failure messages:
//
//	logger => logger.Log(Warning, It.IsAny[EventID](), It.IsRegex("retry \\d+"), It.IsNotNil[*net.OpError]())
package query

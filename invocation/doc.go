// Package invocation holds the shape of one captured log call: [Level], [EventID]
// and [Record]. Levels map onto zap levels, trace below debug and critical on
// DPanic, so records survive a trip through any zap core.
package invocation

// Package kafkalog records franz-go client logs as log invocations. [New] wraps a
// recorder.Logger into a kgo.Logger, mapping kgo levels onto invocation levels and
// lifting the error passed under the "err" key into the recorded call.
package kafkalog

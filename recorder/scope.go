package recorder

import (
	"sync/atomic"
)

// Scope is returned by Logger.BeginScope. Closing it ends the scope.
type Scope struct {
	state  any
	closes atomic.Int32
}

func (s *Scope) State() any {
	return s.state
}

// Close ends the scope. Closing twice is not an error; CloseCount tells them apart.
func (s *Scope) Close() error {
	s.closes.Add(1)
	return nil
}

func (s *Scope) Closed() bool {
	return s.closes.Load() > 0
}

func (s *Scope) CloseCount() int {
	return int(s.closes.Load())
}

// Package trace is the parser's optional development side-channel: a
// leveled logger a caller can plug in to observe what the parser is
// doing (checkpoints taken, diagnostics raised, recovery points hit)
// without that observability being wired into the CST or diagnostics
// themselves.
//
// Grounded on krotik-ecal/util/logging.go's Logger interface and its
// MemoryLogger/NullLogger implementations, kept to the same three
// variadic methods and "error:"/"debug:" message prefixes rather than
// a renamed Errorf/Infof/Debugf surface, since nothing about this
// domain's logging differs from ECAL's.
package trace

import (
	"fmt"

	"github.com/krotik/common/datautil"
)

// Logger is required external object to which the parser releases its
// trace messages.
type Logger interface {
	// LogError adds a new error log message.
	LogError(m ...interface{})

	// LogInfo adds a new info log message.
	LogInfo(m ...interface{})

	// LogDebug adds a new debug log message.
	LogDebug(m ...interface{})
}

// NullLogger discards every message. It is the parser's default
// Logger, so tracing has zero cost unless a caller opts in.
type NullLogger struct{}

func NewNullLogger() *NullLogger { return &NullLogger{} }

func (nl *NullLogger) LogError(m ...interface{}) {}
func (nl *NullLogger) LogInfo(m ...interface{})  {}
func (nl *NullLogger) LogDebug(m ...interface{}) {}

// MemoryLogger collects trace messages in a fixed-size ring buffer,
// for tests and interactive debugging that want to inspect what the
// parser did after the fact without holding onto an unbounded log.
type MemoryLogger struct {
	*datautil.RingBuffer
}

// NewMemoryLogger returns a memory logger retaining at most size
// messages, oldest evicted first.
func NewMemoryLogger(size int) *MemoryLogger {
	return &MemoryLogger{datautil.NewRingBuffer(size)}
}

func (ml *MemoryLogger) LogError(m ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprintf("error: %v", fmt.Sprint(m...)))
}

func (ml *MemoryLogger) LogInfo(m ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprint(m...))
}

func (ml *MemoryLogger) LogDebug(m ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprintf("debug: %v", fmt.Sprint(m...)))
}

// Slice returns the logger's current messages, oldest first.
func (ml *MemoryLogger) Slice() []string {
	sl := ml.RingBuffer.Slice()
	ret := make([]string, len(sl))
	for i, lm := range sl {
		ret[i] = lm.(string)
	}
	return ret
}

// Reset clears the logger's contents.
func (ml *MemoryLogger) Reset() {
	ml.RingBuffer.Reset()
}

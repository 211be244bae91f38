package db

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// quiet reports errors only; it stands in until a core tracer is installed.
var quiet = func() tracing.Trace {
	t := gologadapter.New()
	t.SetTraceLevel(tracing.LevelError)
	return t
}()

// T traces to the core tracer.
func T() tracing.Trace {
	if t := gtrace.CoreTracer; t != nil {
		return t
	}
	return quiet
}

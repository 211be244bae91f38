// internal/rules/trace_test.go
package rules

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// redirectTracing sends core traces to t.Log for the rest of the test.
func redirectTracing(t *testing.T) {
	t.Helper()
	saved := gtrace.CoreTracer
	gtrace.CoreTracer = gotestingadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	teardown := gotestingadapter.RedirectTracing(t)
	t.Cleanup(func() {
		teardown()
		gtrace.CoreTracer = saved
	})
}

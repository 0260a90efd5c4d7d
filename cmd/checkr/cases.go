package main

import (
	"strings"

	"github.com/checkrun/checkr/registry"
	"github.com/checkrun/checkr/types"
)

// registerExampleCases populates the registry with a small all-green suite.
// Real programs declare cases next to the code under test, typically from
// top-level var statements, and share a registry handed in at startup.
func registerExampleCases(reg *registry.Registry) {
	registry.NewCase(reg, "Addition", func(t *types.Result) {
		types.RecordCheck(t, "sum", 2+3, 5)
		types.RecordCheck(t, "negative sum", -2+-3, -5)
	})

	registry.NewCase(reg, "StringFields", func(t *types.Result) {
		fields := strings.Fields("unit test harness")
		types.RecordCheck(t, "count", len(fields), 3)
		types.RecordCheck(t, "last", fields[2], "harness")
	})

	registry.NewCase(reg, "BooleanRendering", func(t *types.Result) {
		types.RecordCheck(t, "upper", strings.ToUpper("ok") == "OK", true)
	})
}

// Package trace configures the schuko tracing root for the commands.
package trace

import (
	"fmt"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// Keys are the trace keys used throughout bangfe.
var Keys = []string{
	"bangfe.dictionary",
	"bangfe.engine",
	"bangfe.frontend",
	"bangfe.ime",
	"bangfe.suggest",
	"bangfe.watch",
}

// ParseLevel accepts Debug, Info or Error.
func ParseLevel(name string) (tracing.TraceLevel, error) {
	switch name {
	case "Debug", "debug":
		return tracing.LevelDebug, nil
	case "Info", "info":
		return tracing.LevelInfo, nil
	case "Error", "error":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("invalid trace level: %s", name)
}

// Setup routes all tracers to the Go log adapter at the given level.
func Setup(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{"tracing.adapter": "go"}
	for _, key := range Keys {
		conf["trace."+key] = "Info"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	for _, key := range Keys {
		tracing.Select(key).SetTraceLevel(lvl)
	}
	return nil
}

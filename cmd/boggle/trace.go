package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/rs/zerolog"
)

// traceSelector routes the tracing of the boggle packages to a zerolog logger.
// Every tracer it hands out starts at level.
type traceSelector struct {
	log   zerolog.Logger
	level tracing.TraceLevel
}

func newTraceSelector(log zerolog.Logger, verbose bool) traceSelector {
	level := tracing.LevelInfo
	if verbose {
		level = tracing.LevelDebug
	}
	return traceSelector{log: log, level: level}
}

func (sel traceSelector) Select(key string) tracing.Trace {
	t := &zerologTrace{log: sel.log.With().Str("trace", key).Logger()}
	t.SetTraceLevel(sel.level)
	return t
}

// zerologTrace implements tracing.Trace on top of a zerolog logger.
type zerologTrace struct {
	log   zerolog.Logger
	level tracing.TraceLevel
}

func (t *zerologTrace) Errorf(s string, args ...interface{}) {
	t.log.Error().Msg(fmt.Sprintf(s, args...))
}

func (t *zerologTrace) Infof(s string, args ...interface{}) {
	if t.level < tracing.LevelInfo {
		return
	}
	t.log.Info().Msg(fmt.Sprintf(s, args...))
}

func (t *zerologTrace) Debugf(s string, args ...interface{}) {
	if t.level < tracing.LevelDebug {
		return
	}
	t.log.Debug().Msg(fmt.Sprintf(s, args...))
}

func (t *zerologTrace) P(key string, val interface{}) tracing.Trace {
	return &zerologTrace{
		log:   t.log.With().Interface(key, val).Logger(),
		level: t.level,
	}
}

func (t *zerologTrace) SetTraceLevel(level tracing.TraceLevel) {
	t.level = level
}

func (t *zerologTrace) GetTraceLevel() tracing.TraceLevel {
	return t.level
}

func (t *zerologTrace) SetOutput(w io.Writer) {
	t.log = t.log.Output(zerolog.ConsoleWriter{Out: w, NoColor: true})
}

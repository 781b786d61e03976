package llm

import (
	"context"
	"time"
)

// RequestEvent is the audit record of one generation call.
type RequestEvent struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRecorder persists request events. The store package provides the
// production implementation.
type EventRecorder interface {
	RecordLLMRequest(ctx context.Context, ev RequestEvent) error
}

// LoggingProvider decorates a Provider, recording every call as an event.
type LoggingProvider struct {
	inner    Provider
	recorder EventRecorder

	// warn receives logging failures so they surface without failing the
	// generation call itself.
	warn func(msg string, err error)
}

// WithLogging wraps p with request-event recording. warn may be nil.
func WithLogging(p Provider, recorder EventRecorder, warn func(msg string, err error)) Provider {
	if warn == nil {
		warn = func(string, error) {}
	}
	return &LoggingProvider{inner: p, recorder: recorder, warn: warn}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	ev := RequestEvent{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.Model = resp.Model
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	if logErr := l.recorder.RecordLLMRequest(ctx, ev); logErr != nil {
		l.warn("record llm request event", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

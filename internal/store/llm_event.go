package store

import (
	"context"

	"github.com/adilet/learnloop/ent"
	"github.com/adilet/learnloop/internal/llm"
)

// LLMEventRepo persists generation-request audit rows. It satisfies
// llm.EventRecorder.
type LLMEventRepo struct {
	client *ent.Client
}

var _ llm.EventRecorder = (*LLMEventRepo)(nil)

// RecordLLMRequest appends one audit row.
func (r *LLMEventRepo) RecordLLMRequest(ctx context.Context, ev llm.RequestEvent) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetProvider(ev.Provider).
		SetModel(ev.Model).
		SetPurpose(ev.Purpose).
		SetInputTokens(ev.InputTokens).
		SetOutputTokens(ev.OutputTokens).
		SetLatencyMs(ev.LatencyMs).
		SetSuccess(ev.Success).
		SetErrorMessage(ev.ErrorMessage).
		Save(ctx)
	if err != nil {
		return mapWriteError("record llm request", err)
	}
	return nil
}

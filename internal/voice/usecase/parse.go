package usecase

import (
	"context"
	"strings"
	"time"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/voice"
)

// Parse builds a draft from a single transcript, serving repeats from the cache.
func (uc *implUseCase) Parse(ctx context.Context, input voice.ParseInput) voice.ParseOutput {
	return voice.ParseOutput{
		Transcript: input.Transcript,
		Draft:      uc.parse(ctx, input.Transcript, input.Now),
	}
}

// ParseBatch parses every non-blank transcript against the same reference time.
func (uc *implUseCase) ParseBatch(ctx context.Context, input voice.ParseBatchInput) (voice.ParseBatchOutput, error) {
	results := make([]voice.ParseOutput, 0, len(input.Transcripts))

	for _, transcript := range input.Transcripts {
		if err := ctx.Err(); err != nil {
			uc.l.Warnf(ctx, "voice.usecase.ParseBatch: stopped after %d transcripts: %v", len(results), err)
			return voice.ParseBatchOutput{}, err
		}
		if strings.TrimSpace(transcript) == "" {
			continue
		}
		results = append(results, uc.Parse(ctx, voice.ParseInput{Transcript: transcript, Now: input.Now}))
	}

	if len(results) == 0 {
		return voice.ParseBatchOutput{}, voice.ErrEmptyBatch
	}

	uc.l.Infof(ctx, "voice.usecase.ParseBatch: parsed %d transcripts", len(results))
	return voice.ParseBatchOutput{
		Results: results,
		Count:   len(results),
	}, nil
}

func (uc *implUseCase) parse(ctx context.Context, transcript string, now time.Time) model.TaskDraft {
	key := newCacheKey(transcript, now)
	if uc.cache != nil {
		if draft, ok := uc.cache.Get(key); ok {
			uc.l.Debugf(ctx, "voice.usecase.parse: cache hit for %q", transcript)
			return cloneDraft(draft)
		}
	}

	a := uc.parser.Analyze(transcript, now)
	uc.l.Debugf(ctx, "voice.usecase.parse: title=%s priority=%s status=%s due=%s",
		ruleName(a.TitleRule), ruleName(a.PriorityRule), ruleName(a.StatusRule), ruleName(a.DueDateRule))

	if uc.cache != nil {
		uc.cache.Add(key, cloneDraft(a.Draft))
	}
	return a.Draft
}

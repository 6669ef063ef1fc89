package cli

import (
	"voice-task-parser/internal/model"
	"voice-task-parser/internal/voice"
)

type parseResp struct {
	Transcript string          `json:"transcript"`
	Draft      model.TaskDraft `json:"draft"`
}

func newParseResp(out voice.ParseOutput) parseResp {
	return parseResp{
		Transcript: out.Transcript,
		Draft:      out.Draft,
	}
}

type reviewResp struct {
	Transcript string                `json:"transcript"`
	Draft      model.TaskDraft       `json:"draft"`
	Task       model.CreateTaskInput `json:"task"`
}

func newReviewResp(parsed voice.ParseOutput, out voice.ReviewOutput) reviewResp {
	return reviewResp{
		Transcript: parsed.Transcript,
		Draft:      parsed.Draft,
		Task:       out.Task,
	}
}

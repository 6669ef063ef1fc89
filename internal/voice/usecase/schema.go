package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/voice"
)

const taskSchemaURL = "https://voice-task-parser/schemas/create_task.json"

// createTaskSchema is the payload accepted by task creation; %d is the title length limit.
const createTaskSchema = `{
	"type": "object",
	"required": ["title", "status", "priority"],
	"additionalProperties": false,
	"properties": {
		"title":    {"type": "string", "minLength": 1, "maxLength": %d},
		"status":   {"enum": ["todo", "in_progress", "done"]},
		"priority": {"enum": ["low", "medium", "high", "urgent"]},
		"dueDate":  {"type": "string", "format": "date-time"}
	}
}`

// fieldErrors maps a payload field to the domain error reported when it fails validation.
var fieldErrors = map[string]error{
	"/title":    voice.ErrInvalidTitle,
	"/status":   voice.ErrInvalidStatus,
	"/priority": voice.ErrInvalidPriority,
	"/dueDate":  voice.ErrInvalidDueDate,
}

func compileTaskSchema(titleMax int) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	if err := compiler.AddResource(taskSchemaURL, strings.NewReader(fmt.Sprintf(createTaskSchema, titleMax))); err != nil {
		return nil, err
	}
	return compiler.Compile(taskSchemaURL)
}

// validateTask checks task against the creation schema and reports the first failing field.
func (uc *implUseCase) validateTask(task model.CreateTaskInput) error {
	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal task: %w", err)
	}

	err = uc.taskSchema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}

	leaf := firstLeaf(ve)
	if fieldErr, ok := fieldErrors[leaf.InstanceLocation]; ok {
		return fmt.Errorf("%w: %s", fieldErr, leaf.Message)
	}
	return fmt.Errorf("invalid task: %s", leaf.Message)
}

func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

package usecase

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/voice/parser"
	"voice-task-parser/pkg/datemath"
	pkgLog "voice-task-parser/pkg/log"
)

// DefaultTitleMaxLength matches the task store's title limit.
const DefaultTitleMaxLength = 200

// Config tunes the use case. A zero CacheSize disables the parse cache.
type Config struct {
	CacheSize      int
	CacheTTL       time.Duration
	TitleMaxLength int
}

type implUseCase struct {
	l          pkgLog.Logger
	parser     *parser.Parser
	dateMath   *datemath.Parser
	cache      *expirable.LRU[cacheKey, model.TaskDraft]
	taskSchema *jsonschema.Schema
}

// New creates a new voice UseCase instance.
func New(l pkgLog.Logger, dateMath *datemath.Parser, cfg Config) (*implUseCase, error) {
	if dateMath == nil {
		dateMath, _ = datemath.NewParser("")
	}

	titleMax := cfg.TitleMaxLength
	if titleMax <= 0 {
		titleMax = DefaultTitleMaxLength
	}

	schema, err := compileTaskSchema(titleMax)
	if err != nil {
		return nil, fmt.Errorf("compile task schema: %w", err)
	}

	uc := &implUseCase{
		l:          l,
		parser:     parser.New(dateMath),
		dateMath:   dateMath,
		taskSchema: schema,
	}

	if cfg.CacheSize > 0 {
		uc.cache = expirable.NewLRU[cacheKey, model.TaskDraft](cfg.CacheSize, nil, cfg.CacheTTL)
	}

	return uc, nil
}

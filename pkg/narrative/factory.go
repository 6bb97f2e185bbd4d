package narrative

import (
	"time"

	"hongling-sanctuary-be/internal/pkg/logger"
	"hongling-sanctuary-be/pkg/llm"
)

// NewGenerator selects a strategy by name. Callers hold a Generator and never
// learn which strategy is active. Anything other than "remote" (including an
// empty string) selects the offline templates.
func NewGenerator(strategy string, provider llm.LLMProvider, log logger.ILogger, requestDelay time.Duration) Generator {
	if strategy == "remote" && provider != nil {
		return NewRemoteGenerator(provider, log, requestDelay)
	}
	return NewLocalGenerator()
}

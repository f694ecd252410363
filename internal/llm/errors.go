package llm

import (
	"errors"
	"fmt"
)

var errEmptyCompletion = errors.New("provider returned no choices")

// ProviderError reports a failure of the backing language model provider:
// unreachable endpoint, malformed output, or missing configuration. The
// assessment pipeline propagates it to the caller verbatim; the symptom
// extractor logs it and continues with an empty result.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("llm provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// IsProviderError reports whether err originated from a provider failure.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

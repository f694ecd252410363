package llm

import (
	"context"
	"encoding/json"
)

// StubClient is a canned-response Client used in tests and local dry
// runs. ChatReply is returned from Chat; ExtractJSON is decoded into the
// target struct by Extract. A non-nil Err takes precedence on both paths.
type StubClient struct {
	ChatReply   string
	ExtractJSON []string
	Err         error

	ChatCalls    [][]Message
	ExtractCalls []string

	extractIdx int
}

// NewStubClient returns a stub that answers every chat with reply.
func NewStubClient(reply string) *StubClient {
	return &StubClient{ChatReply: reply}
}

func (s *StubClient) Chat(_ context.Context, messages []Message) (string, error) {
	s.ChatCalls = append(s.ChatCalls, messages)
	if s.Err != nil {
		return "", s.Err
	}
	return s.ChatReply, nil
}

func (s *StubClient) Extract(_ context.Context, prompt string, out any) error {
	s.ExtractCalls = append(s.ExtractCalls, prompt)
	if s.Err != nil {
		return s.Err
	}
	if s.extractIdx >= len(s.ExtractJSON) {
		return &ProviderError{Provider: "stub", Err: errEmptyCompletion}
	}
	raw := s.ExtractJSON[s.extractIdx]
	s.extractIdx++
	return json.Unmarshal([]byte(raw), out)
}

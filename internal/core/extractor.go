package core

import (
	"context"

	"doctor-assistant/internal/llm"
	"doctor-assistant/internal/memory"
	"doctor-assistant/pkg"
)

// extractAndMerge asks the gateway for a structured symptom extraction
// of the raw utterance and merges the result into the record. A failed
// extraction is logged and treated as empty: a flaky extraction must
// never abort the surrounding conversation turn.
//
// The caller holds the record lock for the whole turn and waits for this
// to finish before reading the symptom list.
func (s *ChatService) extractAndMerge(ctx context.Context, client llm.Client, rec *memory.ConversationRecord, req pkg.ChatRequest) {
	var extraction pkg.SymptomExtraction
	err := s.turnPool.Run(ctx, func() error {
		return client.Extract(ctx, extractionPrompt(req.Message, req.Name, req.Age), &extraction)
	})
	if err != nil {
		s.log.Warnw("symptom extraction failed", "name", req.Name, "error", err)
		return
	}
	if len(extraction.Symptoms) == 0 {
		s.log.Debugw("no symptoms found in message", "name", req.Name)
		return
	}

	added := rec.MergeSymptoms(extraction.Symptoms, func(existing, candidate string) bool {
		return nearDuplicate(existing, candidate, s.opts.SimilarityThreshold)
	})
	s.log.Infow("symptoms extracted",
		"name", req.Name,
		"found", len(extraction.Symptoms),
		"added", added,
		"total", len(rec.Symptoms),
	)
}

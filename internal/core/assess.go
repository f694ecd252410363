package core

import (
	"context"

	"doctor-assistant/internal/llm"
	"doctor-assistant/internal/memory"
	"doctor-assistant/pkg"
)

// runAssessment executes the two-stage pipeline: urgency triage, then
// advice generation (which depends on the triage result), then
// deterministic formatting. Any gateway failure propagates to the caller
// untouched; an incomplete triage result must never be presented as
// valid, so there is no partial report.
//
// On success the record's symptoms are consumed and the assessment and
// advice are stored together.
func (s *ChatService) runAssessment(ctx context.Context, client llm.Client, rec *memory.ConversationRecord, req pkg.ChatRequest, lang string) (string, error) {
	rec.TruncateSymptoms(s.opts.SymptomCap)
	rec.Phase = pkg.PhaseAssessment
	symptoms := append([]string{}, rec.Symptoms...)

	var assessment pkg.TriageAssessment
	err := s.svcPool.Run(ctx, func() error {
		return client.Extract(ctx, triagePrompt(symptoms, req.Name, req.Age, lang), &assessment)
	})
	if err != nil {
		return "", err
	}
	s.log.Infow("urgency assessed",
		"name", req.Name,
		"level", assessment.UrgencyLevel,
		"score", assessment.UrgencyScore,
	)

	var advice pkg.MedicalAdvice
	err = s.svcPool.Run(ctx, func() error {
		return client.Extract(ctx, advicePrompt(&assessment, symptoms, req.Name, req.Age, lang), &advice)
	})
	if err != nil {
		return "", err
	}

	advice.Recommendations = dedupeStrings(advice.Recommendations)
	advice.WarningSigns = dedupeStrings(advice.WarningSigns)
	advice.SelfCareTips = dedupeStrings(advice.SelfCareTips)

	report := formatReport(&assessment, &advice, req.Name, lang)
	rec.SetAssessment(&assessment, &advice)
	return report, nil
}

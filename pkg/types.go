package pkg

import "time"

// Severity describes how strongly a symptom affects the patient.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// UrgencyLevel is the triage category assigned to a set of symptoms.
type UrgencyLevel string

const (
	UrgencyLow       UrgencyLevel = "low"
	UrgencyMedium    UrgencyLevel = "medium"
	UrgencyHigh      UrgencyLevel = "high"
	UrgencyEmergency UrgencyLevel = "emergency"
)

// ConversationPhase is a coarse marker of where a conversation stands.
// It is advisory only; the router derives its behaviour from message
// content and accumulated symptoms, not from this field.
type ConversationPhase string

const (
	PhaseGathering  ConversationPhase = "symptom_gathering"
	PhaseAssessment ConversationPhase = "assessment"
	PhaseAdvice     ConversationPhase = "advice"
)

// ChatRequest is the inbound payload for a single conversation turn.
// Language and Provider are optional; when Language is empty or
// unsupported the server detects it from the message text.
type ChatRequest struct {
	Name     string `json:"name" validate:"required"`
	Age      int    `json:"age" validate:"gte=0,lte=120"`
	Message  string `json:"message" validate:"required"`
	Language string `json:"language,omitempty"`
	Provider string `json:"provider,omitempty"`
}

// ChatResponse carries the assistant's reply together with the symptoms
// accumulated so far for this patient.
type ChatResponse struct {
	Response     string   `json:"response"`
	Symptoms     []string `json:"symptoms"`
	SymptomCount int      `json:"symptom_count"`
}

// SymptomExtraction is the structured result of analysing one patient
// utterance. Only Symptoms is merged into the conversation record; the
// remaining fields are informational per extraction.
type SymptomExtraction struct {
	Symptoms       []string `json:"symptoms"`
	Duration       string   `json:"duration,omitempty"`
	Severity       Severity `json:"severity,omitempty"`
	AdditionalInfo string   `json:"additional_info,omitempty"`
}

// TriageAssessment is the urgency evaluation produced from the collected
// symptoms. Immutable once produced.
type TriageAssessment struct {
	UrgencyScore          int          `json:"urgency_score"`
	UrgencyLevel          UrgencyLevel `json:"urgency_level"`
	RequiresImmediateCare bool         `json:"requires_immediate_care"`
	Reasoning             string       `json:"reasoning"`
}

// MedicalAdvice holds the recommendations generated from a triage
// assessment. The list fields are deduplicated preserving first
// appearance before the advice is formatted or stored.
type MedicalAdvice struct {
	Recommendations   []string `json:"recommendations"`
	WarningSigns      []string `json:"warning_signs"`
	FollowUpTimeframe string   `json:"follow_up_timeframe"`
	SelfCareTips      []string `json:"self_care_tips"`
}

// SessionPreview is returned by the diagnostics listing. It exposes
// per-record metadata without the transcript contents.
type SessionPreview struct {
	RecordID     string            `json:"record_id"`
	Name         string            `json:"name"`
	Language     string            `json:"language"`
	Phase        ConversationPhase `json:"phase"`
	SymptomCount int               `json:"symptom_count"`
	LastSeen     time.Time         `json:"last_seen"`
}

package core

// prompts.go defines the prompt templates used by the chat, extraction
// and assessment components.  Keeping these prompts in a separate file
// makes them easy to tweak without touching the rest of the code.

import (
	"fmt"
	"strings"

	"doctor-assistant/internal/language"
	"doctor-assistant/pkg"
)

// systemPrompt is inserted once at the head of every transcript. It
// frames the assistant's role and forbids diagnosis.
func systemPrompt(name string, age int) string {
	return fmt.Sprintf(`You are a doctor assistant helping %s, who is %d years old.

IMPORTANT RULES:
- Always respond in the same language the patient uses
- Be empathetic, clear, and professional
- Give age-appropriate advice
- NEVER diagnose - only provide general health information
- Always recommend consulting a real doctor for serious concerns

RESPONSE FORMAT:
- Extract symptoms clearly
- Assess urgency level objectively
- Provide practical, safe advice
- Mention warning signs to watch for

Respond in the same language the patient uses.`, name, age)
}

// languageName maps a language code to the name used inside prompts.
func languageName(code string) string {
	if code == language.Turkish {
		return "Turkish"
	}
	return "English"
}

// languageInstruction is prepended to the transcript for a single chat
// completion call. It is never persisted in the transcript.
func languageInstruction(lang string) string {
	return fmt.Sprintf("CRITICAL: You MUST respond in %s. Ignore the language of previous messages. Current language is: %s", languageName(lang), lang)
}

// extractionPrompt asks for a SymptomExtraction as JSON.
func extractionPrompt(message, name string, age int) string {
	return fmt.Sprintf(`Extract symptoms from this patient message.
Patient: %s, %d years old
Message: %s

Extract:
- symptoms: list of specific symptoms mentioned
- duration: how long (if mentioned)
- severity: mild, moderate, or severe
- additional_info: any other relevant details

Return exactly one JSON object with keys: symptoms, duration, severity, additional_info.`, name, age, message)
}

// triagePrompt asks for a TriageAssessment as JSON, with the reasoning
// written in the target language.
func triagePrompt(symptoms []string, name string, age int, lang string) string {
	return fmt.Sprintf(`Assess urgency for this patient. Patient: %s, %d years old
Symptoms:
%s
IMPORTANT: Respond in %s.

Provide:
- urgency_score: integer 1-10 (10 is most urgent)
- urgency_level: low, medium, high, or emergency
- requires_immediate_care: true/false
- reasoning: explain your assessment

Return exactly one JSON object with keys: urgency_score, urgency_level, requires_immediate_care, reasoning.`,
		name, age, bulleted(symptoms), languageName(lang))
}

// advicePrompt asks for a MedicalAdvice as JSON. Symptom text is passed
// through verbatim; every generated field must be in the target language.
func advicePrompt(assessment *pkg.TriageAssessment, symptoms []string, name string, age int, lang string) string {
	target := languageName(lang)
	return fmt.Sprintf(`You are a medical advice assistant. Generate medical advice for this patient.
Patient: %s, %d years old
Symptoms:
%s
Urgency Level: %s
Urgency Score: %d

CRITICAL INSTRUCTIONS:
- The symptoms are in %s
- You MUST write ALL responses in %s
- Do NOT translate or interpret symptoms - use them as-is
- recommendations, warning_signs, follow_up_timeframe, self_care_tips must ALL be in %s

Return exactly one JSON object with keys: recommendations, warning_signs, follow_up_timeframe, self_care_tips.
Do not add any text outside the JSON. Do not repeat items.`,
		name, age, bulleted(symptoms), assessment.UrgencyLevel, assessment.UrgencyScore, target, target, target)
}

func bulleted(items []string) string {
	var b strings.Builder
	for _, s := range items {
		b.WriteString("- ")
		b.WriteString(s)
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

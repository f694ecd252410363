package memory

import (
	"strings"
	"sync"
	"time"

	"doctor-assistant/internal/llm"
	"doctor-assistant/internal/language"
	"doctor-assistant/pkg"

	"github.com/google/uuid"
)

// ConversationRecord is the per-patient state: the chat transcript, the
// reply language, accumulated symptoms and the latest assessment result.
// Records are created lazily on first contact and live for the process
// lifetime unless the store evicts them for idleness.
//
// The embedded mutex serializes whole conversation turns for one
// identity. All other methods assume the caller holds the lock.
type ConversationRecord struct {
	sync.Mutex

	ID        string
	Name      string
	Language  string
	CreatedAt time.Time
	LastSeen  time.Time

	Transcript []llm.Message
	Symptoms   []string
	Phase      pkg.ConversationPhase

	// LastAssessment and LastAdvice are set together by a successful
	// assessment and cleared together by Clear.
	LastAssessment *pkg.TriageAssessment
	LastAdvice     *pkg.MedicalAdvice
}

func newRecord(name string) *ConversationRecord {
	now := time.Now()
	return &ConversationRecord{
		ID:        uuid.New().String(),
		Name:      name,
		Language:  language.Default,
		CreatedAt: now,
		LastSeen:  now,
		Phase:     pkg.PhaseGathering,
	}
}

// EnsureSystemPrompt inserts prompt as the first transcript entry. It is
// a no-op once the transcript is non-empty, so the instruction appears
// exactly once per record.
func (r *ConversationRecord) EnsureSystemPrompt(prompt string) {
	if len(r.Transcript) == 0 {
		r.Transcript = append(r.Transcript, llm.Message{Role: llm.RoleSystem, Content: prompt})
	}
}

// AppendUser adds a patient message to the transcript.
func (r *ConversationRecord) AppendUser(content string) {
	r.Transcript = append(r.Transcript, llm.Message{Role: llm.RoleUser, Content: content})
}

// AppendAssistant adds an assistant reply to the transcript.
func (r *ConversationRecord) AppendAssistant(content string) {
	r.Transcript = append(r.Transcript, llm.Message{Role: llm.RoleAssistant, Content: content})
}

// MergeSymptoms normalizes candidates (trim, lowercase) and appends those
// not already present, preserving first-seen order. isDup decides whether
// a candidate matches an existing entry beyond exact equality; it may be
// nil. Returns how many symptoms were added.
func (r *ConversationRecord) MergeSymptoms(candidates []string, isDup func(existing, candidate string) bool) int {
	added := 0
next:
	for _, c := range candidates {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		for _, s := range r.Symptoms {
			if s == c || (isDup != nil && isDup(s, c)) {
				continue next
			}
		}
		r.Symptoms = append(r.Symptoms, c)
		added++
	}
	return added
}

// TruncateSymptoms keeps only the most recent max symptoms, evicting
// oldest first. Applied on assessment entry.
func (r *ConversationRecord) TruncateSymptoms(max int) {
	if max > 0 && len(r.Symptoms) > max {
		r.Symptoms = r.Symptoms[len(r.Symptoms)-max:]
	}
}

// SetAssessment stores the result of a completed assessment: symptoms
// are consumed, assessment and advice are recorded together.
func (r *ConversationRecord) SetAssessment(a *pkg.TriageAssessment, adv *pkg.MedicalAdvice) {
	r.LastAssessment = a
	r.LastAdvice = adv
	r.Symptoms = nil
	r.Phase = pkg.PhaseAdvice
}

// Clear resets symptoms and assessment results while preserving the
// transcript and the detected language.
func (r *ConversationRecord) Clear() {
	r.Symptoms = nil
	r.LastAssessment = nil
	r.LastAdvice = nil
	r.Phase = pkg.PhaseGathering
}

// Preview returns the diagnostics view of the record.
func (r *ConversationRecord) Preview() pkg.SessionPreview {
	return pkg.SessionPreview{
		RecordID:     r.ID,
		Name:         r.Name,
		Language:     r.Language,
		Phase:        r.Phase,
		SymptomCount: len(r.Symptoms),
		LastSeen:     r.LastSeen,
	}
}

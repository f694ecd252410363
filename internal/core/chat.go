package core

import (
	"context"
	"strings"

	"doctor-assistant/internal/language"
	"doctor-assistant/internal/llm"
	"doctor-assistant/internal/memory"
	"doctor-assistant/pkg"

	"go.uber.org/zap"
)

// Options tune the ChatService. Zero values fall back to the defaults
// used by the original deployment.
type Options struct {
	// TurnWorkers bounds concurrent symptom-extraction calls.
	TurnWorkers int
	// ServiceWorkers bounds concurrent chat and assessment calls.
	ServiceWorkers int
	// SimilarityThreshold is the token-sort ratio above which two
	// symptoms are considered duplicates.
	SimilarityThreshold int
	// SymptomCap is the maximum symptom count retained on assessment
	// entry, oldest evicted first.
	SymptomCap int
}

const (
	defaultTurnWorkers    = 4
	defaultServiceWorkers = 3
	defaultSymptomCap     = 20
)

func (o Options) withDefaults() Options {
	if o.TurnWorkers <= 0 {
		o.TurnWorkers = defaultTurnWorkers
	}
	if o.ServiceWorkers <= 0 {
		o.ServiceWorkers = defaultServiceWorkers
	}
	if o.SimilarityThreshold <= 0 {
		o.SimilarityThreshold = DefaultSimilarityThreshold
	}
	if o.SymptomCap <= 0 {
		o.SymptomCap = defaultSymptomCap
	}
	return o
}

// Gateway resolves a provider name to a language model client.
// *llm.Factory is the production implementation.
type Gateway interface {
	Client(provider string) (llm.Client, error)
}

// ChatService routes each conversation turn to one of three behaviours:
// clearing accumulated state, running a full assessment, or ordinary
// conversation with background symptom extraction. State lives in the
// injected memory store; semantic work is delegated to the gateway.
type ChatService struct {
	factory  Gateway
	store    *memory.Store
	turnPool *llm.Pool
	svcPool  *llm.Pool
	opts     Options
	log      *zap.SugaredLogger
}

// NewChatService constructs the service with the given collaborators.
func NewChatService(factory Gateway, store *memory.Store, opts Options, log *zap.SugaredLogger) *ChatService {
	opts = opts.withDefaults()
	return &ChatService{
		factory:  factory,
		store:    store,
		turnPool: llm.NewPool(opts.TurnWorkers),
		svcPool:  llm.NewPool(opts.ServiceWorkers),
		opts:     opts,
		log:      log,
	}
}

// Process handles one conversation turn for the identity in req. Turns
// for the same identity are serialized on the record's lock; turns for
// different identities run concurrently, bounded by the worker pools.
func (s *ChatService) Process(ctx context.Context, req pkg.ChatRequest) (pkg.ChatResponse, error) {
	client, err := s.factory.Client(req.Provider)
	if err != nil {
		return pkg.ChatResponse{}, err
	}

	rec := s.store.GetOrCreate(req.Name)
	rec.Lock()
	defer rec.Unlock()

	// Clear intent wins over everything else and never touches the
	// transcript.
	if isClearRequest(req.Message) {
		rec.Clear()
		s.log.Infow("memory cleared", "name", req.Name)
		return pkg.ChatResponse{
			Response: clearConfirmationFor(rec.Language),
			Symptoms: []string{},
		}, nil
	}

	lang := s.resolveLanguage(req, rec)

	if shouldTriggerAssessment(req.Message) && len(rec.Symptoms) > 0 {
		s.log.Infow("assessment triggered", "name", req.Name, "symptoms", len(rec.Symptoms))
		report, err := s.runAssessment(ctx, client, rec, req, lang)
		if err != nil {
			return pkg.ChatResponse{}, err
		}
		return pkg.ChatResponse{Response: report, Symptoms: []string{}}, nil
	}

	return s.converse(ctx, client, rec, req, lang)
}

// converse runs the default branch: a chat completion over the full
// transcript, then symptom extraction merged into the record. The
// extraction goes through its own worker pool and is awaited before the
// response is built, so the returned symptom list is current for this
// turn.
func (s *ChatService) converse(ctx context.Context, client llm.Client, rec *memory.ConversationRecord, req pkg.ChatRequest, lang string) (pkg.ChatResponse, error) {
	rec.EnsureSystemPrompt(systemPrompt(req.Name, req.Age))
	rec.AppendUser(req.Message)

	// The language override is injected for this call only, never
	// persisted in the transcript.
	messages := make([]llm.Message, 0, len(rec.Transcript)+1)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: languageInstruction(lang)})
	messages = append(messages, rec.Transcript...)

	var reply string
	err := s.svcPool.Run(ctx, func() error {
		var chatErr error
		reply, chatErr = client.Chat(ctx, messages)
		return chatErr
	})
	if err != nil {
		return pkg.ChatResponse{}, err
	}
	rec.AppendAssistant(reply)
	rec.Phase = pkg.PhaseGathering

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.extractAndMerge(ctx, client, rec, req)
	}()
	<-done

	symptoms := append([]string{}, rec.Symptoms...)
	return pkg.ChatResponse{
		Response:     reply,
		Symptoms:     symptoms,
		SymptomCount: len(symptoms),
	}, nil
}

// resolveLanguage picks the reply language for this turn: an explicit
// supported request language wins, otherwise the message is classified.
// The stored language is only overwritten on change so that short
// default-matching utterances do not flap it.
func (s *ChatService) resolveLanguage(req pkg.ChatRequest, rec *memory.ConversationRecord) string {
	detected := ""
	if req.Language != "" {
		if language.Supported(req.Language) {
			detected = req.Language
		} else {
			s.log.Warnw("unsupported language code, detecting from message", "name", req.Name, "language", req.Language)
		}
	}
	if detected == "" {
		detected = language.Detect(req.Message)
	}
	if detected != rec.Language {
		s.log.Infow("language switched", "name", req.Name, "from", rec.Language, "to", detected)
		rec.Language = detected
	}
	return rec.Language
}

// Summary returns the localized symptom summary for name, with
// near-duplicates merged under the same similarity contract the
// extractor uses. ok is false when no record exists.
func (s *ChatService) Summary(name string) (content string, ok bool) {
	rec, ok := s.store.Get(name)
	if !ok {
		return "", false
	}
	rec.Lock()
	defer rec.Unlock()
	merged := MergeSimilar(rec.Symptoms, s.opts.SimilarityThreshold)
	return summaryContent(merged, rec.Language), true
}

// isClearRequest matches reset keywords exactly after trim+lowercase.
func isClearRequest(message string) bool {
	_, ok := clearKeywords[strings.ToLower(strings.TrimSpace(message))]
	return ok
}

// shouldTriggerAssessment matches trigger phrases as case-insensitive
// substrings.
func shouldTriggerAssessment(message string) bool {
	lower := strings.ToLower(message)
	for _, trigger := range assessmentTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}

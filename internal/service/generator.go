package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/vaultpass/pwgen-go/internal/generator"
	"github.com/vaultpass/pwgen-go/internal/model"
)

const (
	defaultLength = 16
	defaultAmount = 1
)

var (
	ErrLengthTooLong      = errors.New("password length exceeds the maximum")
	ErrAmountTooLarge     = errors.New("password amount exceeds the limit for this caller")
	ErrHistoryUnavailable = errors.New("generation history is unavailable")
)

// EventStore persists the generation audit log.
type EventStore interface {
	Record(ctx context.Context, event *model.GenerationEvent) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]model.GenerationEvent, error)
}

// GeneratorLimits bounds what a single request may ask for.
type GeneratorLimits struct {
	MaxLength          int
	MaxAmountAnonymous int
	MaxAmountUser      int
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen    *generator.Generator
	limits GeneratorLimits
	events EventStore
}

// NewGeneratorService creates a new GeneratorService. events may be nil, in
// which case requests are not audited and history is unavailable.
func NewGeneratorService(gen *generator.Generator, limits GeneratorLimits, events EventStore) *GeneratorService {
	return &GeneratorService{gen: gen, limits: limits, events: events}
}

// MaxAmount returns the batch limit for a caller. userID is 0 for anonymous callers.
func (s *GeneratorService) MaxAmount(userID int64) int {
	if userID > 0 {
		return s.limits.MaxAmountUser
	}
	return s.limits.MaxAmountAnonymous
}

// Generate produces a batch of passwords for the given request.
func (s *GeneratorService) Generate(ctx context.Context, userID int64, req model.GenerateRequest) (model.GenerateResponse, error) {
	settings := settingsFromRequest(req)

	passwords, err := s.GenerateSettings(ctx, userID, settings)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Passwords: passwords,
		Length:    settings.Length,
		Amount:    len(passwords),
	}, nil
}

// GenerateSettings applies the caller's limits to settings, generates the
// batch and records the outcome.
func (s *GeneratorService) GenerateSettings(ctx context.Context, userID int64, settings generator.Settings) ([]string, error) {
	passwords, err := s.generate(userID, settings)
	s.record(ctx, userID, settings, err)
	return passwords, err
}

func (s *GeneratorService) generate(userID int64, settings generator.Settings) ([]string, error) {
	if settings.Length > s.limits.MaxLength {
		return nil, ErrLengthTooLong
	}
	if settings.Amount > s.MaxAmount(userID) {
		return nil, ErrAmountTooLarge
	}
	return s.gen.GenerateBatch(settings)
}

// record stores an audit event. Failures are logged and never fail the request.
func (s *GeneratorService) record(ctx context.Context, userID int64, settings generator.Settings, genErr error) {
	if s.events == nil {
		return
	}

	event := &model.GenerationEvent{
		UserID:  userID,
		Length:  settings.Length,
		Amount:  settings.Amount,
		Flags:   strings.Join(settings.Flags(), ","),
		Outcome: model.OutcomeOK,
	}
	if genErr != nil {
		event.Outcome = model.OutcomeError
		event.ErrorCode = ErrorCode(genErr)
	}

	if err := s.events.Record(ctx, event); err != nil {
		slog.Warn("recording generation event failed", "user_id", userID, "error", err)
	}
}

// History returns the caller's most recent generation events.
func (s *GeneratorService) History(ctx context.Context, userID int64, limit int) ([]model.GenerationEventResponse, error) {
	if s.events == nil {
		return nil, ErrHistoryUnavailable
	}

	events, err := s.events.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	return eventsToResponse(events), nil
}

// ErrorCode returns the machine-readable code reported for err. It extends
// generator.Code with the service's own limit errors.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrLengthTooLong):
		return "length_too_long"
	case errors.Is(err, ErrAmountTooLarge):
		return "amount_too_large"
	default:
		return generator.Code(err)
	}
}

func settingsFromRequest(req model.GenerateRequest) generator.Settings {
	s := generator.Settings{
		Length:        req.Length,
		Amount:        req.Amount,
		Numbers:       boolOrDefault(req.Numbers, true),
		Lowercase:     boolOrDefault(req.Lowercase, true),
		Uppercase:     boolOrDefault(req.Uppercase, true),
		Symbols:       boolOrDefault(req.Symbols, true),
		CustomSymbols: req.CustomSymbols,
		NoStartNumber: req.NoStartNumber,
		NoStartSymbol: req.NoStartSymbol,
		NoSimilar:     req.NoSimilar,
		NoDuplicate:   req.NoDuplicate,
		NoSequential:  req.NoSequential,
	}
	if s.Length == 0 {
		s.Length = defaultLength
	}
	if s.Amount == 0 {
		s.Amount = defaultAmount
	}
	return s
}

func eventsToResponse(events []model.GenerationEvent) []model.GenerationEventResponse {
	result := make([]model.GenerationEventResponse, len(events))
	for i, e := range events {
		var flags []string
		if e.Flags != "" {
			flags = strings.Split(e.Flags, ",")
		}
		result[i] = model.GenerationEventResponse{
			Length:    e.Length,
			Amount:    e.Amount,
			Flags:     flags,
			Outcome:   e.Outcome,
			ErrorCode: e.ErrorCode,
			CreatedAt: e.CreatedAt,
		}
	}
	return result
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

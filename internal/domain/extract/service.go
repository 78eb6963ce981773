package extract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/teds/teds/internal/episode"
	"github.com/teds/teds/internal/platform/metrics"
	"github.com/teds/teds/internal/validation"
)

// EventPublisher receives a notification after an extract has been persisted.
// Publishing is best-effort and never fails the ingest.
type EventPublisher interface {
	ExtractIngested(ctx context.Context, e *Extract)
}

// Service drives extract ingestion: metadata validation, per-record
// transformation and validation, duplicate detection, classification, status
// aggregation, and persistence.
type Service struct {
	repo      Repository
	ids       AdmissionIDStore
	workers   int
	publisher EventPublisher
	now       func() time.Time
	logger    zerolog.Logger
}

// NewService creates the ingest service. ids may be nil when no persistent
// duplicate registry is configured; workers bounds concurrent record
// validation and defaults to 8 when zero or negative.
func NewService(repo Repository, ids AdmissionIDStore, workers int) *Service {
	if workers <= 0 {
		workers = 8
	}
	return &Service{
		repo:    repo,
		ids:     ids,
		workers: workers,
		now:     time.Now,
		logger:  zerolog.Nop(),
	}
}

// SetLogger attaches a logger for non-fatal ingest diagnostics.
func (s *Service) SetLogger(logger zerolog.Logger) {
	s.logger = logger
}

// SetEventPublisher attaches an optional publisher for ingest events.
func (s *Service) SetEventPublisher(p EventPublisher) {
	s.publisher = p
}

// SetClock overrides the service clock. Tests use it to pin "today".
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Ingest validates and persists one submission batch.
//
// Extract metadata is validated first; any metadata issue aborts the call
// with the issue list and nothing is created. Otherwise entirely-blank rows
// are dropped, the remaining rows are validated concurrently (bounded by the
// worker limit) against the extract date context and the duplicate set, and
// the results are merged back in input order. The known set is snapshotted
// before validation starts and never mutated mid-batch; callers own its
// scope, and a configured AdmissionIDStore contributes identifiers from
// earlier extracts on top of it.
func (s *Service) Ingest(ctx context.Context, meta Meta, raws []map[string]string, known map[string]struct{}) (*Extract, []validation.Issue, error) {
	started := s.now()
	defer func() {
		metrics.ObserveIngestDuration(time.Since(started).Seconds())
	}()

	if issues := ValidateMeta(meta, s.now()); len(issues) > 0 {
		metrics.ExtractRejected()
		return nil, issues, nil
	}

	coverageStart, _ := time.Parse(validation.DateLayout, meta.CoverageStart)
	coverageEnd, _ := time.Parse(validation.DateLayout, meta.CoverageEnd)
	extractedOn, _ := time.Parse(validation.DateLayout, meta.ExtractedOn)
	epCtx := episode.Context{
		CoverageStart: coverageStart,
		CoverageEnd:   coverageEnd,
		ExtractedOn:   extractedOn,
		Today:         s.now(),
	}

	knownIDs, err := s.snapshotKnownIDs(ctx, meta.ProviderID, known)
	if err != nil {
		return nil, nil, err
	}

	// Blank rows are dropped before dispatch so positions reflect only the
	// rows that become records, in their original relative order.
	kept := make([]map[string]string, 0, len(raws))
	for _, raw := range raws {
		if !episode.IsBlank(raw) {
			kept = append(kept, raw)
		}
	}

	records := make([]*Record, len(kept))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, raw := range kept {
		i, raw := i, raw
		g.Go(func() error {
			records[i] = s.validateRecord(raw, epCtx, knownIDs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	now := s.now()
	e := &Extract{
		ID:            uuid.New(),
		ProviderID:    meta.ProviderID,
		RecordGroup:   meta.RecordGroup,
		CoverageStart: coverageStart,
		CoverageEnd:   coverageEnd,
		ExtractedOn:   extractedOn,
		FileName:      meta.FileName,
		SubmittedAt:   now,
	}
	for i, rec := range records {
		rec.ID = uuid.New()
		rec.ExtractID = e.ID
		rec.Position = i
		rec.CreatedAt = now
		e.Records = append(e.Records, rec)
	}
	e.Status = computeStatus(e.Records)

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, nil, fmt.Errorf("persist extract: %w", err)
	}

	s.recordMetrics(e)
	s.registerAdmissionIDs(ctx, meta.ProviderID, e)
	if s.publisher != nil {
		s.publisher.ExtractIngested(ctx, e)
	}
	return e, nil, nil
}

// validateRecord runs the full per-record pipeline. It is pure with respect
// to shared state: knownIDs is a read-only snapshot.
func (s *Service) validateRecord(raw map[string]string, epCtx episode.Context, knownIDs map[string]struct{}) *Record {
	warnings := []validation.Issue{}
	failures := []validation.Issue{}

	draft, err := episode.Transform(raw)
	if err != nil {
		failures = append(failures, validation.Fail("payload", validation.MissingValue, "payload has no content"))
	} else {
		issues := episode.Validate(draft, epCtx)
		if dup := CheckDuplicate(draft.Episode.Get("admission_id"), knownIDs); dup != nil {
			issues = append(issues, *dup)
		}
		w, f := validation.Classify(issues)
		warnings = append(warnings, w...)
		failures = append(failures, f...)
	}

	status := RecordPass
	if len(failures) > 0 {
		status = RecordFail
	}
	return &Record{
		Payload:  raw,
		Status:   status,
		Warnings: warnings,
		Failures: failures,
	}
}

// snapshotKnownIDs merges the caller-supplied duplicate set with the
// configured registry. The result is an immutable copy owned by this call.
func (s *Service) snapshotKnownIDs(ctx context.Context, providerID string, known map[string]struct{}) (map[string]struct{}, error) {
	snapshot := make(map[string]struct{}, len(known))
	for id := range known {
		snapshot[id] = struct{}{}
	}
	if s.ids != nil {
		stored, err := s.ids.Snapshot(ctx, providerID)
		if err != nil {
			return nil, fmt.Errorf("snapshot admission ids: %w", err)
		}
		for id := range stored {
			snapshot[id] = struct{}{}
		}
	}
	return snapshot, nil
}

// registerAdmissionIDs feeds the identifiers of accepted records back into
// the registry so later extracts see them. Best-effort: a registry error does
// not undo a persisted extract.
func (s *Service) registerAdmissionIDs(ctx context.Context, providerID string, e *Extract) {
	if s.ids == nil {
		return
	}
	var ids []string
	for _, rec := range e.Records {
		if rec.Status != RecordPass {
			continue
		}
		// Register the trimmed form; the duplicate check compares trimmed ids.
		if id := strings.TrimSpace(rec.Payload["admission_id"]); id != "" {
			ids = append(ids, id)
		}
	}
	if err := s.ids.Add(ctx, providerID, ids); err != nil {
		s.logger.Error().Err(err).Str("provider_id", providerID).Msg("register admission ids")
	}
}

func (s *Service) recordMetrics(e *Extract) {
	metrics.ExtractIngested(string(e.Status))
	for _, rec := range e.Records {
		metrics.RecordValidated(string(rec.Status))
		for _, issue := range rec.Warnings {
			metrics.IssueRaised(string(issue.Category), string(issue.Severity))
		}
		for _, issue := range rec.Failures {
			metrics.IssueRaised(string(issue.Category), string(issue.Severity))
		}
	}
}

// Get returns one extract aggregate with its records.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Extract, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns extract summaries, most recent submission first.
func (s *Service) List(ctx context.Context, providerID string, limit, offset int) ([]*Summary, int, error) {
	return s.repo.List(ctx, providerID, limit, offset)
}

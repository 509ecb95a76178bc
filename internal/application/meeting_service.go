package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EnvelopeStore captures the integrity-checked persistence interactions
// needed by the application services.
type EnvelopeStore interface {
	Put(ctx context.Context, key string, value any) (string, error)
	Get(ctx context.Context, key string, dest any) (bool, error)
}

// MeetingsKey is the persisted key holding the meeting collection.
const MeetingsKey = "meetings_data"

// MeetingService owns the in-memory meeting collection for the lifetime of a
// session and is the sole writer of the persisted copy. Every mutation
// persists the full collection in one store write; the in-memory state is
// only advanced after the write succeeds, so a failed persist leaves the
// last-known-good collection intact.
type MeetingService struct {
	store       EnvelopeStore
	meetings    []Meeting
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
	stats       *statsCache
}

// NewMeetingService wires dependencies for meeting operations.
func NewMeetingService(store EnvelopeStore, idGenerator func() string, now func() time.Time) *MeetingService {
	return NewMeetingServiceWithLogger(store, idGenerator, now, nil)
}

// NewMeetingServiceWithLogger wires dependencies including a base logger.
func NewMeetingServiceWithLogger(store EnvelopeStore, idGenerator func() string, now func() time.Time, logger *slog.Logger) *MeetingService {
	return NewMeetingServiceWithCache(store, idGenerator, now, logger, 0, 0)
}

// NewMeetingServiceWithCache additionally tunes the statistics cache. Zero
// ttl or maxEntries select the defaults.
func NewMeetingServiceWithCache(store EnvelopeStore, idGenerator func() string, now func() time.Time, logger *slog.Logger, cacheTTL time.Duration, cacheSize int) *MeetingService {
	if idGenerator == nil {
		idGenerator = NewMeetingID
	}
	if now == nil {
		now = time.Now
	}
	return &MeetingService{
		store:       store,
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
		stats:       newStatsCache(cacheTTL, cacheSize, now),
	}
}

// NewMeetingID returns a time-ordered unique identifier. UUIDv7 keeps ids
// monotonic with respect to creation order without the collision window of a
// bare wall-clock timestamp.
func NewMeetingID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Load initializes the in-memory collection from the store. An absent or
// corrupted envelope yields an empty collection; only backend read failures
// are returned, and even then the service starts empty.
func (s *MeetingService) Load(ctx context.Context) error {
	if s == nil {
		return fmt.Errorf("MeetingService is nil")
	}
	s.meetings = nil
	s.stats.Invalidate()

	if s.store == nil {
		return nil
	}

	var meetings []Meeting
	ok, err := s.store.Get(ctx, MeetingsKey, &meetings)
	if err != nil {
		serviceLogger(ctx, s.logger, "meetings", "load").Error("falling back to empty collection", "error", err, "kind", ErrorKind(err))
		return err
	}
	if ok {
		s.meetings = meetings
	}
	return nil
}

// List returns the collection sorted by (date, time) ascending. Entries with
// equal date and time keep their insertion order.
func (s *MeetingService) List() []Meeting {
	if s == nil {
		return nil
	}
	ordered := cloneMeetings(s.meetings)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Date == ordered[j].Date {
			return ordered[i].Time < ordered[j].Time
		}
		return ordered[i].Date < ordered[j].Date
	})
	return ordered
}

// Create validates the input, assigns a fresh id, appends the meeting and
// persists the full collection.
func (s *MeetingService) Create(ctx context.Context, input MeetingInput) (Meeting, error) {
	if s == nil {
		return Meeting{}, fmt.Errorf("MeetingService is nil")
	}

	vErr := &ValidationError{}
	validateMeetingInput(input, vErr)
	if vErr.HasErrors() {
		return Meeting{}, vErr
	}

	meeting := Meeting{
		ID:        s.idGenerator(),
		Title:     strings.TrimSpace(input.Title),
		Date:      input.Date,
		Time:      input.Time,
		Notes:     strings.TrimSpace(input.Notes),
		Rooms:     append([]string(nil), input.Rooms...),
		Equipment: append([]string(nil), input.Equipment...),
	}

	next := append(cloneMeetings(s.meetings), meeting)
	if err := s.persist(ctx, next); err != nil {
		return Meeting{}, err
	}
	s.meetings = next

	serviceLogger(ctx, s.logger, "meetings", "create", "meeting_id", meeting.ID).Info("meeting created")
	return meeting, nil
}

// Update replaces the mutable fields of the meeting with the given id.
func (s *MeetingService) Update(ctx context.Context, id string, input MeetingInput) (Meeting, error) {
	if s == nil {
		return Meeting{}, fmt.Errorf("MeetingService is nil")
	}

	index := s.indexOf(id)
	if index < 0 {
		return Meeting{}, ErrNotFound
	}

	vErr := &ValidationError{}
	validateMeetingInput(input, vErr)
	if vErr.HasErrors() {
		return Meeting{}, vErr
	}

	updated := Meeting{
		ID:        id,
		Title:     strings.TrimSpace(input.Title),
		Date:      input.Date,
		Time:      input.Time,
		Notes:     strings.TrimSpace(input.Notes),
		Rooms:     append([]string(nil), input.Rooms...),
		Equipment: append([]string(nil), input.Equipment...),
	}

	next := cloneMeetings(s.meetings)
	next[index] = updated
	if err := s.persist(ctx, next); err != nil {
		return Meeting{}, err
	}
	s.meetings = next

	serviceLogger(ctx, s.logger, "meetings", "update", "meeting_id", id).Info("meeting updated")
	return updated, nil
}

// Remove deletes the meeting with the given id.
func (s *MeetingService) Remove(ctx context.Context, id string) error {
	if s == nil {
		return fmt.Errorf("MeetingService is nil")
	}

	index := s.indexOf(id)
	if index < 0 {
		return ErrNotFound
	}

	next := cloneMeetings(s.meetings)
	next = append(next[:index], next[index+1:]...)
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.meetings = next

	serviceLogger(ctx, s.logger, "meetings", "remove", "meeting_id", id).Info("meeting removed")
	return nil
}

// Statistics reports the collection size and the number of meetings falling
// in the Monday-to-Sunday week containing now, both ends inclusive.
func (s *MeetingService) Statistics() MeetingStats {
	if s == nil {
		return MeetingStats{}
	}

	weekStart := startOfWeek(s.now())
	weekEnd := weekStart.AddDate(0, 0, 6)
	cacheKey := weekStart.Format("2006-01-02")

	if stats, ok := s.stats.Get(cacheKey); ok {
		return stats
	}

	startDate := weekStart.Format("2006-01-02")
	endDate := weekEnd.Format("2006-01-02")

	stats := MeetingStats{Total: len(s.meetings)}
	for _, meeting := range s.meetings {
		if meeting.Date >= startDate && meeting.Date <= endDate {
			stats.ThisWeek++
		}
	}

	s.stats.Store(cacheKey, stats)
	return stats
}

func (s *MeetingService) persist(ctx context.Context, meetings []Meeting) error {
	s.stats.Invalidate()
	if s.store == nil {
		return nil
	}
	if _, err := s.store.Put(ctx, MeetingsKey, meetings); err != nil {
		serviceLogger(ctx, s.logger, "meetings", "persist").Error("failed to persist collection", "error", err, "kind", ErrorKind(err))
		return err
	}
	return nil
}

func (s *MeetingService) indexOf(id string) int {
	for i, meeting := range s.meetings {
		if meeting.ID == id {
			return i
		}
	}
	return -1
}

func validateMeetingInput(input MeetingInput, vErr *ValidationError) {
	if strings.TrimSpace(input.Title) == "" {
		vErr.add("title", "title is required")
	}

	if strings.TrimSpace(input.Date) == "" {
		vErr.add("date", "date is required")
	} else if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		vErr.add("date", "date must be formatted YYYY-MM-DD")
	}

	if strings.TrimSpace(input.Time) == "" {
		vErr.add("time", "time is required")
	} else if _, err := time.Parse("15:04", input.Time); err != nil {
		vErr.add("time", "time must be formatted HH:MM")
	}
}

func cloneMeetings(meetings []Meeting) []Meeting {
	if len(meetings) == 0 {
		return nil
	}
	out := make([]Meeting, len(meetings))
	copy(out, meetings)
	return out
}

// startOfWeek returns midnight of the Monday beginning the week containing t.
func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	// Monday-first: in Go, Monday == 1 and Sunday == 0.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/business-portal/internal/application"
)

var meetingCounter uint64

var referenceTime = time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
// It falls on a Wednesday, so the surrounding week runs January 13th
// through the 19th.
func ReferenceTime() time.Time {
	return referenceTime
}

// MeetingFixture represents a deterministic meeting record that can be
// materialised for application or persistence tests.
type MeetingFixture struct {
	ID        string
	Title     string
	Date      string
	Time      string
	Notes     string
	Rooms     []string
	Equipment []string
}

// MeetingOption configures the generated meeting fixture.
type MeetingOption func(*MeetingFixture)

// NewMeetingFixture returns a deterministic meeting fixture with optional
// overrides. Successive fixtures land on successive days.
func NewMeetingFixture(opts ...MeetingOption) MeetingFixture {
	idx := atomic.AddUint64(&meetingCounter, 1)
	fixture := MeetingFixture{
		ID:    fmt.Sprintf("meeting-%03d", idx),
		Title: fmt.Sprintf("Meeting %03d", idx),
		Date:  referenceTime.AddDate(0, 0, int(idx)).Format("2006-01-02"),
		Time:  "10:00",
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithMeetingID overrides the generated meeting ID.
func WithMeetingID(id string) MeetingOption {
	return func(f *MeetingFixture) {
		f.ID = id
	}
}

// WithMeetingTitle overrides the generated title.
func WithMeetingTitle(title string) MeetingOption {
	return func(f *MeetingFixture) {
		f.Title = title
	}
}

// WithMeetingDate sets the meeting date (YYYY-MM-DD).
func WithMeetingDate(date string) MeetingOption {
	return func(f *MeetingFixture) {
		f.Date = date
	}
}

// WithMeetingTime sets the meeting time (HH:MM).
func WithMeetingTime(value string) MeetingOption {
	return func(f *MeetingFixture) {
		f.Time = value
	}
}

// WithMeetingNotes sets the free-form notes field.
func WithMeetingNotes(notes string) MeetingOption {
	return func(f *MeetingFixture) {
		f.Notes = notes
	}
}

// WithMeetingRooms sets the requested rooms.
func WithMeetingRooms(rooms ...string) MeetingOption {
	return func(f *MeetingFixture) {
		f.Rooms = append([]string(nil), rooms...)
	}
}

// WithMeetingEquipment sets the requested equipment.
func WithMeetingEquipment(equipment ...string) MeetingOption {
	return func(f *MeetingFixture) {
		f.Equipment = append([]string(nil), equipment...)
	}
}

// Application returns the fixture as an application.Meeting value.
func (f MeetingFixture) Application() application.Meeting {
	return application.Meeting{
		ID:        f.ID,
		Title:     f.Title,
		Date:      f.Date,
		Time:      f.Time,
		Notes:     f.Notes,
		Rooms:     append([]string(nil), f.Rooms...),
		Equipment: append([]string(nil), f.Equipment...),
	}
}

// Input returns the fixture as an application.MeetingInput.
func (f MeetingFixture) Input() application.MeetingInput {
	return application.MeetingInput{
		Title:     f.Title,
		Date:      f.Date,
		Time:      f.Time,
		Notes:     f.Notes,
		Rooms:     append([]string(nil), f.Rooms...),
		Equipment: append([]string(nil), f.Equipment...),
	}
}

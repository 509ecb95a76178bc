package application

import "time"

// Meeting represents a persisted appointment in the portal calendar.
type Meeting struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Notes     string   `json:"notes,omitempty"`
	Rooms     []string `json:"rooms"`
	Equipment []string `json:"equipment"`
}

// MeetingInput captures caller provided meeting fields.
type MeetingInput struct {
	Title     string
	Date      string
	Time      string
	Notes     string
	Rooms     []string
	Equipment []string
}

// MeetingStats summarizes the meeting collection for the dashboard chrome.
type MeetingStats struct {
	Total    int
	ThisWeek int
}

// DashboardSnapshot holds the headline figures persisted for the dashboard.
type DashboardSnapshot struct {
	Turnover    int64  `json:"turnover"`
	Taxes       int64  `json:"taxes"`
	Flow        int64  `json:"flow"`
	LastUpdated string `json:"lastUpdated"`
}

// Notification is a dashboard feed entry.
type Notification struct {
	Text string
	Type string
}

// GovStatus reports the state of a filed government document.
type GovStatus struct {
	Title  string
	Status string
}

// Office represents a branch in the office directory.
type Office struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Lead         string   `json:"lead"`
	Phone        string   `json:"phone"`
	X            int      `json:"x"`
	Y            int      `json:"y"`
	Services     []string `json:"services"`
	WorkingHours string   `json:"workingHours"`
}

// VisitGoal identifies the purpose of a planned branch visit.
type VisitGoal string

const (
	// VisitGoalOpenSoleProprietorCredit combines registration with a credit application.
	VisitGoalOpenSoleProprietorCredit VisitGoal = "open_ip_credit"
	// VisitGoalOpenSoleProprietor covers sole proprietor registration only.
	VisitGoalOpenSoleProprietor VisitGoal = "open_ip"
	// VisitGoalCredit covers a standalone credit application.
	VisitGoalCredit VisitGoal = "credit"
	// VisitGoalTaxConsultation covers a tax consultation appointment.
	VisitGoalTaxConsultation VisitGoal = "consult_tax"
)

// VisitPlan lists the documents to prepare for a branch visit.
type VisitPlan struct {
	Goal      VisitGoal
	Date      string
	Documents []string
}

// VaultDocument is an entry revealed after the vault gate is passed.
type VaultDocument struct {
	Name    string
	Updated string
}

// Partner represents a directory entry for partner discovery.
type Partner struct {
	Name string
	Tags []string
}

// PartnerEvent is an upcoming community event shown alongside partners.
type PartnerEvent struct {
	Title string
	Date  string
}

// ReferenceTime formats a wall-clock instant the way the portal displays
// last-updated stamps.
func ReferenceTime(t time.Time) string {
	return t.Format("02.01.2006 15:04:05")
}

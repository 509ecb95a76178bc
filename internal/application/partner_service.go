package application

import "strings"

// PartnerService answers partner-discovery queries over a static pool and
// lists upcoming community events.
type PartnerService struct {
	pool   []Partner
	events []PartnerEvent
}

// NewPartnerService wires the partner directory. Nil arguments select the
// default pool and event listing.
func NewPartnerService(pool []Partner, events []PartnerEvent) *PartnerService {
	if pool == nil {
		pool = DefaultPartners()
	}
	if events == nil {
		events = DefaultPartnerEvents()
	}
	return &PartnerService{pool: pool, events: events}
}

// Find returns partners whose name or tags match the query, case
// insensitively. An empty query matches everyone.
func (s *PartnerService) Find(query string) []Partner {
	if s == nil {
		return nil
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	matched := make([]Partner, 0, len(s.pool))
	for _, partner := range s.pool {
		if needle == "" || partnerMatches(partner, needle) {
			matched = append(matched, partner)
		}
	}
	return matched
}

// UpcomingEvents returns the community event listing.
func (s *PartnerService) UpcomingEvents() []PartnerEvent {
	if s == nil {
		return nil
	}
	return append([]PartnerEvent(nil), s.events...)
}

func partnerMatches(partner Partner, needle string) bool {
	if strings.Contains(strings.ToLower(partner.Name), needle) {
		return true
	}
	for _, tag := range partner.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// DefaultPartners returns the seeded partner pool.
func DefaultPartners() []Partner {
	return []Partner{
		{Name: "Sever Logistics Center", Tags: []string{"logistics"}},
		{Name: "Marketing Plus", Tags: []string{"marketing"}},
		{Name: "SupplyService", Tags: []string{"supplies"}},
		{Name: "IT integrator Vektor", Tags: []string{"integrations", "software"}},
	}
}

// DefaultPartnerEvents returns the seeded event listing.
func DefaultPartnerEvents() []PartnerEvent {
	return []PartnerEvent{
		{Title: "Tax basics for the self-employed", Date: "12.10.2025"},
		{Title: "Workshop: export and foreign trade", Date: "20.10.2025"},
	}
}

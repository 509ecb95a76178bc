package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// OfficesKey is the persisted key holding the office directory.
const OfficesKey = "offices_data"

// OfficeService serves the branch directory and plans branch visits. The
// directory is seeded from a fixed catalog and written through the store so
// the persisted copy carries an integrity digest like every other key.
type OfficeService struct {
	store   EnvelopeStore
	offices []Office
	logger  *slog.Logger
}

// NewOfficeService wires dependencies for directory operations. A nil seed
// selects the default catalog.
func NewOfficeService(store EnvelopeStore, seed []Office, logger *slog.Logger) *OfficeService {
	if seed == nil {
		seed = DefaultOffices()
	}
	return &OfficeService{store: store, offices: seed, logger: defaultLogger(logger)}
}

// Sync persists the seeded directory.
func (s *OfficeService) Sync(ctx context.Context) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("OfficeService is not configured")
	}
	if _, err := s.store.Put(ctx, OfficesKey, s.offices); err != nil {
		serviceLogger(ctx, s.logger, "offices", "sync").Error("failed to persist directory", "error", err, "kind", ErrorKind(err))
		return err
	}
	return nil
}

// List returns the directory, preferring the persisted copy and falling back
// to the seed when the stored envelope is absent or untrusted.
func (s *OfficeService) List(ctx context.Context) ([]Office, error) {
	if s == nil {
		return nil, fmt.Errorf("OfficeService is nil")
	}
	if s.store != nil {
		var stored []Office
		ok, err := s.store.Get(ctx, OfficesKey, &stored)
		if err != nil {
			return nil, err
		}
		if ok {
			return stored, nil
		}
	}
	return cloneOffices(s.offices), nil
}

// Get returns the office with the given id.
func (s *OfficeService) Get(ctx context.Context, id string) (Office, error) {
	offices, err := s.List(ctx)
	if err != nil {
		return Office{}, err
	}
	for _, office := range offices {
		if office.ID == id {
			return office, nil
		}
	}
	return Office{}, ErrNotFound
}

// FilterByService returns offices advertising the given service.
func (s *OfficeService) FilterByService(ctx context.Context, service string) ([]Office, error) {
	offices, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(service))
	if needle == "" {
		return offices, nil
	}

	matched := make([]Office, 0, len(offices))
	for _, office := range offices {
		for _, candidate := range office.Services {
			if strings.ToLower(candidate) == needle {
				matched = append(matched, office)
				break
			}
		}
	}
	return matched, nil
}

// PlanVisit validates the visit request and returns the document preset for
// the chosen goal.
func (s *OfficeService) PlanVisit(goal VisitGoal, date string) (VisitPlan, error) {
	vErr := &ValidationError{}

	documents, known := documentPresets[goal]
	if goal == "" {
		vErr.add("goal", "visit goal is required")
	} else if !known {
		vErr.add("goal", "unknown visit goal")
	}

	if strings.TrimSpace(date) == "" {
		vErr.add("date", "visit date is required")
	}

	if vErr.HasErrors() {
		return VisitPlan{}, vErr
	}

	return VisitPlan{
		Goal:      goal,
		Date:      strings.TrimSpace(date),
		Documents: append([]string(nil), documents...),
	}, nil
}

// DocumentsForGoal returns the documents required for a visit goal, or nil
// for an unknown goal.
func (s *OfficeService) DocumentsForGoal(goal VisitGoal) []string {
	return append([]string(nil), documentPresets[goal]...)
}

var documentPresets = map[VisitGoal][]string{
	VisitGoalOpenSoleProprietorCredit: {
		"Sole proprietor registration form",
		"Passport",
		"Credit application",
		"Account statement",
	},
	VisitGoalOpenSoleProprietor: {
		"Sole proprietor registration form",
		"Passport",
	},
	VisitGoalCredit: {
		"Credit application",
		"Business plan",
		"Profit and loss statement",
	},
	VisitGoalTaxConsultation: {
		"Transaction history",
		"Account statement",
	},
}

// DefaultOffices returns the seeded branch catalog.
func DefaultOffices() []Office {
	return []Office{
		{
			ID:           "O1",
			Name:         "Head Office",
			Address:      "12 Tverskaya St, bldg 1, Moscow",
			Lead:         "Anna Petrova",
			Phone:        "+7 (495) 123-45-67",
			X:            18,
			Y:            20,
			Services:     []string{"loans", "sole-proprietor", "consulting"},
			WorkingHours: "9:00 - 21:00",
		},
		{
			ID:           "O2",
			Name:         "Arbat Branch",
			Address:      "25 Arbat St, Moscow",
			Lead:         "Mikhail Sidorov",
			Phone:        "+7 (495) 234-56-78",
			X:            75,
			Y:            35,
			Services:     []string{"sole-proprietor", "taxes"},
			WorkingHours: "10:00 - 20:00",
		},
		{
			ID:           "O3",
			Name:         "Red Square Branch",
			Address:      "1 Red Square, Moscow",
			Lead:         "Elena Kozlova",
			Phone:        "+7 (495) 345-67-89",
			X:            85,
			Y:            75,
			Services:     []string{"vip-service", "loans"},
			WorkingHours: "8:00 - 22:00",
		},
	}
}

func cloneOffices(offices []Office) []Office {
	if len(offices) == 0 {
		return nil
	}
	out := make([]Office, len(offices))
	copy(out, offices)
	return out
}

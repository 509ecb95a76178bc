package testfixtures

import (
	"log/slog"
	"time"

	"github.com/example/business-portal/internal/application"
)

// ServiceFactory assists tests with constructing application services using
// deterministic identifiers and clocks.
type ServiceFactory struct {
	Clock       *Clock
	IDGenerator *IDGenerator
}

// ServiceFactoryOption configures a ServiceFactory instance.
type ServiceFactoryOption func(*ServiceFactory)

// NewServiceFactory constructs a ServiceFactory with defaults.
func NewServiceFactory(opts ...ServiceFactoryOption) *ServiceFactory {
	factory := &ServiceFactory{
		Clock:       NewClock(time.Time{}),
		IDGenerator: NewIDGenerator("id"),
	}
	for _, opt := range opts {
		opt(factory)
	}
	if factory.Clock == nil {
		factory.Clock = NewClock(time.Time{})
	}
	if factory.IDGenerator == nil {
		factory.IDGenerator = NewIDGenerator("id")
	}
	return factory
}

// WithClock overrides the clock used by the factory.
func WithClock(clock *Clock) ServiceFactoryOption {
	return func(factory *ServiceFactory) {
		factory.Clock = clock
	}
}

// WithIDGenerator overrides the identifier generator used by the factory.
func WithIDGenerator(generator *IDGenerator) ServiceFactoryOption {
	return func(factory *ServiceFactory) {
		factory.IDGenerator = generator
	}
}

// MeetingServiceDeps captures dependencies for constructing a meeting service.
type MeetingServiceDeps struct {
	Store       application.EnvelopeStore
	IDGenerator func() string
	Now         func() time.Time
	Logger      *slog.Logger
}

// NewMeetingService builds a meeting service using the supplied dependencies
// combined with the factory defaults.
func (f *ServiceFactory) NewMeetingService(deps MeetingServiceDeps) *application.MeetingService {
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = f.IDGenerator.NextFunc()
	}
	now := deps.Now
	if now == nil {
		now = f.Clock.NowFunc()
	}
	return application.NewMeetingServiceWithLogger(deps.Store, idGen, now, deps.Logger)
}

// DashboardServiceDeps captures dependencies for constructing a dashboard service.
type DashboardServiceDeps struct {
	Store  application.EnvelopeStore
	Now    func() time.Time
	Logger *slog.Logger
}

// NewDashboardService builds a dashboard service using the supplied dependencies.
func (f *ServiceFactory) NewDashboardService(deps DashboardServiceDeps) *application.DashboardService {
	now := deps.Now
	if now == nil {
		now = f.Clock.NowFunc()
	}
	return application.NewDashboardService(deps.Store, now, deps.Logger)
}

// VaultServiceDeps captures dependencies for constructing a vault service.
type VaultServiceDeps struct {
	Store     application.EnvelopeStore
	Documents []application.VaultDocument
	Logger    *slog.Logger
}

// NewVaultService builds a vault service using the supplied dependencies.
func (f *ServiceFactory) NewVaultService(deps VaultServiceDeps) *application.VaultService {
	return application.NewVaultService(deps.Store, deps.Documents, deps.Logger)
}

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/business-portal/internal/application"
	"github.com/example/business-portal/internal/config"
	"github.com/example/business-portal/internal/persistence/sqlite"
	"github.com/example/business-portal/internal/store"
)

// app holds the wired service graph shared by every subcommand. It is
// populated once in the root command's PersistentPreRunE.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	storage *sqlite.Storage
	store   *store.Store

	meetings  *application.MeetingService
	dashboard *application.DashboardService
	offices   *application.OfficeService
	vault     *application.VaultService
	partners  *application.PartnerService
}

func (a *app) init(cmd *cobra.Command) error {
	a.logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		a.logger.Error("failed to load configuration", "error", err)
		return err
	}
	a.cfg = cfg

	storage, err := sqlite.Open(cfg.SQLiteDSN)
	if err != nil {
		a.logger.Error("failed to open storage", "error", err, "dsn", cfg.SQLiteDSN)
		return err
	}
	a.storage = storage

	if err := storage.Migrate(cmd.Context()); err != nil {
		a.logger.Error("failed to apply migrations", "error", err)
		_ = storage.Close()
		return err
	}

	a.store = store.New(storage, time.Now, a.logger)
	a.meetings = application.NewMeetingServiceWithCache(a.store, nil, time.Now, a.logger, cfg.CacheTTL, cfg.CacheSize)
	a.dashboard = application.NewDashboardService(a.store, time.Now, a.logger)
	a.offices = application.NewOfficeService(a.store, nil, a.logger)
	a.vault = application.NewVaultService(a.store, nil, a.logger)
	a.partners = application.NewPartnerService(nil, nil)

	if err := a.meetings.Load(cmd.Context()); err != nil {
		a.logger.Warn("meeting collection unavailable, starting empty", "error", err)
	}
	return nil
}

func (a *app) close() {
	if a.storage == nil {
		return
	}
	if err := a.storage.Close(); err != nil {
		a.logger.Error("failed to close storage", "error", err)
	}
	a.storage = nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "portal",
		Short:         "Business portal over an integrity-checked local store",
		Long:          "portal manages meetings, the branch directory, the document vault and dashboard figures, persisting everything through a tamper-evident SQLite-backed store.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	root.AddCommand(
		newMeetingsCmd(a),
		newCalendarCmd(a),
		newDashboardCmd(a),
		newOfficesCmd(a),
		newPartnersCmd(a),
		newCalcCmd(a),
		newVaultCmd(a),
	)
	return root
}

// reportError unwraps validation errors into per-field lines so the CLI
// mirrors the field messages the services produce.
func reportError(cmd *cobra.Command, err error) error {
	var vErr *application.ValidationError
	if errors.As(err, &vErr) {
		fields := make([]string, 0, len(vErr.FieldErrors))
		for field := range vErr.FieldErrors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, vErr.FieldErrors[field])
		}
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

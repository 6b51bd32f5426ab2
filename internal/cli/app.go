// Package cli implements the coffee-trade command line tool: schema
// migrations, legacy imports, CSV exports and period summaries printed as
// terminal tables.
package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/api/request"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/apperrors"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/config"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/database"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/fieldcrypt"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/logger"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/period"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/repository"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/service"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/version"
)

// App is the command line application.
type App struct {
	rootCmd *cobra.Command
	dbPath  string
	now     func() time.Time
}

// env holds the services a command runs against.
type env struct {
	db         *sql.DB
	loc        *time.Location
	aspirantes *service.AspiranteService
	dashboard  *service.DashboardService
	snapshots  *service.SnapshotService
	exports    *service.ExportService
}

// NewApp builds the command tree.
func NewApp() *App {
	app := &App{now: time.Now}

	rootCmd := &cobra.Command{
		Use:           "coffee-trade",
		Short:         "Coffee Trade Manager command line tool",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&app.dbPath, "db", "", "Path to the SQLite database (default: DB_PATH)")

	rootCmd.AddCommand(
		app.migrateCmd(),
		app.importCmd(),
		app.exportCmd(),
		app.summaryCmd(),
		app.snapshotCmd(),
	)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *App) Execute() error {
	return app.rootCmd.Execute()
}

// open loads configuration, opens and migrates the database and builds the services.
func (app *App) open(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if app.dbPath != "" {
		cfg.Database.Path = app.dbPath
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	cipher, err := fieldcrypt.New(cfg.Security.FieldEncryptionKey)
	if err != nil {
		db.Close()
		return nil, err
	}

	loc := cfg.Locale.Location
	aspiranteRepo := repository.NewAspiranteRepository(db, cipher)
	aspiranteService := service.NewAspiranteService(db, aspiranteRepo, loc)

	return &env{
		db:         db,
		loc:        loc,
		aspirantes: aspiranteService,
		dashboard:  service.NewDashboardService(aspiranteRepo, loc),
		snapshots: service.NewSnapshotService(
			aspiranteRepo,
			repository.NewSnapshotRepository(db),
			loc,
			logger.New(zerolog.WarnLevel),
		),
		exports: service.NewExportService(aspiranteService, loc),
	}, nil
}

func (app *App) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := app.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.db.Close()

			v, err := database.SchemaVersion(cmd.Context(), e.db)
			if err != nil {
				return err
			}
			pterm.Success.Printfln("Database schema at version %d", v)
			return nil
		},
	}
}

func (app *App) importCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a JSON export of the legacy records API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}

			var records []request.LegacyAspirante
			if err := json.Unmarshal(data, &records); err != nil {
				return fmt.Errorf("%s is not a JSON array of records: %w", file, err)
			}

			e, err := app.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.db.Close()

			result, err := e.aspirantes.ImportLegacy(cmd.Context(), records)
			if err != nil {
				return err
			}
			pterm.Success.Printfln("Imported %d records, skipped %d already present", result.Imported, result.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Legacy JSON export")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// periodFlags mirrors the HTTP period query parameters, with a 1-based month.
type periodFlags struct {
	period string
	days   int
	months int
	year   int
	month  int
	week   int
	date   string
}

func (f *periodFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.period, "period", "all", "all, recent, recent-months, week, date or month")
	cmd.Flags().IntVar(&f.days, "days", request.DefaultRecentDays, "Days for --period recent")
	cmd.Flags().IntVar(&f.months, "months", request.DefaultRecentMonths, "Months for --period recent-months")
	cmd.Flags().IntVar(&f.year, "year", 0, "Year for --period week or month")
	cmd.Flags().IntVar(&f.month, "month", 0, "Month 1-12 for --period week or month")
	cmd.Flags().IntVar(&f.week, "week", 0, "Week of month 1-5 for --period week")
	cmd.Flags().StringVar(&f.date, "date", "", "Day YYYY-MM-DD for --period date")
}

func (f *periodFlags) selector(loc *time.Location) (period.Selector, error) {
	params := request.PeriodParams{
		Period: f.period,
		Days:   strconv.Itoa(f.days),
		Months: strconv.Itoa(f.months),
		Year:   strconv.Itoa(f.year),
		Week:   strconv.Itoa(f.week),
		Date:   f.date,
	}
	switch period.Kind(strings.ToLower(strings.TrimSpace(f.period))) {
	case period.KindWeek, period.KindMonth:
		month, err := monthIndex(f.month)
		if err != nil {
			return period.Selector{}, err
		}
		params.Month = month
	}
	return request.ParsePeriod(params, loc)
}

// monthIndex converts a 1-12 month flag to the 0-based index the period
// parameters use.
func monthIndex(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrInvalidPeriod)
	}
	return strconv.Itoa(month - 1), nil
}

// defaultBucket fills zero year, month and week flags from now in loc.
func defaultBucket(now time.Time, loc *time.Location, year, month, week *int) {
	now = now.In(loc)
	if *year == 0 {
		*year = now.Year()
	}
	if *month == 0 {
		*month = int(now.Month())
	}
	if week != nil && *week == 0 {
		*week = period.WeekOfMonth(now, loc)
	}
}

func (app *App) exportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export records",
	}

	var (
		out    string
		search string
		pf     periodFlags
	)

	csvCmd := &cobra.Command{
		Use:   "csv",
		Short: "Write the records of a period as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := app.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.db.Close()

			sel, err := pf.selector(e.loc)
			if err != nil {
				return err
			}

			body, err := e.exports.CSV(cmd.Context(), search, sel)
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(body)
				return err
			}
			if err := os.WriteFile(out, body, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			pterm.Success.Printfln("Wrote %s (%s)", out, sel)
			return nil
		},
	}
	csvCmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout)")
	csvCmd.Flags().StringVar(&search, "search", "", "Only records whose name or identification contains this text")
	pf.register(csvCmd)

	exportCmd.AddCommand(csvCmd)
	return exportCmd
}

func (app *App) summaryCmd() *cobra.Command {
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print period summaries",
	}

	var year, month, week int

	weekCmd := &cobra.Command{
		Use:   "week",
		Short: "Summary of one week-of-month bucket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := app.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.db.Close()

			defaultBucket(app.now(), e.loc, &year, &month, &week)
			monthParam, err := monthIndex(month)
			if err != nil {
				return err
			}
			sel, err := request.ParsePeriod(request.PeriodParams{
				Period: string(period.KindWeek),
				Year:   strconv.Itoa(year),
				Month:  monthParam,
				Week:   strconv.Itoa(week),
			}, e.loc)
			if err != nil {
				return err
			}

			ws, err := e.dashboard.Week(cmd.Context(), sel.Year, sel.Month, sel.Week)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), RenderWeek(ws))
			return nil
		},
	}
	weekCmd.Flags().IntVar(&year, "year", 0, "Year (default: current year in TIMEZONE)")
	weekCmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default: current month in TIMEZONE)")
	weekCmd.Flags().IntVar(&week, "week", 0, "Week of month 1-5 (default: current week in TIMEZONE)")

	var monthYear, monthMonth int
	monthCmd := &cobra.Command{
		Use:   "month",
		Short: "Summaries of the five week buckets of a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := app.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.db.Close()

			defaultBucket(app.now(), e.loc, &monthYear, &monthMonth, nil)
			monthParam, err := monthIndex(monthMonth)
			if err != nil {
				return err
			}
			sel, err := request.ParsePeriod(request.PeriodParams{
				Period: string(period.KindMonth),
				Year:   strconv.Itoa(monthYear),
				Month:  monthParam,
			}, e.loc)
			if err != nil {
				return err
			}

			weeks, err := e.dashboard.MonthBreakdown(cmd.Context(), sel.Year, sel.Month)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), RenderMonth(weeks))
			return nil
		},
	}
	monthCmd.Flags().IntVar(&monthYear, "year", 0, "Year (default: current year in TIMEZONE)")
	monthCmd.Flags().IntVar(&monthMonth, "month", 0, "Month 1-12 (default: current month in TIMEZONE)")

	var days int
	recentCmd := &cobra.Command{
		Use:   "recent",
		Short: "Summary of the last days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := app.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.db.Close()

			sel, err := request.ParsePeriod(request.PeriodParams{
				Period: string(period.KindRecent),
				Days:   strconv.Itoa(days),
			}, e.loc)
			if err != nil {
				return err
			}

			overview, err := e.dashboard.Overview(cmd.Context(), sel)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), RenderSummary(fmt.Sprintf("Last %d days (%d records)", days, len(overview.Records)), overview.Summary))
			return nil
		},
	}
	recentCmd.Flags().IntVar(&days, "days", request.DefaultRecentDays, "Number of days")

	summaryCmd.AddCommand(weekCmd, monthCmd, recentCmd)
	return summaryCmd
}

func (app *App) snapshotCmd() *cobra.Command {
	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage stored weekly snapshots",
	}

	refreshCmd := &cobra.Command{
		Use:   "refresh",
		Short: "Recompute the snapshot of the current week",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := app.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.db.Close()

			snap, err := e.snapshots.RefreshCurrentWeek(cmd.Context())
			if err != nil {
				return err
			}
			pterm.Success.Printfln("Stored %d-%02d week %d (%d records)", snap.Year, snap.Month, snap.Week, snap.RecordCount)
			return nil
		},
	}

	snapshotCmd.AddCommand(refreshCmd)
	return snapshotCmd
}

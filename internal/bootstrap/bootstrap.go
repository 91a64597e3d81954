package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	backupinadapter "tempo/internal/modules/backup/adapter/in"
	backupoutadapter "tempo/internal/modules/backup/adapter/out"
	backupout "tempo/internal/modules/backup/port/out"
	backupusecase "tempo/internal/modules/backup/usecase"
	reportinadapter "tempo/internal/modules/report/adapter/in"
	reportoutadapter "tempo/internal/modules/report/adapter/out"
	reportservice "tempo/internal/modules/report/service"
	reportusecase "tempo/internal/modules/report/usecase"
	sessioninadapter "tempo/internal/modules/session/adapter/in"
	sessionoutadapter "tempo/internal/modules/session/adapter/out"
	sessionservice "tempo/internal/modules/session/service"
	sessionusecase "tempo/internal/modules/session/usecase"
	statsinadapter "tempo/internal/modules/stats/adapter/in"
	statsusecase "tempo/internal/modules/stats/usecase"
	timerinadapter "tempo/internal/modules/timer/adapter/in"
	timeroutadapter "tempo/internal/modules/timer/adapter/out"
	timerservice "tempo/internal/modules/timer/service"
	timerusecase "tempo/internal/modules/timer/usecase"
	"tempo/internal/platform/clock"
	"tempo/internal/platform/config"
	"tempo/internal/platform/id"
	uiapp "tempo/internal/ui/app"
)

type App struct {
	SessionCLI sessioninadapter.CLIHandler
	TimerCLI   timerinadapter.CLIHandler
	StatsCLI   statsinadapter.CLIHandler
	BackupCLI  backupinadapter.CLIHandler
	ReportCLI  reportinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	sessionStore, err := sessionoutadapter.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new session store: %w", err)
	}
	sessionUC := sessionusecase.NewInteractor(sessionservice.NewSessionService(sessionStore))

	timerUC := timerusecase.NewInteractor(
		timerservice.NewTimerService(clk, ids),
		timeroutadapter.NewFileRunStore(cfg.TimerPath),
		sessionUC,
	)

	statsUC := statsusecase.NewInteractor(sessionUC, clk)

	// Backup stays wired but inert until a WebDAV endpoint is set.
	var remote backupout.RemoteStore
	if cfg.WebDav.Configured() {
		remote = backupoutadapter.NewWebDavClient(cfg.WebDav.URL, cfg.WebDav.Username, cfg.WebDav.Password)
	}
	backupUC := backupusecase.NewInteractor(sessionUC, remote)

	reportUC := reportusecase.NewInteractor(reportservice.NewReportService(
		reportoutadapter.NewFileManifestStore(cfg.PluginsPath),
		reportoutadapter.NewGRPCHost(),
	), sessionUC)

	return &App{
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
		TimerCLI:   timerinadapter.NewCLIHandler(timerUC),
		StatsCLI:   statsinadapter.NewCLIHandler(statsUC),
		BackupCLI:  backupinadapter.NewCLIHandler(backupUC),
		ReportCLI:  reportinadapter.NewCLIHandler(reportUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.TimerCLI, app.SessionCLI, app.StatsCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

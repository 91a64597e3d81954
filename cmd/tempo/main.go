package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tempo/internal/bootstrap"
	reportdto "tempo/internal/modules/report/dto"
	sessiondto "tempo/internal/modules/session/dto"
	timerdto "tempo/internal/modules/timer/dto"
	"tempo/internal/platform/config"
	"tempo/internal/platform/timefmt"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "tempo",
		Short:         "Personal activity timer and journal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir(), "data directory")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newTimerCmd(&dataDir))
	root.AddCommand(newSessionCmd(&dataDir))
	root.AddCommand(newStatsCmd(&dataDir))
	root.AddCommand(newExportCmd(&dataDir))
	root.AddCommand(newImportCmd(&dataDir))
	root.AddCommand(newBackupCmd(&dataDir))
	root.AddCommand(newReportCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run tempo terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newTimerCmd(dataDir *string) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Timer lifecycle"}

	timer.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Start or resume the timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.TimerCLI.Start(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "timer %s elapsed=%s\n", out.State, timefmt.Clock(out.ElapsedSec))
			return nil
		},
	})

	timer.AddCommand(&cobra.Command{
		Use:   "pause",
		Short: "Pause the running timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.TimerCLI.Pause(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "timer paused elapsed=%s\n", timefmt.Clock(out.ElapsedSec))
			return nil
		},
	})

	timer.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show timer state and elapsed time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.TimerCLI.Status(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "state=%s elapsed=%s\n", out.State, timefmt.Clock(out.ElapsedSec))
			return nil
		},
	})

	timer.AddCommand(&cobra.Command{
		Use:   "stop",
		Short: "Stop the timer and freeze the elapsed time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.TimerCLI.Stop(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stopped at %s, run `tempo timer commit` to record\n", timefmt.Clock(out.ElapsedSec))
			return nil
		},
	})

	var remark, location, mood, props string
	var rating float64
	var watchedMovie, climax bool
	commit := &cobra.Command{
		Use:   "commit",
		Short: "Record the stopped run as a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.TimerCLI.Commit(context.Background(), timerdto.AnnotateInput{
				Remark:       remark,
				Location:     location,
				WatchedMovie: watchedMovie,
				Climax:       climax,
				Rating:       rating,
				Mood:         mood,
				Props:        props,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded session %d duration=%s\n", out.SessionID, timefmt.Duration(out.DurationSec))
			return nil
		},
	}
	commit.Flags().StringVar(&remark, "remark", "", "remark")
	commit.Flags().StringVar(&location, "location", "", "location")
	commit.Flags().Float64Var(&rating, "rating", 3.0, "rating 0..5")
	commit.Flags().StringVar(&mood, "mood", "平静", "mood")
	commit.Flags().StringVar(&props, "props", "手", "props")
	commit.Flags().BoolVar(&watchedMovie, "watched-movie", false, "watched a movie")
	commit.Flags().BoolVar(&climax, "climax", false, "reached climax")
	timer.AddCommand(commit)

	timer.AddCommand(&cobra.Command{
		Use:   "discard",
		Short: "Drop the stopped run without recording",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.TimerCLI.Discard(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "discarded")
			return nil
		},
	})

	return timer
}

func newSessionCmd(dataDir *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Session records"}

	session.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recorded sessions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			sessions, err := app.SessionCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			for _, s := range sessions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%.1f\t%s\t%s\n",
					s.ID, s.Timestamp.Format(timefmt.Layout), timefmt.Duration(s.Duration), s.Rating, s.Mood, s.Remark)
			}
			return nil
		},
	})

	var at string
	var duration int
	var remark, location, mood, props string
	var rating float64
	var watchedMovie, climax bool
	add := &cobra.Command{
		Use:   "add --duration <seconds>",
		Short: "Record a session directly",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			timestamp := time.Now()
			if strings.TrimSpace(at) != "" {
				timestamp, err = time.ParseInLocation(timefmt.Layout, at, time.Local)
				if err != nil {
					return fmt.Errorf("parse --at: %w", err)
				}
			}
			out, err := app.SessionCLI.Add(context.Background(), sessiondto.SessionInput{
				Timestamp:    timestamp,
				Duration:     duration,
				Remark:       remark,
				Location:     location,
				WatchedMovie: watchedMovie,
				Climax:       climax,
				Rating:       rating,
				Mood:         mood,
				Props:        props,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded session %d\n", out.ID)
			return nil
		},
	}
	add.Flags().StringVar(&at, "at", "", "timestamp, e.g. 2024-01-15T20:30:00 (defaults to now)")
	add.Flags().IntVar(&duration, "duration", 0, "duration in seconds")
	add.Flags().StringVar(&remark, "remark", "", "remark")
	add.Flags().StringVar(&location, "location", "", "location")
	add.Flags().Float64Var(&rating, "rating", 3.0, "rating 0..5")
	add.Flags().StringVar(&mood, "mood", "平静", "mood")
	add.Flags().StringVar(&props, "props", "手", "props")
	add.Flags().BoolVar(&watchedMovie, "watched-movie", false, "watched a movie")
	add.Flags().BoolVar(&climax, "climax", false, "reached climax")
	session.AddCommand(add)

	var deleteID int64
	deleteCmd := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete one session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if deleteID == 0 {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.SessionCLI.Delete(context.Background(), deleteID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted session %d\n", deleteID)
			return nil
		},
	}
	deleteCmd.Flags().Int64Var(&deleteID, "id", 0, "session id")
	session.AddCommand(deleteCmd)

	var confirmed bool
	clear := &cobra.Command{
		Use:   "clear",
		Short: "Delete every session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return fmt.Errorf("refusing to clear without --yes")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.SessionCLI.Clear(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cleared")
			return nil
		},
	}
	clear.Flags().BoolVar(&confirmed, "yes", false, "confirm clearing all sessions")
	session.AddCommand(clear)

	return session
}

func newStatsCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			overview, err := app.StatsCLI.Overview(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if overview.Latest != nil {
				_, _ = fmt.Fprintf(w, "最近: %s %s %s\n%s\n\n",
					overview.Latest.DisplayDate, overview.Latest.TimeOfDay,
					timefmt.Duration(overview.Latest.DurationSec), overview.Latest.Phrase)
			}
			row := func(label string, count, total int, avg float64) {
				_, _ = fmt.Fprintf(w, "%s\t%d 次\t%s\t平均 %.1f 分钟\n", label, count, timefmt.Duration(total), avg)
			}
			row("本周", overview.Week.Count, overview.Week.TotalSeconds, overview.Week.AvgMinutes)
			row("本月", overview.Month.Count, overview.Month.TotalSeconds, overview.Month.AvgMinutes)
			row("今年", overview.Year.Count, overview.Year.TotalSeconds, overview.Year.AvgMinutes)
			row("总计", overview.Overall.Count, overview.Overall.TotalSeconds, overview.Overall.AvgMinutes)
			return nil
		},
	}
}

func newExportCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export all sessions to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Export(context.Background())
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], out.Data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d sessions to %s\n", out.Count, args[0])
			return nil
		},
	}
}

func newImportCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all sessions with a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import: %w", err)
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Import(context.Background(), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d sessions (%d skipped)\n", out.Imported, out.Skipped)
			return nil
		},
	}
}

func newBackupCmd(dataDir *string) *cobra.Command {
	backup := &cobra.Command{Use: "backup", Short: "WebDAV backup and restore"}

	backup.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Upload all sessions to the WebDAV server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.BackupCLI.Backup(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "backed up %d sessions (%d bytes)\n", out.Count, out.Bytes)
			return nil
		},
	})

	var confirmed bool
	restore := &cobra.Command{
		Use:   "restore",
		Short: "Replace local sessions with the remote backup",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return fmt.Errorf("restore replaces all local sessions, pass --yes to confirm")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.BackupCLI.Restore(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "restored %d sessions (%d skipped)\n", out.Imported, out.Skipped)
			return nil
		},
	}
	restore.Flags().BoolVar(&confirmed, "yes", false, "confirm destructive restore")
	backup.AddCommand(restore)

	backup.AddCommand(&cobra.Command{
		Use:   "test",
		Short: "Check WebDAV connectivity and credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.BackupCLI.Test(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "connection ok")
			return nil
		},
	})

	return backup
}

func newReportCmd(dataDir *string) *cobra.Command {
	report := &cobra.Command{Use: "report", Short: "Export-format renderer plugins"}

	report.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List renderer manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			renderers, err := app.ReportCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(renderers) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no renderers configured")
				return nil
			}
			for _, r := range renderers {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s enabled=%t binary=%s\n", r.Name, r.Version, r.Enabled, r.Binary)
			}
			return nil
		},
	})

	report.AddCommand(&cobra.Command{
		Use:   "formats",
		Short: "List export formats offered by enabled renderers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			formats, err := app.ReportCLI.Formats(context.Background())
			if err != nil {
				return err
			}
			if len(formats) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no formats")
				return nil
			}
			for _, f := range formats {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s/%s\t.%s\t%s\n", f.RendererName, f.ID, f.Extension, f.Title)
			}
			return nil
		},
	})

	var rendererName, formatID, outPath string
	render := &cobra.Command{
		Use:   "render --renderer <name> --format <id>",
		Short: "Render all sessions through a renderer plugin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(rendererName) == "" || strings.TrimSpace(formatID) == "" {
				return fmt.Errorf("--renderer and --format are required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ReportCLI.Render(context.Background(), reportdto.RenderInput{
				RendererName: rendererName,
				FormatID:     formatID,
			})
			if err != nil {
				return err
			}
			target := outPath
			if target == "" {
				target = out.Filename
			}
			if target == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Content)
				return nil
			}
			if err := os.WriteFile(target, []byte(out.Content), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rendered %s/%s to %s\n", out.RendererName, out.FormatID, target)
			return nil
		},
	}
	render.Flags().StringVar(&rendererName, "renderer", "", "renderer name")
	render.Flags().StringVar(&formatID, "format", "", "format id")
	render.Flags().StringVar(&outPath, "out", "", "output file (defaults to the renderer's filename)")
	report.AddCommand(render)

	return report
}

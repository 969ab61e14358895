// Package main provides the CLI entrypoint for cubetui.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/cubetui/internal/config"
	"github.com/verte-zerg/cubetui/internal/model"
	"github.com/verte-zerg/cubetui/internal/scramble"
	"github.com/verte-zerg/cubetui/internal/sched"
	"github.com/verte-zerg/cubetui/internal/session"
	"github.com/verte-zerg/cubetui/internal/stats"
	"github.com/verte-zerg/cubetui/internal/statsui"
	"github.com/verte-zerg/cubetui/internal/store"
	"github.com/verte-zerg/cubetui/internal/timer"
	"github.com/verte-zerg/cubetui/internal/tui"
)

const (
	defaultFastTickMs  = 100
	defaultSlowTickMs  = 1000
	defaultScrambleLen = 20
)

var (
	timerFastTickMs  int
	timerSlowTickMs  int
	timerScrambleLen int
	timerNoStore     bool

	statsSince string
	statsLast  int
	statsPlain bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cubetui",
		Short:         "TUI speedcube timer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTimerCmd,
	}

	rootCmd.Flags().IntVar(&timerFastTickMs, "fast-tick-ms", defaultFastTickMs, "redraw interval while the timer runs (ms)")
	rootCmd.Flags().IntVar(&timerSlowTickMs, "slow-tick-ms", defaultSlowTickMs, "redraw interval while idle (ms)")
	rootCmd.Flags().IntVar(&timerScrambleLen, "scramble-length", defaultScrambleLen, "moves per scramble")
	rootCmd.Flags().BoolVar(&timerNoStore, "no-store", false, "do not persist solves to the database")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runTimerCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "fast-tick-ms", &timerFastTickMs, fileCfg.Timer.FastTickMs)
	applyIntConfig(cmd, "slow-tick-ms", &timerSlowTickMs, fileCfg.Timer.SlowTickMs)
	applyIntConfig(cmd, "scramble-length", &timerScrambleLen, fileCfg.Timer.ScrambleLen)

	cfg := model.Config{
		FastTick:    time.Duration(timerFastTickMs) * time.Millisecond,
		SlowTick:    time.Duration(timerSlowTickMs) * time.Millisecond,
		ScrambleLen: timerScrambleLen,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	var st *store.Store
	if !timerNoStore {
		opened, err := store.Open(config.DefaultDBPath())
		if err != nil {
			logErrf("failed to open db, solves will not be persisted: %v\n", err)
		} else {
			st = opened
			defer func() {
				if cerr := st.Close(); cerr != nil {
					logErrf("failed to close db: %v\n", cerr)
				}
			}()
		}
	}

	sess := session.New(timer.New())
	sc := sched.New(cfg.FastTick, cfg.SlowTick, time.Now())
	m := tui.NewModel(cfg, sess, sc, st, scramble.New())
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show solve stats",
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N solves")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a plain report instead of the TUI")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	cfg := model.StatsConfig{
		Since: sinceTime,
		Last:  statsLast,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if statsPlain {
		report, err := stats.BuildReport(context.Background(), st, cfg)
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}
		return stats.RenderSummary(cmd.OutOrStdout(), report)
	}

	m := statsui.NewModel(st, cfg)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# cubetui configuration
# Uncomment a value to enable it. CLI flags override config values.

[timer]
# fast-tick-ms = %d       # Redraw interval while the timer runs
# slow-tick-ms = %d      # Redraw interval while idle
# scramble-length = %d    # Moves per scramble
`,
		defaultFastTickMs,
		defaultSlowTickMs,
		defaultScrambleLen,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.FastTick <= 0 {
		return fmt.Errorf("--fast-tick-ms must be > 0")
	}
	if cfg.SlowTick < cfg.FastTick {
		return fmt.Errorf("--slow-tick-ms must be >= --fast-tick-ms")
	}
	if cfg.ScrambleLen < 0 {
		return fmt.Errorf("--scramble-length must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

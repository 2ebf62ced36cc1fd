package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/carpro/internal/config"
	"github.com/theirongolddev/carpro/internal/daemon"
)

type daemonRuntimeState struct {
	PID       int       `json:"pid"`
	Addr      string    `json:"addr"`
	StartedAt time.Time `json:"started_at"`
	DBPath    string    `json:"db_path"`
}

var (
	flagDaemonAddr         string
	flagDaemonInterval     time.Duration
	flagDaemonDigest       string
	flagDaemonDetach       bool
	flagDaemonPIDFile      string
	flagDaemonLogFile      string
	flagDaemonEventsBuffer int
	flagDaemonChild        bool
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run a background expense daemon with HTTP/SSE endpoints",
	RunE:  runDaemon,
}

var daemonStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon process and API status",
	RunE:  runDaemonStatus,
}

var daemonStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running daemon",
	RunE:  runDaemonStop,
}

func init() {
	defaults := config.DefaultConfig().Daemon
	defaultPID := filepath.Join(config.DataDir(), "carprod.pid")
	defaultLog := filepath.Join(config.DataDir(), "carprod.log")

	daemonCmd.PersistentFlags().StringVar(&flagDaemonAddr, "addr", defaults.Addr, "HTTP listen address")
	daemonCmd.PersistentFlags().StringVar(&flagDaemonPIDFile, "pid-file", defaultPID, "PID file path")
	daemonCmd.PersistentFlags().StringVar(&flagDaemonLogFile, "log-file", defaultLog, "Log file path for detached mode")

	daemonCmd.Flags().DurationVar(&flagDaemonInterval, "interval", defaults.Poll(), "Polling interval")
	daemonCmd.Flags().StringVar(&flagDaemonDigest, "digest", defaults.DigestSchedule, "Cron schedule for the maintenance alert digest (empty disables)")
	daemonCmd.Flags().IntVar(&flagDaemonEventsBuffer, "events-buffer", defaults.EventsBuffer, "Max in-memory events retained")
	daemonCmd.Flags().BoolVar(&flagDaemonDetach, "detach", false, "Run daemon as a background process")
	daemonCmd.Flags().BoolVar(&flagDaemonChild, "child", false, "Internal: mark detached child process")
	_ = daemonCmd.Flags().MarkHidden("child")

	daemonCmd.AddCommand(daemonStatusCmd)
	daemonCmd.AddCommand(daemonStopCmd)
	rootCmd.AddCommand(daemonCmd)
}

func runDaemon(cmd *cobra.Command, _ []string) error {
	if flagDaemonDetach && flagDaemonChild {
		return errors.New("invalid daemon launch mode")
	}

	if flagDaemonDetach {
		return startDaemonDetached()
	}

	return runDaemonForeground(cmd)
}

func startDaemonDetached() error {
	if err := pidFile(flagDaemonPIDFile).ensureNotRunning(); err != nil {
		return err
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	args := filterDetachArg(os.Args[1:])
	args = append(args, "--child")

	if err := os.MkdirAll(filepath.Dir(flagDaemonPIDFile), 0o750); err != nil {
		return fmt.Errorf("create daemon directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(flagDaemonLogFile), 0o750); err != nil {
		return fmt.Errorf("create daemon log directory: %w", err)
	}

	//nolint:gosec // daemon log path is configured by the local user
	logf, err := os.OpenFile(flagDaemonLogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open daemon log file: %w", err)
	}
	defer func() { _ = logf.Close() }()

	child := exec.Command(exe, args...) //nolint:gosec // exe/args come from current process invocation
	child.Stdout = logf
	child.Stderr = logf
	child.Stdin = nil
	child.Env = os.Environ()

	if err := child.Start(); err != nil {
		return fmt.Errorf("start detached daemon: %w", err)
	}

	fmt.Printf("  Started daemon (pid %d)\n", child.Process.Pid)
	fmt.Printf("  PID file: %s\n", flagDaemonPIDFile)
	fmt.Printf("  API: http://%s/v1/status\n", flagDaemonAddr)
	fmt.Printf("  Log: %s\n", flagDaemonLogFile)
	return nil
}

// newDaemonLogger writes JSON lines when detached (stdout is the log file)
// and human-readable console output otherwise.
func newDaemonLogger(child bool) zerolog.Logger {
	if child {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}

func runDaemonForeground(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyDaemonConfig(cmd, cfg.Daemon)

	pf := pidFile(flagDaemonPIDFile)
	if err := pf.ensureNotRunning(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(flagDaemonPIDFile), 0o750); err != nil {
		return fmt.Errorf("create daemon directory: %w", err)
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	pid := os.Getpid()
	if err := pf.write(pid); err != nil {
		return fmt.Errorf("writing pid file: %w", err)
	}
	defer pf.remove()
	_ = pf.writeState(daemonRuntimeState{
		PID:       pid,
		Addr:      flagDaemonAddr,
		StartedAt: time.Now(),
		DBPath:    cfg.DBPath(),
	})

	logger := newDaemonLogger(flagDaemonChild)
	svc := daemon.New(daemon.Config{
		Store:          s,
		DBPath:         cfg.DBPath(),
		Interval:       flagDaemonInterval,
		Addr:           flagDaemonAddr,
		EventsBuffer:   flagDaemonEventsBuffer,
		DigestSchedule: flagDaemonDigest,
		Logger:         logger,
	})

	logger.Info().
		Str("addr", flagDaemonAddr).
		Dur("interval", flagDaemonInterval).
		Str("db", cfg.DBPath()).
		Str("digest", flagDaemonDigest).
		Msg("carpro daemon starting")
	if !flagDaemonChild {
		fmt.Printf("  Stop with: carpro daemon stop --pid-file %s\n", flagDaemonPIDFile)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("daemon stopped")
		return err
	}
	logger.Info().Msg("daemon stopped")
	return nil
}

// applyDaemonConfig fills every daemon flag the user did not set from the
// config file.
func applyDaemonConfig(cmd *cobra.Command, d config.DaemonConfig) {
	f := cmd.Flags()
	if !f.Changed("addr") && d.Addr != "" {
		flagDaemonAddr = d.Addr
	}
	if !f.Changed("interval") {
		flagDaemonInterval = d.Poll()
	}
	if !f.Changed("digest") {
		flagDaemonDigest = d.DigestSchedule
	}
	if !f.Changed("events-buffer") && d.EventsBuffer > 0 {
		flagDaemonEventsBuffer = d.EventsBuffer
	}
}

func runDaemonStatus(_ *cobra.Command, _ []string) error {
	pf := pidFile(flagDaemonPIDFile)
	pid, err := pf.read()
	if err != nil {
		fmt.Printf("  Daemon: not running (pid file not found)\n")
		return nil
	}

	alive := processAlive(pid)
	if !alive {
		fmt.Printf("  Daemon: stale pid file (pid %d not alive)\n", pid)
		return nil
	}

	addr := flagDaemonAddr
	if st, err := pf.readState(); err == nil && st.Addr != "" {
		addr = st.Addr
	}

	fmt.Printf("  Daemon PID: %d\n", pid)
	fmt.Printf("  Address: http://%s\n", addr)

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + addr + "/v1/status") //nolint:noctx // short status probe
	if err != nil {
		fmt.Printf("  API status: unreachable (%v)\n", err)
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("  API status: HTTP %d\n", resp.StatusCode)
		return nil
	}

	var st daemon.Status
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		fmt.Printf("  API status: malformed response (%v)\n", err)
		return nil
	}

	if st.LastPollAt.IsZero() {
		fmt.Printf("  Last poll: pending\n")
	} else {
		fmt.Printf("  Last poll: %s\n", st.LastPollAt.Local().Format(time.RFC3339))
	}
	fmt.Printf("  Poll count: %d\n", st.PollCount)
	fmt.Printf("  Database: %s\n", st.DBPath)
	fmt.Printf("  Total expenses: %.2f\n", st.Summary.TotalExpenses)
	fmt.Printf("  This month: %.2f\n", st.Summary.MonthlyExpenses)
	fmt.Printf("  Alerts: %d (%d overdue)\n", st.Summary.Alerts, st.Summary.Overdue)
	if st.DigestSchedule != "" {
		fmt.Printf("  Alert digest: %s\n", st.DigestSchedule)
	}
	if st.LastError != "" {
		fmt.Printf("  Last error: %s\n", st.LastError)
	}
	return nil
}

func runDaemonStop(_ *cobra.Command, _ []string) error {
	pf := pidFile(flagDaemonPIDFile)
	pid, err := pf.read()
	if err != nil {
		return errors.New("daemon is not running")
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("find daemon process: %w", err)
	}
	if err := proc.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("signal daemon process: %w", err)
	}

	deadline := time.Now().Add(8 * time.Second)
	for time.Now().Before(deadline) {
		if !processAlive(pid) {
			pf.remove()
			fmt.Printf("  Stopped daemon (pid %d)\n", pid)
			return nil
		}
		time.Sleep(150 * time.Millisecond)
	}

	return fmt.Errorf("daemon (pid %d) did not exit in time", pid)
}

func filterDetachArg(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a == "--detach" || strings.HasPrefix(a, "--detach=") {
			continue
		}
		out = append(out, a)
	}
	return out
}

// pidFile is the daemon's pid file. Runtime state lives next to it as JSON.
type pidFile string

func (p pidFile) statePath() string { return string(p) + ".json" }

func (p pidFile) write(pid int) error {
	return os.WriteFile(string(p), []byte(strconv.Itoa(pid)+"\n"), 0o600)
}

func (p pidFile) read() (int, error) {
	data, err := os.ReadFile(string(p)) //nolint:gosec // pid path is configured by the local user
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("invalid pid in %s", p)
	}
	return pid, nil
}

// remove deletes the pid and state files, ignoring missing ones.
func (p pidFile) remove() {
	_ = os.Remove(string(p))
	_ = os.Remove(p.statePath())
}

func (p pidFile) writeState(st daemonRuntimeState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p.statePath(), append(data, '\n'), 0o600)
}

func (p pidFile) readState() (daemonRuntimeState, error) {
	var st daemonRuntimeState
	data, err := os.ReadFile(p.statePath()) //nolint:gosec // state path is configured by the local user
	if err != nil {
		return st, err
	}
	err = json.Unmarshal(data, &st)
	return st, err
}

// ensureNotRunning clears a stale pid file, or fails if its process is alive.
func (p pidFile) ensureNotRunning() error {
	pid, err := p.read()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if processAlive(pid) {
		return fmt.Errorf("daemon already running (pid %d)", pid)
	}
	p.remove()
	return nil
}

func processAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = proc.Signal(syscall.Signal(0))
	return err == nil || errors.Is(err, syscall.EPERM)
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"retro-term/internal/config"
	"retro-term/internal/logger"
	"retro-term/internal/tui"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var log = logger.Named("main")

type rootOptions struct {
	cfgPath        string
	overrides      []string
	logFile        string
	copyableOutput bool
}

func main() {
	logger.Configure()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "retro-term",
		Short: "A.L.E.X, a retro terminal portfolio",
		Long: `retro-term opens a simulated shell session. Type a command such as
help, about, projects, skills, wins, contact or clear and press Enter.

Run without arguments to start the interactive terminal.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(opts)
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.cfgPath, "config", "", "config file (default ~/.retro-term/config.toml)")
	flags.StringArrayVarP(&opts.overrides, "config-override", "c", nil, "override a config value key=value (repeatable)")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of log_path")
	cmd.Flags().BoolVar(&opts.copyableOutput, "copyable-output", false, "render inline instead of on the alternate screen")

	cmd.AddCommand(newRunCmd(opts), newCommandsCmd(), newConfigCmd(opts))
	return cmd
}

// loadConfig 读取配置、应用 -c 覆盖并设置日志级别。
func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load(o.cfgPath)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	cfg = config.ApplyKVOverrides(cfg, o.overrides)
	if o.logFile != "" {
		cfg.LogPath = o.logFile
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setupLogging 将日志重定向到文件；终端留给 UI，失败时告警后丢弃日志。
func setupLogging(path string) io.Closer {
	closer, resolved, err := logger.SetupFile(path)
	if err != nil {
		logger.Warnf("failed to initialize log file (%s): %v", path, err)
		logger.Discard()
		return nil
	}
	log.Debugf("logging to %s", resolved)
	return closer
}

// openSessionLog 为本次会话打开独立日志文件；dir 为空或打开失败时退回全局日志。
func openSessionLog(dir, sessionID string) (*logger.LogEntry, io.Closer) {
	if dir == "" {
		return logger.Named("session"), nil
	}
	path := filepath.Join(dir, sessionID+".log")
	entry, closer, resolved, err := logger.SetupComponentFile("session", path)
	if err != nil {
		logger.Warnf("failed to open session log (%s): %v", path, err)
		return logger.Named("session"), nil
	}
	logger.Infof("session %s logging to %s", sessionID, resolved)
	return entry, closer
}

func runInteractive(opts *rootOptions) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	if closer := setupLogging(cfg.LogPath); closer != nil {
		defer closer.Close()
	}
	log.WithField("config", cfg.Source).Info("starting interactive terminal")

	sessionID := uuid.NewString()
	sessionLog, sessionCloser := openSessionLog(cfg.SessionLogDir, sessionID)
	if sessionCloser != nil {
		defer sessionCloser.Close()
	}

	result, err := tui.Run(tui.Options{
		Config:         cfg,
		SessionID:      sessionID,
		Log:            sessionLog,
		CopyableOutput: opts.copyableOutput,
	})
	if err != nil {
		return fmt.Errorf("program exit: %w", err)
	}
	log.WithField("session", result.SessionID).WithField("lines", result.Lines).Info("terminal closed")
	return nil
}

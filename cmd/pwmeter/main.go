// Package main provides the CLI entrypoint for pwmeter.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/pwmeter/internal/config"
	"github.com/verte-zerg/pwmeter/internal/generator"
	"github.com/verte-zerg/pwmeter/internal/model"
	"github.com/verte-zerg/pwmeter/internal/report"
	"github.com/verte-zerg/pwmeter/internal/store"
	"github.com/verte-zerg/pwmeter/internal/strength"
	"github.com/verte-zerg/pwmeter/internal/tui"
)

const (
	defaultTheme        = "dark"
	defaultToastSeconds = 3
	defaultCount        = 1
	defaultLogLevel     = "warn"
)

var (
	uiTheme  string
	uiReveal bool
	logLevel string

	generateCount int
	generateCheck bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pwmeter",
		Short:         "Local password strength analyzer and generator",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setLogLevel(logLevel)
		},
		RunE: runAnalyzerCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&logLevel, "loglevel", "l", defaultLogLevel, "log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&uiTheme, "theme", defaultTheme, "color theme: dark or light")
	rootCmd.Flags().BoolVar(&uiReveal, "reveal", false, "show the password while typing")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func setLogLevel(level string) error {
	log.SetOutput(os.Stderr)
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warning", "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		return fmt.Errorf("unknown log level %q", level)
	}
	return nil
}

func runAnalyzerCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "reveal", &uiReveal, fileCfg.UI.Reveal)
	toastSeconds := defaultToastSeconds
	if fileCfg.UI.ToastSeconds != nil {
		toastSeconds = *fileCfg.UI.ToastSeconds
	}
	if toastSeconds <= 0 {
		return fmt.Errorf("toast-seconds must be > 0")
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		// The analyzer works without persisted preferences.
		log.WithError(err).Warn("failed to open preferences db")
		st = nil
	}
	if st != nil {
		defer func() {
			if cerr := st.Close(); cerr != nil {
				log.WithError(cerr).Warn("failed to close preferences db")
			}
		}()
	}

	theme, err := resolveTheme(cmd, st, fileCfg.UI.Theme)
	if err != nil {
		return err
	}

	cfg := model.Config{
		Theme:         theme,
		Reveal:        uiReveal,
		ToastDuration: time.Duration(toastSeconds) * time.Second,
	}
	m := tui.NewModel(cfg, st, generator.New(), tui.SystemClipboard{})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveTheme picks the theme from the flag, then the saved preference,
// then the config file.
func resolveTheme(cmd *cobra.Command, st *store.Store, fileTheme *string) (model.Theme, error) {
	if cmd.Flags().Changed("theme") {
		return model.ParseTheme(uiTheme)
	}
	if st != nil {
		saved, ok, err := st.Theme(context.Background())
		if err != nil {
			log.WithError(err).Warn("ignoring saved theme")
		} else if ok {
			return saved, nil
		}
	}
	if fileTheme != nil {
		return model.ParseTheme(*fileTheme)
	}
	return model.ParseTheme(uiTheme)
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Analyze a password read from stdin",
		Args:  cobra.NoArgs,
		RunE:  runCheckCmd,
	}
}

func runCheckCmd(cmd *cobra.Command, _ []string) error {
	var (
		password string
		err      error
	)
	if isTerminal(os.Stdin) {
		password, err = promptPassword(int(os.Stdin.Fd()), cmd.ErrOrStderr())
	} else {
		password, err = readPassword(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("no password provided")
	}
	if err := report.Render(cmd.OutOrStdout(), strength.Evaluate(password)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func promptPassword(fd int, prompt io.Writer) (string, error) {
	if _, err := fmt.Fprint(prompt, "Password: "); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	raw, err := term.ReadPassword(fd)
	if _, perr := fmt.Fprintln(prompt); perr != nil {
		log.WithError(perr).Debug("failed to finish prompt line")
	}
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}

// readPassword returns the first line of r without its line terminator.
// Surrounding spaces are part of the password and are kept.
func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate strong passwords",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
	cmd.Flags().IntVarP(&generateCount, "count", "n", defaultCount, "number of passwords")
	cmd.Flags().BoolVar(&generateCheck, "check", false, "print score and level next to each password")
	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "count", &generateCount, fileCfg.Generate.Count)
	cfg := model.GenerateConfig{Count: generateCount, Check: generateCheck}
	if cfg.Count <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	return writePasswords(cmd.OutOrStdout(), generator.New(), cfg)
}

// writePasswords prints cfg.Count passwords, each generated with the previous
// one as the value to avoid.
func writePasswords(w io.Writer, gen *generator.Generator, cfg model.GenerateConfig) error {
	previous := ""
	for i := 0; i < cfg.Count; i++ {
		password := gen.Generate(previous)
		previous = password
		line := password
		if cfg.Check {
			line += "\t" + report.Summary(strength.Evaluate(password))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
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
	if err := ensureConfigFile(path); err != nil {
		return err
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

func ensureConfigFile(path string) error {
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

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# pwmeter configuration
# Uncomment a value to enable it. CLI flags override config values.
# Passwords are never written to disk; only the theme toggle is remembered.

[ui]
# theme = %q          # dark or light
# reveal = false          # Show the password while typing
# toast-seconds = %d       # How long notifications stay visible

[generate]
# count = %d               # Passwords printed by "pwmeter generate"
`,
		defaultTheme,
		defaultToastSeconds,
		defaultCount,
	)
}

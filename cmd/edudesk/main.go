// Command edudesk is the terminal client for the student portal's
// education records page.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"edudesk/internal/api"
	"edudesk/internal/session"
	"edudesk/internal/trace"
	"edudesk/internal/ui"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "edudesk",
	Short: "Manage your education records from the terminal",
	Long: `edudesk is a terminal client for the student portal. It lists your
education records and lets you add, edit and delete them. Sign in once
with "edudesk login"; the session is stored under ~/.config/edudesk.`,
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./edudesk.yaml or ~/.config/edudesk/edudesk.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("edudesk")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "edudesk"))
		}
	}

	viper.SetEnvPrefix("EDUDESK")
	viper.AutomaticEnv()

	viper.SetDefault("api_url", "http://localhost:8000")
	viper.SetDefault("timeout", 30*time.Second)

	_ = viper.ReadInConfig()
}

// openLogger returns a file-backed logger when EDUDESK_DEBUG names a
// path, otherwise a discarding one. Stderr is unusable while the alt
// screen is active.
func openLogger() (*slog.Logger, io.Closer, error) {
	path := os.Getenv("EDUDESK_DEBUG")
	if path == "" {
		return slog.New(slog.DiscardHandler), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), f, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	store, err := session.NewStore()
	if err != nil {
		return err
	}
	sess, err := store.Load()
	if err != nil {
		return fmt.Errorf("not signed in, run `edudesk login` first: %w", err)
	}
	if expired, err := session.TokenExpired(sess.AccessToken, time.Now()); err != nil || expired {
		return fmt.Errorf("session expired, run `edudesk login` again")
	}

	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	tracing, err := trace.Init(cmd.Context(), "edudesk")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer tracing.Shutdown(cmd.Context())

	client := api.NewClient(api.Config{
		BaseURL: viper.GetString("api_url"),
		Token:   sess.AccessToken,
		Timeout: viper.GetDuration("timeout"),
		Logger:  logger,
		Tracer:  tracing.Tracer(),
	})

	model := ui.NewAppModel(client, logger).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

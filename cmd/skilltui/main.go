package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"skill-manager/internal/app"
	"skill-manager/internal/config"
	"skill-manager/internal/pkg/logger"
	"skill-manager/internal/snapshot"
	"skill-manager/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}
	lg, err := logger.NewCLI(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = lg.Sync() }()

	ctx := context.Background()
	c, err := app.NewContainer(ctx, cfg, lg, snapshot.PolicySession)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			lg.Warn("close stores", zap.Error(err))
		}
	}()

	stores := tui.Stores{Skills: c.Skills, Projects: c.Projects, Employees: c.Employees}
	_, runErr := tea.NewProgram(tui.New(ctx, stores), tea.WithAltScreen()).Run()

	if err := c.Flush(ctx); err != nil {
		return err
	}
	return runErr
}

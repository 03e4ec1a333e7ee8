package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gitools/internal/app"
	"github.com/llehouerou/gitools/internal/config"
	"github.com/llehouerou/gitools/internal/errmsg"
	"github.com/llehouerou/gitools/internal/git"
	"github.com/llehouerou/gitools/internal/icons"
)

func main() {
	configPath := flag.String("config", "", "load this config file instead of the default locations")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config file] [repository]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	repoPath := "."
	if flag.NArg() > 0 {
		repoPath = flag.Arg(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatal(errmsg.OpConfigLoad, err)
	}
	tree, err := cfg.Tree()
	if err != nil {
		fatal(errmsg.OpConfigLoad, err)
	}
	icons.Init(cfg.Icons)

	repo, err := git.Open(repoPath)
	if err != nil {
		fatal(errmsg.OpRepoOpen, err)
	}

	logPath, err := config.LogFile()
	if err != nil {
		fatal(errmsg.OpInitialize, err)
	}
	logFile, err := tea.LogToFile(logPath, "")
	if err != nil {
		fatal(errmsg.OpInitialize, err)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewTextHandler(logFile, nil))
	logger.Info("starting", "repository", repo.Path(), "config", *configPath)

	p := tea.NewProgram(app.New(tree, repo, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		logFile.Close()
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func fatal(op errmsg.Op, err error) {
	fmt.Fprintln(os.Stderr, errmsg.Format(op, err))
	os.Exit(1)
}

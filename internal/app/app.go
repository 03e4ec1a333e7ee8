// internal/app/app.go
package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gitools/internal/errmsg"
	"github.com/llehouerou/gitools/internal/git"
	"github.com/llehouerou/gitools/internal/keymap"
	"github.com/llehouerou/gitools/internal/palette"
	"github.com/llehouerou/gitools/internal/ui/fuzzybar"
)

// Repository is what the host needs from the repository: candidates and
// execution for the palette, the header summary and the working tree status.
type Repository interface {
	palette.Source
	palette.Executor
	ReadHeader() (git.Header, error)
	Status() (git.Status, error)
}

// Compile-time check that the git repository satisfies Repository.
var _ Repository = (*git.Repository)(nil)

// Model is the root application model.
type Model struct {
	Engine    *palette.Engine
	Repo      Repository
	Header    git.Header
	Status    git.Status
	Fuzzybar  fuzzybar.Model
	ErrorMsg  string
	StatusMsg string
	Width     int
	Height    int

	menuKeys    *keymap.Resolver
	paletteKeys *keymap.Resolver
	logger      *slog.Logger
}

// New creates the model for a repository and reads its header and status.
func New(tree *keymap.Tree, repo Repository, logger *slog.Logger) Model {
	m := Model{
		Engine: palette.New(palette.Config{
			Tree:     tree,
			Source:   repo,
			Executor: repo,
		}),
		Repo:        repo,
		Fuzzybar:    fuzzybar.New(),
		menuKeys:    keymap.ForContexts("global", "menu"),
		paletteKeys: keymap.ForContexts("global", "palette"),
		logger:      logger,
	}
	m.refreshRepo()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// refreshRepo re-reads the header and the working tree status. A failure
// keeps whatever was read and reports the error in the status line.
func (m *Model) refreshRepo() {
	h, err := m.Repo.ReadHeader()
	m.Header = h
	if err != nil {
		m.logger.Warn("read header failed", "err", err)
		m.ErrorMsg = errmsg.Format(errmsg.OpHeaderRead, err)
	}

	st, err := m.Repo.Status()
	m.Status = st
	if err != nil {
		m.logger.Warn("read status failed", "err", err)
		m.ErrorMsg = errmsg.Format(errmsg.OpStatusRead, err)
	}
}

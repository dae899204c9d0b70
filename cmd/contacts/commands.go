package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/KrishTanna28/CollEdge-Internship-Assignment/internal/client"
	"github.com/KrishTanna28/CollEdge-Internship-Assignment/internal/config"
	"github.com/KrishTanna28/CollEdge-Internship-Assignment/internal/httpapi"
	"github.com/KrishTanna28/CollEdge-Internship-Assignment/internal/mcp"
	"github.com/KrishTanna28/CollEdge-Internship-Assignment/internal/storage"
	"github.com/KrishTanna28/CollEdge-Internship-Assignment/internal/ui"
	"github.com/KrishTanna28/CollEdge-Internship-Assignment/pkg/contact"
)

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ServeCmd runs the HTTP API.
type ServeCmd struct {
	Port int `help:"Port to listen on (overrides config and PORT)." short:"p"`
}

// Run executes the serve command.
func (c *ServeCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	if c.Port != 0 {
		cfg.Server.Port = c.Port
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	}

	logger, err := newLogger(cfg.Log.Level, "stderr")
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	svc, store, err := openService(cfg, logger)
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	defer func() { _ = store.Close() }()

	ctx, stop := signalContext()
	defer stop()

	handler := httpapi.NewHandler(svc, logger).Routes()
	srv := httpapi.NewServer(cfg.Server.Addr(), handler, logger,
		httpapi.WithShutdownTimeout(cfg.Server.ShutdownTimeout))
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// MCPCmd serves the contact tools over MCP on stdio.
type MCPCmd struct{}

// Run executes the mcp command.
func (c *MCPCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return fmt.Errorf("mcp: %w", err)
	}

	// Stdout carries the protocol, so logs go to stderr.
	logger, err := newLogger(cfg.Log.Level, "stderr")
	if err != nil {
		return fmt.Errorf("mcp: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	svc, store, err := openService(cfg, logger)
	if err != nil {
		return fmt.Errorf("mcp: %w", err)
	}
	defer func() { _ = store.Close() }()

	ctx, stop := signalContext()
	defer stop()

	err = mcp.NewServer(svc, logger).Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp: %w", err)
	}
	return nil
}

// UICmd opens the interactive terminal client.
type UICmd struct{}

// Run executes the ui command.
func (c *UICmd) Run(g *Globals) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("ui: requires a terminal (TTY)")
	}

	cfg, err := g.loadConfig()
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	// The UI owns the screen, so logs go to a file.
	logPath, err := storage.ResolvePath(cfg.Log.File)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	logger, err := newLogger(cfg.Log.Level, logPath)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	api, err := newClient(cfg)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	p := tea.NewProgram(ui.NewModel(api, ui.WithLogger(logger)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func newClient(cfg *config.Config) (*client.Client, error) {
	return client.New(cfg.Client.APIURL, client.WithHTTPClient(&http.Client{Timeout: cfg.Client.Timeout}))
}

// ListCmd prints every contact.
type ListCmd struct {
	Sort string `help:"Sort order: date (newest first) or name." enum:"date,name" default:"date"`
	JSON bool   `help:"Print JSON even when stdout is a terminal." name:"json"`
}

// Run executes the list command.
func (c *ListCmd) Run(g *Globals, env *runEnv) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	api, err := newClient(cfg)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	ctx, stop := signalContext()
	defer stop()

	contacts, err := api.List(ctx)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	contacts = contact.Sorted(contacts, contact.SortMode(c.Sort))

	if c.JSON || !writerIsTerminal(env) {
		enc := json.NewEncoder(env.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(contacts)
	}

	_, err = fmt.Fprintln(env.stdout, renderTable(contacts))
	return err
}

func writerIsTerminal(env *runEnv) bool {
	f, ok := env.stdout.(*os.File)
	return ok && isTerminal(f)
}

// renderTable formats contacts for a terminal.
func renderTable(contacts []contact.Contact) string {
	if len(contacts) == 0 {
		return "No contacts yet"
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("NAME", "EMAIL", "PHONE", "ADDED", "ID").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, c := range contacts {
		t.Row(c.Name, c.Email, c.Phone, contact.FormatDate(c.CreatedAt), c.ID)
	}
	return fmt.Sprintf("Contacts (%d)\n%s", len(contacts), t.Render())
}

// AddCmd creates a contact through the API.
type AddCmd struct {
	Name    string `help:"Full name." required:""`
	Email   string `help:"Email address." required:""`
	Phone   string `help:"Phone number, at least 10 characters." required:""`
	Message string `help:"Optional note."`
}

// Run executes the add command.
func (c *AddCmd) Run(g *Globals, env *runEnv) error {
	in := contact.Input{Name: c.Name, Email: c.Email, Phone: c.Phone, Message: c.Message}
	if err := in.Validate(); err != nil {
		return fmt.Errorf("add: %w", err)
	}

	cfg, err := g.loadConfig()
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	api, err := newClient(cfg)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}

	ctx, stop := signalContext()
	defer stop()

	created, err := api.Create(ctx, in)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	_, err = fmt.Fprintf(env.stdout, "Contact added successfully: %s\n", created.ID)
	return err
}

// RmCmd deletes a contact through the API.
type RmCmd struct {
	ID string `arg:"" help:"Contact id."`
}

// Run executes the rm command.
func (c *RmCmd) Run(g *Globals, env *runEnv) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return fmt.Errorf("rm: %w", err)
	}
	api, err := newClient(cfg)
	if err != nil {
		return fmt.Errorf("rm: %w", err)
	}

	ctx, stop := signalContext()
	defer stop()

	if err := api.Delete(ctx, c.ID); err != nil {
		return fmt.Errorf("rm: %w", err)
	}
	_, err = fmt.Fprintln(env.stdout, "Contact deleted successfully")
	return err
}

// MigrateCmd applies pending migrations or rolls back the latest one.
type MigrateCmd struct {
	Down bool `help:"Roll back the most recent migration instead of applying."`
}

// Run executes the migrate command.
func (c *MigrateCmd) Run(g *Globals, env *runEnv) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	dbPath, err := storage.ResolvePath(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// Opening the store applies pending migrations.
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	if c.Down {
		if err := storage.RollbackMigration(ctx, store.DB()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	version, err := storage.SchemaVersion(ctx, store.DB())
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	_, err = fmt.Fprintf(env.stdout, "Schema version: %s\n", version)
	return err
}

// InfoCmd prints build and storage details.
type InfoCmd struct{}

// Run executes the info command.
func (c *InfoCmd) Run(g *Globals, env *runEnv) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	svc, store, err := openService(cfg, zap.NewNop())
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}
	defer func() { _ = store.Close() }()

	status, err := svc.Status(context.Background())
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	fmt.Fprintf(env.stdout, "Contacts\n")
	fmt.Fprintf(env.stdout, "Version: %s\n", version)
	fmt.Fprintf(env.stdout, "Build Time: %s\n", buildTime)
	fmt.Fprintf(env.stdout, "Build Mode: %s\n", status.BuildMode)
	fmt.Fprintf(env.stdout, "SQLite Driver: %s\n", status.Driver)
	fmt.Fprintf(env.stdout, "Schema Version: %s\n", status.SchemaVersion)
	fmt.Fprintf(env.stdout, "Contacts: %d\n", status.ContactsCount)
	return nil
}

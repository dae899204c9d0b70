package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KrishTanna28/CollEdge-Internship-Assignment/internal/config"
	"github.com/KrishTanna28/CollEdge-Internship-Assignment/internal/service"
	"github.com/KrishTanna28/CollEdge-Internship-Assignment/internal/storage"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// Globals holds flags shared by every command.
type Globals struct {
	Config   string `help:"Extra config file, applied after the default locations." type:"path" placeholder:"FILE"`
	DB       string `help:"Database path (overrides config and CONTACTS_DB_PATH)." name:"db" placeholder:"PATH"`
	APIURL   string `help:"Contacts API base URL (overrides config and CONTACTS_API_URL)." name:"api-url" placeholder:"URL"`
	LogLevel string `help:"Log level: debug, info, warn or error." name:"log-level" placeholder:"LEVEL"`
}

// CLI is the top-level command structure for contacts.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version." short:"V"`
	Serve   ServeCmd         `cmd:"" help:"Run the contacts HTTP API."`
	MCP     MCPCmd           `cmd:"" name:"mcp" help:"Serve contact tools over MCP on stdio."`
	UI      UICmd            `cmd:"" name:"ui" help:"Open the interactive terminal client."`
	List    ListCmd          `cmd:"" help:"List contacts."`
	Add     AddCmd           `cmd:"" help:"Add a contact."`
	Rm      RmCmd            `cmd:"" help:"Delete a contact by id."`
	Migrate MigrateCmd       `cmd:"" help:"Apply or roll back database migrations."`
	Info    InfoCmd          `cmd:"" help:"Show build and storage information."`
}

// runEnv carries process streams into commands so tests can capture them.
type runEnv struct {
	stdout io.Writer
	stderr io.Writer
}

// loadConfig merges the config files, environment and global flags.
func (g *Globals) loadConfig() (*config.Config, error) {
	paths := config.DefaultPaths()
	if g.Config != "" {
		paths = append(paths, g.Config)
	}

	cfg, err := config.LoadLayered(paths...)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if g.DB != "" {
		cfg.Database.Path = g.DB
	}
	if g.APIURL != "" {
		cfg.Client.APIURL = g.APIURL
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds a JSON logger writing to the given zap output paths.
func newLogger(level string, outputs ...string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = outputs
	zcfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// openService opens the configured database and wraps it in a Service.
// The caller must close the returned storage.
func openService(cfg *config.Config, logger *zap.Logger) (*service.Service, *storage.SQLiteStorage, error) {
	dbPath, err := storage.ResolvePath(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	logger.Info("storage opened",
		zap.String("path", dbPath),
		zap.String("driver", storage.DriverName),
		zap.String("build_mode", storage.BuildMode),
	)
	return service.New(store, logger), store, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contacts"),
		kong.Description("Manage contacts over HTTP, MCP or the terminal."),
		kong.UsageOnError(),
		kong.Vars{"version": version + " (" + buildTime + ")"},
	)
	err := ctx.Run(&cli.Globals, &runEnv{stdout: os.Stdout, stderr: os.Stderr})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/kv"
	"github.com/idilsaglam/tada/internal/kv/jsonkv"
	"github.com/idilsaglam/tada/internal/kv/memkv"
	"github.com/idilsaglam/tada/internal/kv/sqlitekv"
	"github.com/idilsaglam/tada/internal/log"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks failures caused by bad arguments.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	cfg        *config.Config
	backend    kv.Store
	store      *todo.Store
	logFile    io.Closer

	// openTUI is swapped out by tests
	openTUI func(*todo.Store) error
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{openTUI: tui.Run}

	root := &cobra.Command{
		Use:   "todo",
		Short: "todo - a tiny persistent todo list",
		Long: `todo keeps one list of short items, persisted between runs.

Run without arguments to open the interactive screen. In the screen, space
toggles the selected item; ctrl+d switches to delete mode, where space asks
before removing the item.`,
		Example: `  todo add "Buy milk"
  todo ls
  todo done 2
  todo rm 3`,
		Args:              noArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.teardown() },
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.openTUI(a.store)
		},
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usagef("%v", err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default ~/.config/tada/config.yaml, ./.tada.yaml)")
	pf.String("store", "", "storage driver: json, sqlite or memory")
	pf.String("path", "", "storage file path")
	pf.String("log-level", "", "debug, info, warn or error")
	pf.String("log-file", "", "log file for the interactive screen")
	pf.String("theme", "", "classic, neon or mono")

	root.AddCommand(newListCmd(a), newAddCmd(a), newDoneCmd(a), newRmCmd(a), newConfigCmd())
	return root, a
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations["skipStore"] == "true" {
		return nil
	}
	cfg, err := config.Load(a.configPath, cmd.Root().PersistentFlags())
	if err != nil {
		return usagef("%v", err)
	}
	a.cfg = cfg
	ui.SetTheme(cfg.UI.Theme)

	// the interactive screen owns stdout/stderr, so it logs to a file
	logOut := cmd.ErrOrStderr()
	if cmd == cmd.Root() {
		f, err := openLogFile(logFilePath(cfg))
		if err != nil {
			return err
		}
		a.logFile = f
		logOut = f
	}
	log.Setup(cfg.Log.Level, cfg.Log.Format, logOut)

	backend, err := openBackend(cfg.Store)
	if err != nil {
		return err
	}
	a.backend = backend
	a.store = todo.NewStore(backend)
	log.Debug().Str("driver", cfg.Store.Driver).Str("path", cfg.Store.Path).Msg("store opened")
	return nil
}

func (a *app) teardown() {
	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
		a.backend = nil
	}
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

func openBackend(sc config.StoreConfig) (kv.Store, error) {
	switch sc.Driver {
	case config.DriverSQLite:
		return sqlitekv.Open(sc.Path)
	case config.DriverMemory:
		return memkv.New(), nil
	default:
		return jsonkv.Open(sc.Path)
	}
}

func logFilePath(cfg *config.Config) string {
	if cfg.Log.File != "" {
		return cfg.Log.File
	}
	dir := "."
	if cfg.Store.Path != "" {
		dir = filepath.Dir(cfg.Store.Path)
	}
	return filepath.Join(dir, "todo.log")
}

func openLogFile(p string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}

// Run executes the command line and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root, a := newRootCmd()
	return run(root, a, args, stdin, stdout, stderr)
}

func run(root *cobra.Command, a *app, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	// PersistentPostRun is skipped when RunE fails
	a.teardown()
	if err == nil {
		return ExitOK
	}

	ui.Fail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	return ExitError
}

// noArgs rejects stray words so "todo bogus" is a usage error, not a TUI.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("unknown subcommand: %s (see %s --help)", args[0], cmd.Root().Name())
	}
	return nil
}

// exactArgs is cobra.ExactArgs reporting a usage line.
func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("usage: %s", usage)
		}
		return nil
	}
}

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/log"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

// load reads the list, logging (not failing on) a bad snapshot.
func (a *app) load(ctx context.Context) todo.List {
	l, err := a.store.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("load failed, using defaults")
	}
	return l
}

// loadForWrite is load for commands that save afterwards. A corrupt
// snapshot has already been copied aside, so the defaults may replace it;
// any other read failure aborts rather than overwrite data we never saw.
func (a *app) loadForWrite(ctx context.Context) (todo.List, error) {
	l, err := a.store.Load(ctx)
	if err == nil {
		return l, nil
	}
	if errors.Is(err, todo.ErrCorruptSnapshot) {
		log.Warn().Err(err).Msg("load failed, using defaults")
		return l, nil
	}
	return nil, fmt.Errorf("load: %w", err)
}

func (a *app) save(ctx context.Context, l todo.List) error {
	if err := a.store.Save(ctx, l); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

func newListCmd(a *app) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List items",
		Args:  exactArgs(0, "todo ls [--group]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := a.load(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), renderList(items, group))
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group output by pending/done")
	return cmd
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a new item (text can be multiple words)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				return usagef("usage: todo add <text...>")
			}
			ctx := cmd.Context()
			items, err := a.loadForWrite(ctx)
			if err != nil {
				return err
			}
			items = todo.Add(items, text)
			if err := a.save(ctx, items); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "added")
			return nil
		},
	}
}

func newDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done <index>",
		Short: "Toggle done for item at 1-based index",
		Args:  exactArgs(1, "todo done <index>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			items, err := a.loadForWrite(ctx)
			if err != nil {
				return err
			}
			idx, err := parseIndex("done", args[0], len(items))
			if err != nil {
				return err
			}
			items, err = todo.ToggleAt(items, idx)
			if err != nil {
				return err
			}
			if err := a.save(ctx, items); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "toggled")
			return nil
		},
	}
}

func newRmCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove item at 1-based index (asks first unless --yes)",
		Args:  exactArgs(1, "todo rm <index> [--yes]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			items, err := a.loadForWrite(ctx)
			if err != nil {
				return err
			}
			idx, err := parseIndex("rm", args[0], len(items))
			if err != nil {
				return err
			}
			id, err := items.IDAt(idx)
			if err != nil {
				return err
			}

			act := todo.Tap(todo.ModeDelete, items, id)
			if act.Err != nil {
				return act.Err
			}
			accepted := yes || confirm(cmd, fmt.Sprintf("Delete %q? [y/N] ", items[idx].Text))
			act = todo.Confirm(items, id, accepted)
			if act.Err != nil {
				return act.Err
			}
			if !act.Changed {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Current().Muted.Render("kept"))
				return nil
			}
			if err := a.save(ctx, act.List); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "removed")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "remove without asking")
	return cmd
}

func newConfigCmd() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:         "config",
		Short:       "Manage the configuration file",
		Annotations: map[string]string{"skipStore": "true"},
	}
	var force bool
	initCmd := &cobra.Command{
		Use:         "init [path]",
		Short:       "Write a default config file",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"skipStore": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p := config.GlobalConfigPath()
			if len(args) == 1 {
				p = args[0]
			}
			if p == "" {
				return errors.New("no config directory; pass a path")
			}
			if _, err := os.Stat(p); err == nil && !force {
				return usagef("%s already exists (use --force to overwrite)", p)
			}
			if err := config.WriteDefault(p); err != nil {
				return err
			}
			abs, _ := filepath.Abs(p)
			ui.OK(cmd.OutOrStdout(), "wrote "+abs)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cfgCmd.AddCommand(initCmd)
	return cfgCmd
}

// parseIndex turns a 1-based argument into a 0-based index.
func parseIndex(verb, arg string, n int) (int, error) {
	userIndex, err := strconv.Atoi(arg)
	if err != nil {
		return 0, usagef("%s: not a number: %s", verb, arg)
	}
	if userIndex < 1 || userIndex > n {
		return 0, usagef("index out of range: have %d, got %d (run `todo ls` to see valid indexes)", n, userIndex)
	}
	return userIndex - 1, nil
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(cmd.OutOrStdout())
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

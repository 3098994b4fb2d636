package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/laserpy/unicon/color"
	"github.com/laserpy/unicon/constant"
	"github.com/laserpy/unicon/filesystem"
	"github.com/laserpy/unicon/icon"
	"github.com/laserpy/unicon/log"
	"github.com/laserpy/unicon/script"
	"github.com/laserpy/unicon/style"
	"github.com/laserpy/unicon/util"
	"github.com/laserpy/unicon/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("eval", "e", "", "Evaluate a Lua chunk and print what it returns")
	runCmd.Flags().StringP("gen", "g", "", "Scaffold a new script with the given name in the scripts directory")
	runCmd.Flags().BoolP("list", "l", false, "List the scripts stored in the scripts directory")
	runCmd.MarkFlagsMutuallyExclusive("eval", "gen", "list")

	// Arguments after the script belong to the script.
	runCmd.Flags().SetInterspersed(false)
}

// runCmd executes Lua scripts with the PhysicalConstant table bound.
var runCmd = &cobra.Command{
	Use:   "run [script] [args...]",
	Short: "Run a Lua script with access to the physical constants",
	Long: `Run a Lua script with access to the global PhysicalConstant table.

The script is looked up as a path first, then by name in the scripts directory
(see "unicon where --scripts").`,
	Example: `  unicon run photon.lua 532e-9
  unicon run -e 'return PhysicalConstant.PlanckConstant:value() * PhysicalConstant.SpeedOfLight:value()'
  unicon run --gen photon`,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}
		names, _ := storedScripts()
		return names, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		out := cmd.OutOrStdout()
		opts := script.DefaultOptions()
		opts.Stdout = out

		if chunk := lo.Must(cmd.Flags().GetString("eval")); chunk != "" {
			results, err := script.Eval(ctx, chunk, opts)
			if err != nil {
				return err
			}
			for _, r := range results {
				_, _ = fmt.Fprintln(out, r)
			}
			return nil
		}

		if name := lo.Must(cmd.Flags().GetString("gen")); name != "" {
			path, err := generateScript(name)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "%s created %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
			return err
		}

		if lo.Must(cmd.Flags().GetBool("list")) {
			names, err := storedScripts()
			if err != nil {
				return err
			}
			for _, n := range names {
				_, _ = fmt.Fprintf(out, "%s %s\n", icon.Get(icon.Lua), n)
			}
			return nil
		}

		if len(args) == 0 {
			return errors.New("script is required")
		}

		path, err := locateScript(args[0])
		if err != nil {
			return err
		}

		return script.Run(ctx, path, args[1:], opts)
	},
}

// locateScript resolves target as a path, then as a script name in the scripts directory.
func locateScript(target string) (string, error) {
	if exists, _ := filesystem.API().Exists(target); exists {
		return target, nil
	}

	name := strings.TrimSuffix(target, constant.ScriptExtension)
	stored := filepath.Join(where.Scripts(), script.Filename(name))
	if exists, _ := filesystem.API().Exists(stored); exists {
		return stored, nil
	}

	msg := fmt.Sprintf("script %s not found", style.Fg(color.Red)(target))
	if names, err := storedScripts(); err == nil {
		if closest, ok := closestName(name, names).Get(); ok {
			msg += fmt.Sprintf(", did you mean %s?", style.Fg(color.Yellow)(closest))
		}
	}
	return "", errors.New(msg)
}

// storedScripts lists the script names found in the scripts directory.
func storedScripts() ([]string, error) {
	entries, err := filesystem.API().ReadDir(where.Scripts())
	if err != nil {
		return nil, err
	}

	return lo.FilterMap(entries, func(item os.FileInfo, _ int) (string, bool) {
		if item.IsDir() || filepath.Ext(item.Name()) != constant.ScriptExtension {
			return "", false
		}
		return util.FileStem(item.Name()), true
	}), nil
}

// scaffold writes the starter script body.
var scaffold = script.Scaffold

// generateScript scaffolds a new script and returns its path. A failed scaffold leaves no file behind.
func generateScript(name string) (string, error) {
	author := "Anonymous"
	if usr, err := user.Current(); err == nil {
		author = usr.Username
	}

	target := filepath.Join(where.Scripts(), script.Filename(name))
	if exists, _ := filesystem.API().Exists(target); exists {
		return "", fmt.Errorf("script %s already exists", target)
	}

	f, err := filesystem.API().Create(target)
	if err != nil {
		return "", err
	}

	if err = scaffold(f, name, author); err != nil {
		_ = f.Close()
		if rmErr := filesystem.API().Remove(target); rmErr != nil {
			log.With(log.Fields{"script": target, "error": rmErr}).Warn("removing partial script")
		}
		return "", fmt.Errorf("scaffold %s: %w", name, err)
	}

	if err = f.Close(); err != nil {
		return "", err
	}

	script.Forget(target)
	return target, nil
}

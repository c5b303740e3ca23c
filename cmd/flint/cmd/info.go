package cmd

import (
	"fmt"

	"github.com/go-flint/flint/cmd/flint/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "info",
		Short: "Show resolved project settings",
		Long: `Show the resolved settings of the Flint project in the current
directory.

Displays the module path, application name, entry package, and default
drawing-surface size, after merging flint.yaml (if present) with the
defaults.`,
		Usage: "flint info",
		Run:   runInfo,
	})
}

func runInfo(args []string) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	fmt.Printf("Project root:  %s\n", cfg.Root)
	fmt.Printf("Module path:   %s\n", cfg.ModulePath)
	fmt.Printf("App name:      %s\n", cfg.AppName)
	fmt.Printf("Entry package: %s\n", cfg.Entry)
	fmt.Printf("Surface size:  %dx%d\n", cfg.Width, cfg.Height)
	return nil
}

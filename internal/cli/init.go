package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/megalamo/iconsync/internal/config"
	"github.com/megalamo/iconsync/internal/logging"
	"github.com/megalamo/iconsync/internal/scaffold"
	"github.com/megalamo/iconsync/pkg/iconsync"
)

var initCmd = &cobra.Command{
	Use:   "init [TARGET]",
	Short: "Write a starter iconsync configuration",
	Long: `Init writes an iconsync.yaml and an .env.example into the target
directory (default: current directory). The target must be empty or
non-existent; existing files are never overwritten.

Examples:
  iconsync init .
  iconsync init ./myproject`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var initTemplate string

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "default", "Template to use")
}

func runInit(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	targetPath := "."
	if len(args) == 1 {
		targetPath = args[0]
	}

	projectName := filepath.Base(targetPath)
	if projectName == "." || projectName == ".." {
		if cwd, err := os.Getwd(); err == nil {
			projectName = filepath.Base(cwd)
		} else {
			projectName = "project"
		}
	}

	templates, err := scaffold.ListTemplates()
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}
	valid := false
	for _, t := range templates {
		if t == initTemplate {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: invalid template '%s', available: %v", iconsync.ErrUsage, initTemplate, templates)
	}

	if err := scaffold.NewScaffolder(logger).CreateProject(projectName, initTemplate, targetPath); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	logger.Info("Initialized %s in '%s'.", config.ConfigFileName, targetPath)
	if targetPath != "." {
		logger.Info("Next: cd %s && iconsync scan", targetPath)
	} else {
		logger.Info("Next: iconsync scan")
	}
	return nil
}

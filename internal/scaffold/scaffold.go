// Package scaffold creates starter iconsync project files from embedded
// templates.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/megalamo/iconsync/pkg/iconsync"
)

//go:embed all:templates
var templatesFS embed.FS

// Scaffolder writes project configuration files from a named template.
type Scaffolder struct {
	logger iconsync.Logger
}

// NewScaffolder creates a Scaffolder. Panics if logger is nil.
func NewScaffolder(logger iconsync.Logger) *Scaffolder {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scaffolder{logger: logger}
}

// CreateProject writes the named template into targetPath. The target must
// be empty or absent; existing files are never overwritten.
func (s *Scaffolder) CreateProject(projectName, templateName, targetPath string) error {
	templatePath := "templates/" + templateName
	if _, err := templatesFS.ReadDir(templatePath); err != nil {
		return fmt.Errorf("template '%s' not found: %w", templateName, err)
	}

	isEmpty, err := isDirectoryEmpty(targetPath)
	if err != nil {
		return fmt.Errorf("failed to check target directory: %w", err)
	}
	if !isEmpty {
		return fmt.Errorf("target directory '%s' is not empty; init refuses to overwrite existing files", targetPath)
	}

	if err := os.MkdirAll(targetPath, 0o755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	s.logger.Verbose("creating project '%s' at %s with template '%s'", projectName, targetPath, templateName)
	return s.copyTemplateFiles(templatePath, targetPath, projectName)
}

// copyTemplateFiles recursively copies files from the embedded template to
// the target directory, substituting template variables.
func (s *Scaffolder) copyTemplateFiles(templatePath, targetPath, projectName string) error {
	return fs.WalkDir(templatesFS, templatePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == templatePath {
			return nil
		}

		relPath, err := filepath.Rel(templatePath, path)
		if err != nil {
			return err
		}
		targetFilePath := filepath.Join(targetPath, relPath)

		if d.IsDir() {
			s.logger.Verbose("creating directory: %s", relPath)
			return os.MkdirAll(targetFilePath, 0o755)
		}

		content, err := templatesFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		s.logger.Verbose("creating file: %s", relPath)
		processed := processTemplate(string(content), projectName)
		if err := os.WriteFile(targetFilePath, []byte(processed), 0o644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", targetFilePath, err)
		}
		return nil
	})
}

// processTemplate replaces template variables in content.
func processTemplate(content, projectName string) string {
	return strings.ReplaceAll(content, "{{PROJECT_NAME}}", projectName)
}

// ListTemplates returns the available template names.
func ListTemplates() ([]string, error) {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}

	var templates []string
	for _, entry := range entries {
		if entry.IsDir() {
			templates = append(templates, entry.Name())
		}
	}
	return templates, nil
}

// isDirectoryEmpty reports whether path is absent, or an empty directory.
func isDirectoryEmpty(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check directory: %w", err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("path exists but is not a directory")
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return false, fmt.Errorf("failed to read directory: %w", err)
	}
	return len(entries) == 0, nil
}

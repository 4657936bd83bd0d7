package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nvelliott/flyt/internal/models"
	"github.com/nvelliott/flyt/internal/workflow"
)

// workflowFile mirrors the on-disk YAML shape of a project workflow
type workflowFile struct {
	Workflow struct {
		DefaultStatus string `yaml:"default_status"`
		Statuses      []struct {
			Key  string `yaml:"key"`
			Name string `yaml:"name"`
			Type string `yaml:"type"`
		} `yaml:"statuses"`
		Fields []struct {
			Key      string   `yaml:"key"`
			Name     string   `yaml:"name"`
			Kind     string   `yaml:"kind"`
			Required bool     `yaml:"required"`
			Options  []string `yaml:"options"`
		} `yaml:"fields"`
	} `yaml:"workflow"`
}

// WorkflowPath returns the platform workflow file path, honoring
// XDG_CONFIG_HOME the same way the main config does
func WorkflowPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "flyt", "workflow.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "flyt", "workflow.yaml"), nil
}

// LoadWorkflowOrDefault loads the user's workflow file, falling back
// to the built-in default when none exists yet.
func LoadWorkflowOrDefault() (*workflow.Model, error) {
	path, err := WorkflowPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return parseWorkflow([]byte(DefaultWorkflowYAML))
	}
	return LoadWorkflow(path)
}

// LoadWorkflow reads a project workflow file and builds the validated
// model. Schema problems (unknown types, duplicate keys, dropdowns
// without options) surface here, at the config boundary, so the
// validators downstream never see a malformed model.
func LoadWorkflow(path string) (*workflow.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workflow file: %w", err)
	}
	return parseWorkflow(data)
}

func parseWorkflow(data []byte) (*workflow.Model, error) {
	var file workflowFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse workflow file: %w", err)
	}

	statuses := make([]models.StatusDefinition, 0, len(file.Workflow.Statuses))
	for _, s := range file.Workflow.Statuses {
		statuses = append(statuses, models.StatusDefinition{
			Key:  s.Key,
			Name: s.Name,
			Type: models.StatusType(s.Type),
		})
	}

	fields := make([]models.CustomFieldDefinition, 0, len(file.Workflow.Fields))
	for _, f := range file.Workflow.Fields {
		fields = append(fields, models.CustomFieldDefinition{
			Key:      f.Key,
			Name:     f.Name,
			Kind:     models.FieldKind(f.Kind),
			Required: f.Required,
			Options:  f.Options,
		})
	}

	m, err := workflow.NewModel(statuses, fields, file.Workflow.DefaultStatus)
	if err != nil {
		return nil, fmt.Errorf("invalid workflow schema: %w", err)
	}
	return m, nil
}

// DefaultWorkflowYAML is the starter workflow written by `flyt init`
const DefaultWorkflowYAML = `workflow:
  default_status: todo
  statuses:
    - key: todo
      name: To Do
      type: open
    - key: doing
      name: In Progress
      type: in_progress
    - key: done
      name: Done
      type: closed
  fields:
    - key: description
      name: Description
      kind: textarea
      required: true
    - key: severity
      name: Severity
      kind: dropdown
      options: [low, medium, high]
`

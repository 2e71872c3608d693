// Package precommit renders the pre-commit configuration shipped with
// pcbmate and installs the hooks.
package precommit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pcbmate/pcbmate/pkg/exec"
)

// ConfigFile is the pre-commit configuration filename.
const ConfigFile = ".pre-commit-config.yaml"

// linkedConfigFile is the shared copy hardlinked into repositories by
// AddLinkedConfig.
const linkedConfigFile = ".linked-config.yaml"

// RemoteRepo is the hook repository referenced by remote configs.
const RemoteRepo = "https://github.com/pcbmate/pcbmate"

// Hook is one pre-commit hook definition.
type Hook struct {
	ID            string   `yaml:"id"`
	Args          []string `yaml:"args,omitempty"`
	Name          string   `yaml:"name,omitempty"`
	Entry         string   `yaml:"entry,omitempty"`
	Files         string   `yaml:"files,omitempty"`
	Description   string   `yaml:"description,omitempty"`
	PassFilenames *bool    `yaml:"pass_filenames,omitempty"`
	AlwaysRun     bool     `yaml:"always_run,omitempty"`
	Verbose       bool     `yaml:"verbose,omitempty"`
	Language      string   `yaml:"language,omitempty"`
}

// Repo is one repos: entry of a pre-commit configuration.
type Repo struct {
	Repo  string `yaml:"repo"`
	Rev   string `yaml:"rev,omitempty"`
	Hooks []Hook `yaml:"hooks"`
}

// Config is a full .pre-commit-config.yaml document.
type Config struct {
	Repos []Repo `yaml:"repos"`
}

func no() *bool { v := false; return &v }

// Hooks returns the hook set pcbmate provides. entry commands assume the
// pcbmate binary on PATH.
func Hooks() []Hook {
	return []Hook{
		{
			ID:            "find-altium",
			Args:          []string{"--version", "24.9.1"},
			Name:          "Find AD installation",
			Entry:         "pcbmate where --pin",
			Description:   "Finds Altium Designer installations",
			PassFilenames: no(),
			AlwaysRun:     true,
			Verbose:       true,
			Language:      "system",
		},
		{
			ID:          "altium-run",
			Args:        []string{"--procedure", "ShowInfo('Hello from pcbmate!')"},
			Name:        "Run in AD",
			Entry:       "pcbmate run",
			Files:       `\.(PrjPcb|SchDoc|PcbDoc|OutJob)$`,
			Description: "Runs a script in Altium Designer",
			Language:    "system",
		},
		{
			ID:            "generate-outputs",
			Name:          "Generate design outputs",
			Entry:         "pcbmate outjob",
			Files:         `\.(PrjPcb|SchDoc|PcbDoc|OutJob)$`,
			Description:   "Replays the project output job to regenerate review artifacts",
			PassFilenames: no(),
			Language:      "system",
		},
		{
			ID:            "update-readme",
			Name:          "Update README.md",
			Entry:         "pcbmate readme",
			Files:         `\.(PrjPcb|md)$`,
			PassFilenames: no(),
			Description:   "Updates the README.md file with requested project parameters",
			Language:      "system",
		},
		{
			ID:            "check-unsaved",
			Name:          "Force file saving before commit",
			Entry:         "pcbmate run --procedure CheckForUnsavedDocuments",
			Description:   "Ensures there are no unsaved changes in Altium Designer before committing",
			PassFilenames: no(),
			AlwaysRun:     true,
			Language:      "system",
		},
	}
}

// SampleConfig renders a sample configuration. kind is "local" (hooks
// defined inline, running the pcbmate binary from PATH) or "remote"
// (hooks pulled from the pcbmate repository at rev).
func SampleConfig(kind, rev string) (string, error) {
	var cfg Config
	switch kind {
	case "local":
		cfg.Repos = []Repo{{Repo: "local", Hooks: Hooks()}}
	case "remote":
		var hooks []Hook
		for _, h := range Hooks() {
			hooks = append(hooks, Hook{ID: h.ID, Args: h.Args, Language: "golang"})
		}
		cfg.Repos = []Repo{{Repo: RemoteRepo, Rev: rev, Hooks: hooks}}
	default:
		return "", fmt.Errorf("invalid config type: %s", kind)
	}
	return marshal(cfg)
}

// HooksYAML renders the .pre-commit-hooks.yaml manifest published by the
// hook repository.
func HooksYAML() (string, error) {
	hooks := Hooks()
	out := make([]Hook, 0, len(hooks))
	for _, h := range hooks {
		h.Args = nil
		h.Language = "golang"
		out = append(out, h)
	}
	return marshal(out)
}

func marshal(v interface{}) (string, error) {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("rendering pre-commit config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// AddConfig writes a sample local configuration into dir. An existing
// config is only replaced with force.
func AddConfig(dir, rev string, force bool) error {
	out, err := configTarget(dir, force)
	if err != nil {
		return err
	}
	content, err := SampleConfig("local", rev)
	if err != nil {
		return err
	}
	return os.WriteFile(out, []byte(content), 0o644)
}

// AddLinkedConfig hardlinks a shared sample config (kept in shareDir)
// into dir, so every linked repository picks up config updates together.
func AddLinkedConfig(dir, shareDir, rev string, force bool) error {
	out, err := configTarget(dir, force)
	if err != nil {
		return err
	}
	shared := filepath.Join(shareDir, linkedConfigFile)
	if _, err := os.Stat(shared); os.IsNotExist(err) {
		content, rerr := SampleConfig("local", rev)
		if rerr != nil {
			return rerr
		}
		if werr := os.WriteFile(shared, []byte(content), 0o644); werr != nil {
			return werr
		}
	}
	os.Remove(out)
	return os.Link(shared, out)
}

func configTarget(dir string, force bool) (string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("provided path %s is not a directory", dir)
	}
	out := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(out); err == nil && !force {
		return "", fmt.Errorf("config file %s already exists, use --force to overwrite", out)
	}
	return out, nil
}

// Install runs `pre-commit install` through the executor.
func Install(executor exec.CommandExecutor) (string, error) {
	if _, err := executor.LookPath("pre-commit"); err != nil {
		return "", fmt.Errorf("pre-commit is not installed: %w", err)
	}
	return executor.Execute("pre-commit", "install")
}

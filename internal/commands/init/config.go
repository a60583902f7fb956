package initcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tandemview/tandem/internal/core/config"
)

const configHeader = `# tandem configuration
# Timing values are in milliseconds.
`

// WriteConfig marshals the config to YAML and writes it to path,
// creating parent directories as needed.
func WriteConfig(cfg config.Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	return os.WriteFile(path, append([]byte(configHeader), data...), 0o644)
}

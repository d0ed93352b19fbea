package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/process"

	"d2mapi/packages/Memory/address"
	"d2mapi/packages/Memory/logging"
	"d2mapi/packages/Memory/version"
)

type Config struct {
	GameExecutable   string            `json:"game_executable"`
	Revision         string            `json:"revision,omitempty"`
	LibraryRedirects map[string]string `json:"library_redirects,omitempty"`
	AddressTable     string            `json:"address_table,omitempty"`
	LogLevel         string            `json:"log_level,omitempty"`
	Metrics          bool              `json:"metrics,omitempty"`
}

// LoadConfig reads a JSON config. A missing file yields the defaults; an
// empty game_executable means the executable of the current process.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := json.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}
	if cfg.GameExecutable == "" {
		exe, err := currentExecutable()
		if err != nil {
			return cfg, err
		}
		cfg.GameExecutable = exe
	}
	return cfg, cfg.Validate()
}

func currentExecutable() (string, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return "", fmt.Errorf("failed to open current process: %w", err)
	}
	exe, err := p.Exe()
	if err != nil {
		return "", fmt.Errorf("failed to query current executable: %w", err)
	}
	return exe, nil
}

func (c Config) Validate() error {
	if c.Revision != "" {
		if _, err := version.ParseRevision(c.Revision); err != nil {
			return fmt.Errorf("config revision: %w", err)
		}
	}
	for name := range c.LibraryRedirects {
		if _, err := address.ParseLibrary(name); err != nil {
			return fmt.Errorf("config library_redirects: %w", err)
		}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config log_level: %w", err)
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper WhisperConfig `yaml:"whisper"`
	Output  OutputConfig  `yaml:"output"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	Model      string `yaml:"model"`
	Language   string `yaml:"language"`
	Task       string `yaml:"task"`
}

type OutputConfig struct {
	Formats []string `yaml:"formats"`
	Device  string   `yaml:"device"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads the config file if it exists, captures the WHISPER_*
// environment variables, and applies defaults. A missing file is not an
// error; everything can come from the environment or defaults. After Load
// returns, no component reads ambient environment state.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv captures environment overrides into the config once at load time.
func (c *Config) applyEnv() {
	if v := os.Getenv("WHISPER_BINARY"); v != "" {
		c.Whisper.BinaryPath = v
	}
	if v := os.Getenv("WHISPER_MODEL"); v != "" {
		c.Whisper.Model = v
	}
	if v := os.Getenv("WHISPER_LANGUAGE"); v != "" {
		c.Whisper.Language = v
	}
	if v := os.Getenv("WHISPER_TASK"); v != "" {
		c.Whisper.Task = v
	}
	if v := os.Getenv("WHISPER_FORMATS"); v != "" {
		c.Output.Formats = strings.Split(v, ",")
	}
	if v := os.Getenv("WHISPER_DEVICE"); v != "" {
		c.Output.Device = v
	}
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "small.en"
	}
	if c.Whisper.Task == "" {
		c.Whisper.Task = "transcribe"
	}
	if c.Whisper.Task != "transcribe" && c.Whisper.Task != "translate" {
		return fmt.Errorf("whisper.task must be transcribe or translate, got %q", c.Whisper.Task)
	}

	// Empty language means auto-detect.
	switch strings.ToLower(strings.TrimSpace(c.Whisper.Language)) {
	case "auto", "auto detect":
		c.Whisper.Language = ""
	}

	if len(c.Output.Formats) == 0 {
		c.Output.Formats = []string{"srt", "txt", "json"}
	}
	if c.Output.Device == "" {
		c.Output.Device = "auto"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "inputs"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "outputs"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

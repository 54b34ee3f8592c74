package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "valid explicit config",
			config: Config{
				Whisper: WhisperConfig{Model: "base", Task: "translate", Language: "vi"},
				Output:  OutputConfig{Formats: []string{"srt"}, Device: "cuda"},
			},
			wantErr: false,
		},
		{
			name: "invalid task",
			config: Config{
				Whisper: WhisperConfig{Task: "summarize"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Whisper.Model != "small.en" {
		t.Errorf("Model = %q", cfg.Whisper.Model)
	}
	if cfg.Whisper.Task != "transcribe" {
		t.Errorf("Task = %q", cfg.Whisper.Task)
	}
	if !reflect.DeepEqual(cfg.Output.Formats, []string{"srt", "txt", "json"}) {
		t.Errorf("Formats = %v", cfg.Output.Formats)
	}
	if cfg.Output.Device != "auto" {
		t.Errorf("Device = %q", cfg.Output.Device)
	}
	if cfg.Paths.Output != "outputs" {
		t.Errorf("Output path = %q", cfg.Paths.Output)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}

func TestValidateLanguageAutoSentinel(t *testing.T) {
	for _, raw := range []string{"auto", "Auto Detect", ""} {
		cfg := Config{Whisper: WhisperConfig{Language: raw}}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if cfg.Whisper.Language != "" {
			t.Errorf("Language %q normalized to %q, want empty", raw, cfg.Whisper.Language)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
whisper:
  model: "medium"
  language: "en"
  task: "transcribe"

output:
  formats: [srt, vtt]
  device: "cpu"

paths:
  output: "data/outputs"

logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.Model != "medium" {
		t.Errorf("Model = %q, want %q", cfg.Whisper.Model, "medium")
	}
	if !reflect.DeepEqual(cfg.Output.Formats, []string{"srt", "vtt"}) {
		t.Errorf("Formats = %v", cfg.Output.Formats)
	}
	if cfg.Paths.Output != "data/outputs" {
		t.Errorf("Output path = %q", cfg.Paths.Output)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Whisper.Model != "small.en" {
		t.Errorf("Model = %q", cfg.Whisper.Model)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("WHISPER_MODEL", "turbo")
	t.Setenv("WHISPER_FORMATS", "tsv,json")
	t.Setenv("WHISPER_DEVICE", "cuda")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.Model != "turbo" {
		t.Errorf("Model = %q, want %q", cfg.Whisper.Model, "turbo")
	}
	if !reflect.DeepEqual(cfg.Output.Formats, []string{"tsv", "json"}) {
		t.Errorf("Formats = %v", cfg.Output.Formats)
	}
	if cfg.Output.Device != "cuda" {
		t.Errorf("Device = %q, want %q", cfg.Output.Device, "cuda")
	}
}

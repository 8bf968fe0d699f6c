package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Service.BaseURL != "http://localhost:8000" {
		t.Errorf("Service.BaseURL = %q, want http://localhost:8000", cfg.Service.BaseURL)
	}
	if cfg.Service.Token != "demo-token" {
		t.Errorf("Service.Token = %q, want demo-token", cfg.Service.Token)
	}
	if cfg.Display.WeightUnit != "kg" {
		t.Errorf("Display.WeightUnit = %q, want kg", cfg.Display.WeightUnit)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			cfg:     DefaultConfig(),
			wantErr: false,
		},
		{
			name: "missing base url",
			cfg: Config{
				Display: DisplayConfig{WeightUnit: "kg"},
			},
			wantErr: true,
		},
		{
			name: "bad weight unit",
			cfg: Config{
				Service: ServiceConfig{BaseURL: "http://localhost:8000"},
				Display: DisplayConfig{WeightUnit: "stone"},
			},
			wantErr: true,
		},
		{
			name: "lb is allowed",
			cfg: Config{
				Service: ServiceConfig{BaseURL: "http://localhost:8000"},
				Display: DisplayConfig{WeightUnit: "lb"},
			},
			wantErr: false,
		},
		{
			name: "empty weight unit falls back to default",
			cfg: Config{
				Service: ServiceConfig{BaseURL: "http://localhost:8000"},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

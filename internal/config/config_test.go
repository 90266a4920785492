package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"datasetFmt/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		contents    string
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name:     "missing fields fall back to defaults",
			contents: "[style]\nfont = \"Verdana\"\n",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "Verdana", cfg.Style.Font)
				assert.Equal(t, "right", cfg.Style.DataAlign)
				assert.Equal(t, 12, cfg.Style.DataFontSize)
				assert.Equal(t, "configs/template.yaml", cfg.Build.TemplateFile)
				assert.Equal(t, 20, cfg.UI.RowsPerPage)
			},
		},
		{
			name:     "explicit values are kept",
			contents: "[style]\ndata_align = \"center\"\ndata_font_size = 14\n[build]\noutput_file = \"out.xlsx\"\n",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "center", cfg.Style.DataAlign)
				assert.Equal(t, 14, cfg.Style.DataFontSize)
				assert.Equal(t, "out.xlsx", cfg.Build.OutputFile)
			},
		},
		{
			name:     "unknown alignment is rejected",
			contents: "[style]\ndata_align = \"justify\"\n",
			wantErr:  true,
		},
		{
			name:     "oversized font is rejected",
			contents: "[style]\ndata_font_size = 500\n",
			wantErr:  true,
		},
		{
			name:     "malformed toml",
			contents: "[style\n",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.contents), 0644))

			cfg, err := LoadConfig(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validateCfg(t, cfg)
		})
	}
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "config.toml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(path)
	require.NoError(t, err)

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

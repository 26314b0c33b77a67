package config

import (
	"io"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := defaultConfig()
	require.NotNil(t, cfg)
	assert.NoError(t, cfg.Validate())

	assert.Equal(t, "mysh> ", cfg.Prompt)
	assert.Equal(t, []string{"/usr/local/bin", "/usr/bin", "/bin"}, cfg.SearchPath)
	assert.Equal(t, os.FileMode(0640), cfg.FileMode())
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate  func(c *Configuration)
		wantErr string
	}{
		"defaults": {
			mutate: func(c *Configuration) {},
		},
		"bad mode": {
			mutate:  func(c *Configuration) { c.RedirectFileMode = "0999" },
			wantErr: "redirect_file_mode",
		},
		"mode out of range": {
			mutate:  func(c *Configuration) { c.RedirectFileMode = "17777" },
			wantErr: "redirect_file_mode",
		},
		"relative search dir": {
			mutate:  func(c *Configuration) { c.SearchPath = []string{"bin"} },
			wantErr: "search_path",
		},
		"empty search path": {
			mutate:  func(c *Configuration) { c.SearchPath = nil },
			wantErr: "search_path",
		},
		"unknown color": {
			mutate:  func(c *Configuration) { c.Color = "sometimes" },
			wantErr: "color",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/mysh/config.yaml", []byte("prompt: \"$ \"\nsearch_path: [/opt/bin]\n"), 0600))

	for _, path := range []string{"/etc/mysh", "/etc/mysh/config.yaml"} {
		t.Run(path, func(t *testing.T) {
			cfg, err := LoadFs(fs, path)
			require.NoError(t, err)

			assert.Equal(t, "$ ", cfg.Prompt)
			assert.Equal(t, []string{"/opt/bin"}, cfg.SearchPath)
			// Unset keys keep their defaults.
			assert.Equal(t, "Now leaving mysh", cfg.Farewell)
			assert.True(t, cfg.Banner)
		})
	}
}

func TestLoadFs_errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/unknown/config.yaml", []byte("nosuchkey: 1\n"), 0600))
	require.NoError(t, afero.WriteFile(fs, "/invalid/config.yaml", []byte("color: purple\n"), 0600))

	_, err := LoadFs(fs, "/missing")
	assert.True(t, os.IsNotExist(err), "got %v", err)

	_, err = LoadFs(fs, "/unknown")
	assert.Error(t, err)

	_, err = LoadFs(fs, "/invalid")
	assert.Error(t, err)
}

func TestEventLog(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/config.yaml", []byte("event_log: events.log\n"), 0600))

	cfg, err := LoadFs(fs, "/cfg")
	require.NoError(t, err)

	for _, line := range []string{"one\n", "two\n"} {
		fd, err := cfg.OpenEventLog()
		require.NoError(t, err)
		_, err = io.WriteString(fd, line)
		require.NoError(t, err)
		require.NoError(t, fd.Close())
	}

	contents, err := afero.ReadFile(fs, "/cfg/events.log")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(contents))

	fd, err := cfg.ReadEventLog()
	require.NoError(t, err)
	fd.Close()
}

func TestEventLog_disabled(t *testing.T) {
	cfg := Default()

	_, err := cfg.OpenEventLog()
	assert.ErrorIs(t, err, ErrNoEventLog)
	_, err = cfg.ReadEventLog()
	assert.ErrorIs(t, err, ErrNoEventLog)
}

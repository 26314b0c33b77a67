package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir unless one already
// exists.
func Initialize(dir string, logger *log.Logger) error {
	return InitializeFs(afero.NewOsFs(), dir, logger)
}

func InitializeFs(fs afero.Fs, dir string, logger *log.Logger) error {
	if err := fs.MkdirAll(dir, 0700); err != nil {
		return err
	}

	configPath := filepath.Join(dir, ConfigurationName)
	exists, err := afero.Exists(fs, configPath)
	switch {
	case err != nil:
		return err
	case exists:
		logger.Printf("- %s exists, skipping\n", configPath)
		return nil
	}

	logger.Printf("- Writing %s\n", configPath)
	return afero.WriteFile(fs, configPath, defaultConfigData, os.FileMode(0600))
}

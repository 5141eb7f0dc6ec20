package config

import (
	"log"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir, leaving any
// existing config.yaml untouched, then loads and returns the result.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	fs := afero.NewBasePathFs(afero.NewOsFs(), dir)

	exists, err := afero.Exists(fs, ConfigurationName)
	switch {
	case err != nil:
		return nil, err
	case exists:
		logger.Printf("Found existing %s, leaving as-is", ConfigurationName)
	default:
		logger.Printf("Creating %s", ConfigurationName)
		if err := afero.WriteFile(fs, ConfigurationName, defaultConfigData, 0600); err != nil {
			return nil, err
		}
	}

	return Load(dir)
}

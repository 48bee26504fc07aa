package ingest

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnolang/parsec/record"
)

const DefaultConfigPath = ".parsec.yaml"

// Config is the content of the configuration file.
type Config struct {
	Name       string             `yaml:"name"`
	Extensions []string           `yaml:"extensions"`
	Fields     []record.FieldSpec `yaml:"fields"`
}

// DefaultConfig ingests .rec and .txt files with the Person layout.
func DefaultConfig() Config {
	return Config{
		Name:       "parsec",
		Extensions: []string{".rec", ".txt"},
		Fields:     record.DefaultFields(),
	}
}

// LoadConfig reads a configuration file. A missing file yields the defaults;
// sections left out of the file keep their default values.
func LoadConfig(configurationPath string) (Config, error) {
	config := DefaultConfig()
	if configurationPath == "" {
		return config, nil
	}

	f, err := os.Open(configurationPath)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, err
	}
	defer f.Close()

	var loaded Config
	err = yaml.NewDecoder(f).Decode(&loaded)
	if errors.Is(err, io.EOF) {
		// empty file
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("error decoding %s: %w", configurationPath, err)
	}

	if loaded.Name != "" {
		config.Name = loaded.Name
	}
	if len(loaded.Extensions) > 0 {
		config.Extensions = loaded.Extensions
	}
	if len(loaded.Fields) > 0 {
		config.Fields = loaded.Fields
	}
	return config, nil
}

// WriteConfig writes config to configurationPath as YAML.
func WriteConfig(configurationPath string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}

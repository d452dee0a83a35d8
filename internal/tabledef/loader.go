package tabledef

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the base name for definition files (without extension).
	ConfigFileName = "linedtables"

	// EnvPrefix is the prefix for environment variables.
	EnvPrefix = "LINEDTABLES"
)

// File is the on-disk shape of a table-definition document: a list of named
// table definitions extracted in the listed order.
type File struct {
	Tables []Definition `mapstructure:"tables" yaml:"tables"`
}

// Loader reads table definitions from YAML files and the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a definition loader with its own viper instance.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Load reads the definition file from the standard search paths (current
// directory, then $HOME/.config/linedtables) and validates every table.
func (l *Loader) Load() (*File, error) {
	l.v.SetConfigName(ConfigFileName)
	l.v.SetConfigType("yaml")
	l.v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		l.v.AddConfigPath(home + "/.config/linedtables")
	}
	l.v.SetEnvPrefix(EnvPrefix)
	l.v.AutomaticEnv()

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("no definition file found: %w", err)
		}
		return nil, fmt.Errorf("error reading definition file: %w", err)
	}
	return l.unmarshal()
}

// LoadFile reads table definitions from a specific file path.
func (l *Loader) LoadFile(path string) (*File, error) {
	if path == "" {
		return l.Load()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("definition file does not exist: %s", path)
	}
	l.v.SetConfigFile(path)
	l.v.SetEnvPrefix(EnvPrefix)
	l.v.AutomaticEnv()
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading definition file %s: %w", path, err)
	}
	return l.unmarshal()
}

func (l *Loader) unmarshal() (*File, error) {
	var f File
	if err := l.v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("error unmarshaling definitions: %w", err)
	}
	if len(f.Tables) == 0 {
		return nil, errors.New("definition file declares no tables")
	}
	for i := range f.Tables {
		if err := f.Tables[i].Validate(); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

// ConfigFileUsed returns the path of the definition file that was read.
func (l *Loader) ConfigFileUsed() string { return l.v.ConfigFileUsed() }

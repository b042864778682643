package commands

import (
	"github.com/caarlos0/env/v11"
	"go.trai.ch/zerr"
)

// Settings are the defaults for the global flags, read from the environment.
type Settings struct {
	DefinitionsDir string `env:"MODITEMS_DEFS"  envDefault:"defs"`
	WorldPath      string `env:"MODITEMS_WORLD" envDefault:"world.yaml"`
	JSONLogs       bool   `env:"MODITEMS_JSON"`
	Trace          bool   `env:"MODITEMS_TRACE"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, zerr.Wrap(err, "failed to parse environment")
	}
	return s, nil
}

package registry

// DefinitionFile represents one definitions file.
type DefinitionFile struct {
	Items []ItemDTO `yaml:"items" toml:"items"`
}

// ItemDTO represents a mod item definition in a definitions file.
type ItemDTO struct {
	ID          string        `yaml:"id"          toml:"id"`
	Title       string        `yaml:"title"       toml:"title"`
	Description string        `yaml:"description" toml:"description"`
	Icon        string        `yaml:"icon"        toml:"icon"`
	Cost        int           `yaml:"cost"        toml:"cost"`
	StatMods    []ModifierDTO `yaml:"statMods"    toml:"statMods"`
}

// ModifierDTO represents one stat modifier of an item.
type ModifierDTO struct {
	Key    string  `yaml:"key"    toml:"key"`
	Value  float64 `yaml:"value"  toml:"value"`
	Kind   string  `yaml:"kind"   toml:"kind"`
	Origin int     `yaml:"origin" toml:"origin"`
}

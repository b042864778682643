// Package registry loads mod item definitions and serves them by identifier.
package registry

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/moditems/internal/core/domain"
	"go.trai.ch/moditems/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.DefinitionLoader = (*Loader)(nil)

// Loader implements ports.DefinitionLoader for a directory of YAML or TOML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads every definition file directly inside dir, in file name order.
// All problems found are reported together; no definitions are returned if there are any.
func (l *Loader) Load(dir string) ([]domain.ItemDefinition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, zerr.With(domain.ErrDefinitionsDirNotFound, "dir", dir)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDefinitionsReadFailed.Error()), "dir", dir)
	}

	var (
		defs   []domain.ItemDefinition
		errs   []error
		seenIn = make(map[string]string)
	)

	for _, entry := range entries {
		if entry.IsDir() || !domain.IsDefinitionFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		var file DefinitionFile
		if err := readDefinitionFile(path, &file); err != nil {
			errs = append(errs, err)
			continue
		}

		for i := range file.Items {
			def, err := l.toDomain(&file.Items[i], path)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if first, dup := seenIn[def.ID]; dup {
				err := zerr.With(domain.ErrDuplicateDefinition, "id", def.ID)
				err = zerr.With(err, "file", path)
				errs = append(errs, zerr.With(err, "first_defined_in", first))
				continue
			}
			seenIn[def.ID] = path
			defs = append(defs, def)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return defs, nil
}

func (l *Loader) toDomain(dto *ItemDTO, path string) (domain.ItemDefinition, error) {
	id, ok := domain.CanonicalID(dto.ID)
	if !ok {
		err := zerr.With(domain.ErrInvalidDefinitionID, "id", dto.ID)
		return domain.ItemDefinition{}, zerr.With(err, "file", path)
	}

	def := domain.ItemDefinition{
		ID:          id,
		Title:       dto.Title,
		Description: dto.Description,
		Icon:        dto.Icon,
		Cost:        dto.Cost,
		StatMods:    make([]domain.ModifierSpec, 0, len(dto.StatMods)),
	}

	for i, m := range dto.StatMods {
		if strings.TrimSpace(m.Key) == "" {
			err := zerr.With(domain.ErrEmptyStatKey, "id", id)
			err = zerr.With(err, "index", i)
			return domain.ItemDefinition{}, zerr.With(err, "file", path)
		}

		kind, known := domain.ParseModifierKind(m.Kind)
		if !known && l.Logger != nil {
			l.Logger.Warn("unknown modifier kind, applying as Flat", "item", id, "stat", m.Key, "kind", m.Kind)
		}

		def.StatMods = append(def.StatMods, domain.ModifierSpec{
			Key:    m.Key,
			Value:  m.Value,
			Kind:   kind,
			Origin: m.Origin,
		})
	}

	return def, nil
}

// readDefinitionFile decodes path as TOML or YAML depending on its extension.
func readDefinitionFile[T any](path string, target *T) error {
	// #nosec G304 -- path comes from listing the definitions directory
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDefinitionsReadFailed.Error()), "file", path)
	}

	var parseErr error
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parseErr = toml.Unmarshal(data, target)
	} else {
		parseErr = yaml.Unmarshal(data, target)
	}
	if parseErr != nil {
		return zerr.With(zerr.Wrap(parseErr, domain.ErrDefinitionsParseFailed.Error()), "file", path)
	}

	return nil
}

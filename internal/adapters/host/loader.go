package host

import (
	"errors"
	"os"
	"strings"

	"go.trai.ch/moditems/internal/core/domain"
	"go.trai.ch/moditems/internal/core/ports"
	"go.trai.ch/moditems/internal/core/statgraph"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.WorldLoader = (*Loader)(nil)

const (
	keyFields     = "fields"
	keyProperties = "properties"
	keyStat       = "stat"
	keyEngine     = "engine"
	keyFail       = "fail"
)

// Loader implements ports.WorldLoader for YAML world files.
//
// A world file lists entities. Each entity may have a stats object made of ordered
// "fields" and "properties" maps. Member values are interpreted as:
//
//	{stat: 10}          an attribute with base value 10
//	{engine: <object>}  an engine-owned object, optionally with its own members
//	{fail: "reason"}    a property whose read fails (properties only)
//	{fields: ...}       a nested object
//	"text", 3, true     text and scalar values
//	null                an absent value
//
// YAML anchors and aliases make one object reachable from several members.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the world file at path.
func (l *Loader) Load(path string) (ports.World, error) {
	// #nosec G304 -- path is provided by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWorldReadFailed.Error()), "file", path)
	}

	w, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "file", path)
	}
	return w, nil
}

type worldDTO struct {
	Entities []entityDTO `yaml:"entities"`
}

type entityDTO struct {
	Name  string    `yaml:"name"`
	Stats yaml.Node `yaml:"stats"`
}

// Parse builds a World from YAML data.
func Parse(data []byte) (*World, error) {
	var dto worldDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, domain.ErrWorldParseFailed.Error())
	}

	w := NewWorld()
	for _, e := range dto.Entities {
		if strings.TrimSpace(e.Name) == "" {
			return nil, zerr.With(domain.ErrWorldParseFailed, "reason", "entity without a name")
		}

		p := &parser{objects: make(map[*yaml.Node]*Object)}
		var root *Object
		if e.Stats.Kind != 0 && !isNull(&e.Stats) {
			obj, err := p.object(&e.Stats, e.Name)
			if err != nil {
				return nil, err
			}
			root = obj
		}

		if _, err := w.Spawn(e.Name, root); err != nil {
			return nil, err
		}
	}
	return w, nil
}

type parser struct {
	objects map[*yaml.Node]*Object
}

func (p *parser) object(n *yaml.Node, path string) (*Object, error) {
	n = resolveAlias(n)
	if obj, ok := p.objects[n]; ok {
		return obj, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, unsupported(path, "expected a mapping with fields or properties")
	}

	obj := NewObject()
	p.objects[n] = obj

	var fields, properties *yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		switch key := n.Content[i].Value; key {
		case keyFields:
			fields = n.Content[i+1]
		case keyProperties:
			properties = n.Content[i+1]
		default:
			return nil, unsupported(path+"."+key, "objects may only contain fields and properties")
		}
	}

	if err := p.members(obj, fields, path, false); err != nil {
		return nil, err
	}
	if err := p.members(obj, properties, path, true); err != nil {
		return nil, err
	}
	return obj, nil
}

func (p *parser) members(obj *Object, block *yaml.Node, path string, asProperties bool) error {
	if block == nil || isNull(block) {
		return nil
	}
	block = resolveAlias(block)
	if block.Kind != yaml.MappingNode {
		return unsupported(path, "fields and properties must be mappings")
	}

	for i := 0; i+1 < len(block.Content); i += 2 {
		name := block.Content[i].Value
		memberPath := path + "." + name
		valueNode := resolveAlias(block.Content[i+1])

		if reason, failing := failure(valueNode); failing {
			if !asProperties {
				return unsupported(memberPath, "fail is only allowed under properties")
			}
			obj.Property(name, func() (statgraph.Value, error) {
				return statgraph.Value{}, zerr.Wrap(errors.New(reason), domain.ErrPropertyReadFailed.Error())
			})
			continue
		}

		v, err := p.value(valueNode, memberPath)
		if err != nil {
			return err
		}
		if asProperties {
			obj.Property(name, func() (statgraph.Value, error) { return v, nil })
		} else {
			obj.Field(name, v)
		}
	}
	return nil
}

func (p *parser) value(n *yaml.Node, path string) (statgraph.Value, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return statgraph.Nil(), nil
		case "!!str":
			return statgraph.Text(), nil
		default:
			return statgraph.Scalar(), nil
		}
	case yaml.MappingNode:
		if len(n.Content) == 2 {
			switch n.Content[0].Value {
			case keyStat:
				var base float64
				if err := n.Content[1].Decode(&base); err != nil {
					return statgraph.Value{}, unsupported(path, "stat must be a number")
				}
				return statgraph.Attr(NewStat(base)), nil
			case keyEngine:
				eng := &EngineObject{}
				if payload := resolveAlias(n.Content[1]); !isNull(payload) {
					obj, err := p.object(payload, path)
					if err != nil {
						return statgraph.Value{}, err
					}
					eng.Payload = obj
				}
				return eng.Value(), nil
			}
		}
		obj, err := p.object(n, path)
		if err != nil {
			return statgraph.Value{}, err
		}
		return obj.Value(), nil
	default:
		return statgraph.Value{}, unsupported(path, "sequences are not supported")
	}
}

func failure(n *yaml.Node) (string, bool) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 || n.Content[0].Value != keyFail {
		return "", false
	}
	return n.Content[1].Value, true
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func unsupported(path, reason string) error {
	err := zerr.With(domain.ErrUnsupportedWorldValue, "path", path)
	return zerr.With(err, "reason", reason)
}

// Package config provides the manifest loader for titleparam.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/titleparam/internal/core/domain"
	"go.trai.ch/titleparam/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the manifest file looked up when no path is given.
const DefaultFilename = "titleparam.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the manifest at path. A relative index path is resolved
// against the directory of the manifest.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	if path == "" {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, "manifest"), "path", path), "cause", err.Error())
	}

	m, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if m.IndexPath != "" && !filepath.IsAbs(m.IndexPath) {
		m.IndexPath = filepath.Join(filepath.Dir(path), m.IndexPath)
	}

	if l.Logger != nil {
		l.Logger.Info("loaded manifest", "path", path, "params", len(m.Params))
	}
	return m, nil
}

// Parse decodes manifest bytes. Index paths are returned as written.
func Parse(data []byte) (*domain.Manifest, error) {
	var raw Manifest
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, parseError(err.Error())
	}

	params, err := decodeParams(&raw.Params)
	if err != nil {
		return nil, err
	}

	return &domain.Manifest{
		Version:    raw.Version,
		IndexPath:  raw.Index,
		Namespaces: raw.Namespaces,
		Params:     params,
	}, nil
}

func decodeParams(node *yaml.Node) ([]domain.ParamSpec, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, parseError("params must be a mapping")
	}

	specs := make([]domain.ParamSpec, 0, len(node.Content)/2)
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		if seen[name] {
			return nil, zerr.With(parseError("duplicate parameter"), "param", name)
		}
		seen[name] = true

		opts := map[string]any{}
		if err := node.Content[i+1].Decode(&opts); err != nil {
			return nil, zerr.With(parseError(err.Error()), "param", name)
		}
		if opts == nil {
			opts = map[string]any{}
		}

		typ := domain.ParamTypeTitle
		if v, ok := opts["type"]; ok {
			s, ok := v.(string)
			if !ok {
				return nil, zerr.With(parseError("type must be a string"), "param", name)
			}
			typ = s
		}
		if typ != domain.ParamTypeTitle {
			err := zerr.With(zerr.Wrap(domain.ErrUnsupportedParamType, "manifest"), "param", name)
			return nil, zerr.With(err, "type", typ)
		}

		specs = append(specs, domain.ParamSpec{Name: name, Type: typ, Options: opts})
	}
	return specs, nil
}

func parseError(reason string) error {
	return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "manifest"), "reason", reason)
}

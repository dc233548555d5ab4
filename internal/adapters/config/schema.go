package config

import "gopkg.in/yaml.v3"

// Manifest represents the structure of the titleparam.yaml file.
type Manifest struct {
	Version    string   `yaml:"version"`
	Index      string   `yaml:"index"`
	Namespaces []string `yaml:"namespaces"`
	// Params is kept as a node so declaration order survives decoding.
	Params yaml.Node `yaml:"params"`
}

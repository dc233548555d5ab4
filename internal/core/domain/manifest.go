package domain

// ParamTypeTitle is the only parameter type understood by the engine.
const ParamTypeTitle = "title"

// ParamSpec is one parameter declaration from a manifest.
// Options holds every key of the declaration, including "type", and is fed
// unchanged to the parameter's ApplyConfig.
type ParamSpec struct {
	Name    string
	Type    string
	Options map[string]any
}

// Manifest is a loaded parameter manifest.
type Manifest struct {
	// Version is the manifest format version.
	Version string
	// IndexPath is the absolute path of the page index, or "" when none is configured.
	IndexPath string
	// Namespaces lists the namespace prefixes recognised by the title parser.
	Namespaces []string
	// Params holds the declarations in file order.
	Params []ParamSpec
}

// Param returns the declaration with the given name.
func (m *Manifest) Param(name string) (ParamSpec, bool) {
	for _, p := range m.Params {
		if p.Name == name {
			return p, true
		}
	}
	return ParamSpec{}, false
}

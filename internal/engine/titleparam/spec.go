package titleparam

import (
	"go.trai.ch/titleparam/internal/core/domain"
	"go.trai.ch/titleparam/internal/core/ports"
	"go.trai.ch/titleparam/internal/engine/definition"
	"go.trai.ch/zerr"
)

// FromSpec builds a TitleParam from a manifest declaration.
// An empty type is taken to mean "title".
func FromSpec(
	spec domain.ParamSpec,
	parser ports.TitleParser,
	oracle ports.PageOracle,
	opts ...Option,
) (*TitleParam, error) {
	if spec.Type != "" && spec.Type != domain.ParamTypeTitle {
		err := zerr.With(zerr.Wrap(domain.ErrUnsupportedParamType, "cannot build parameter"), "param", spec.Name)
		return nil, zerr.With(err, "type", spec.Type)
	}

	p := New(definition.New(spec.Name), parser, oracle, opts...)
	if err := p.ApplyConfig(spec.Options); err != nil {
		return nil, zerr.With(err, "param", spec.Name)
	}
	return p, nil
}

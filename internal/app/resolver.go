package app

import (
	"context"
	"runtime"
	"strings"

	"go.trai.ch/titleparam/internal/core/domain"
	"go.trai.ch/titleparam/internal/core/ports"
	"go.trai.ch/titleparam/internal/engine/titleparam"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Input is the set of values supplied for one parameter.
type Input struct {
	// Name is the parameter name or one of its aliases.
	Name   string
	Values []domain.Value
	Mode   domain.Mode
}

// Result is the outcome of resolving one parameter.
type Result struct {
	Param  string
	Titles []*domain.Title
	// Defaulted is true when the parameter was not supplied and its default was used.
	Defaulted bool
}

// Resolver resolves inputs against the parameters of one manifest.
// It may be used for several rounds; parameter caches persist between them.
type Resolver struct {
	params []*titleparam.TitleParam
	logger ports.Logger
}

// Params returns the parameters in manifest order.
func (r *Resolver) Params() []*titleparam.TitleParam {
	return r.params
}

// Param returns the parameter matching name or alias.
func (r *Resolver) Param(name string) (*titleparam.TitleParam, bool) {
	for _, p := range r.params {
		if p.Definition().Matches(name) {
			return p, true
		}
	}
	return nil, false
}

// ParseArgs turns name=value arguments into stringly typed inputs.
// List parameters are split on their delimiter. A later argument for the same
// parameter replaces an earlier one.
func (r *Resolver) ParseArgs(args []string) ([]Input, error) {
	inputs := make([]Input, 0, len(args))
	index := make(map[string]int, len(args))

	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "parse arguments"), "argument", arg)
		}
		p, ok := r.Param(strings.TrimSpace(name))
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownParam, "parse arguments"), "param", name)
		}

		parts := p.Definition().Split(raw)
		values := make([]domain.Value, len(parts))
		for i, part := range parts {
			values[i] = domain.Raw(part)
		}

		in := Input{Name: p.Name(), Values: values, Mode: domain.ModeStringly}
		if i, seen := index[p.Name()]; seen {
			inputs[i] = in
			continue
		}
		index[p.Name()] = len(inputs)
		inputs = append(inputs, in)
	}
	return inputs, nil
}

// Resolve validates and formats the inputs. Every parameter of the manifest
// gets a Result, in manifest order: supplied parameters are validated and
// formatted, missing ones fall back to their default, which is formatted
// without validation.
func (r *Resolver) Resolve(ctx context.Context, inputs []Input) ([]Result, error) {
	supplied := make(map[*titleparam.TitleParam]Input, len(inputs))
	for _, in := range inputs {
		p, ok := r.Param(in.Name)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownParam, "resolve"), "param", in.Name)
		}
		supplied[p] = in
	}

	results := make([]Result, 0, len(r.params))
	for _, p := range r.params {
		var (
			res Result
			err error
		)
		if in, ok := supplied[p]; ok {
			res, err = r.resolveSupplied(ctx, p, in)
		} else {
			res, err = r.resolveDefault(p)
		}
		if err != nil {
			return nil, err
		}
		if r.logger != nil {
			r.logger.Info("resolved parameter", "param", p.Name(), "titles", len(res.Titles), "defaulted", res.Defaulted)
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Resolver) resolveSupplied(ctx context.Context, p *titleparam.TitleParam, in Input) (Result, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, v := range in.Values {
		g.Go(func() error {
			if !p.Validate(gctx, v, in.Mode) {
				err := zerr.With(zerr.Wrap(domain.ErrValidationFailed, "resolve"), "param", p.Name())
				return zerr.With(err, "value", v.PlainText())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	titles := make([]*domain.Title, 0, len(in.Values))
	for _, v := range in.Values {
		t, err := p.Format(v)
		if err != nil {
			return Result{}, err
		}
		titles = append(titles, t)
	}
	return Result{Param: p.Name(), Titles: titles}, nil
}

func (r *Resolver) resolveDefault(p *titleparam.TitleParam) (Result, error) {
	defaults, ok := p.Definition().Default()
	if !ok {
		return Result{}, zerr.With(zerr.Wrap(domain.ErrMissingParam, "resolve"), "param", p.Name())
	}

	titles := make([]*domain.Title, 0, len(defaults))
	for _, d := range defaults {
		t, err := p.Format(domain.Raw(d))
		if err != nil {
			return Result{}, err
		}
		titles = append(titles, t)
	}
	return Result{Param: p.Name(), Titles: titles, Defaulted: true}, nil
}

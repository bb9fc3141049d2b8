// Package registry names every puzzle solver and decodes its arguments from
// YAML so callers outside Go can invoke them.
package registry

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownProblem   = errors.New("registry: unknown problem")
	ErrDuplicateProblem = errors.New("registry: duplicate problem")
	ErrBadArgs          = errors.New("registry: cannot decode arguments")
)

// Problem is one named solver.
type Problem struct {
	Name  string
	Title string

	solve func(args *yaml.Node) (any, error)
}

// Solve decodes args and runs the solver. A nil or empty node runs the
// solver on zero-valued arguments.
func (p Problem) Solve(args *yaml.Node) (any, error) {
	return p.solve(args)
}

// Bind wraps a typed solver. A is decoded from the YAML args node.
func Bind[A any](name, title string, fn func(A) any) Problem {
	return Problem{
		Name:  name,
		Title: title,
		solve: func(node *yaml.Node) (any, error) {
			var args A
			if node != nil && node.Kind != 0 {
				if err := node.Decode(&args); err != nil {
					return nil, fmt.Errorf("%s: %w: %v", name, ErrBadArgs, err)
				}
			}
			return fn(args), nil
		},
	}
}

type Registry struct {
	problems map[string]Problem
}

func New(problems ...Problem) (*Registry, error) {
	r := &Registry{problems: make(map[string]Problem, len(problems))}
	for _, p := range problems {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) Register(p Problem) error {
	if _, ok := r.problems[p.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateProblem, p.Name)
	}
	r.problems[p.Name] = p
	return nil
}

func (r *Registry) Lookup(name string) (Problem, error) {
	p, ok := r.problems[name]
	if !ok {
		return Problem{}, fmt.Errorf("%w: %q", ErrUnknownProblem, name)
	}
	return p, nil
}

// Names lists registered problems in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *Registry) Solve(name string, args *yaml.Node) (any, error) {
	p, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return p.Solve(args)
}

// ParseArgs reads a YAML or JSON document into a node suitable for Solve.
func ParseArgs(text string) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0], nil
	}
	return &doc, nil
}

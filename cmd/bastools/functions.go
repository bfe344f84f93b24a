package main

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var errUnknownFunc = errors.New("unknown function")

// builtin is a named function f(x, p) with optional numeric arguments.
type builtin struct {
	Doc  string
	Args []string
	New  func(args map[string]float64) func(x, p float64) float64
}

var builtins = map[string]builtin{
	"lorentz": {
		Doc:  "1 / (1 + ((x-center)/p)²), p is the half width",
		Args: []string{"center"},
		New: func(args map[string]float64) func(x, p float64) float64 {
			c := arg(args, "center", 0)
			return func(x, p float64) float64 {
				u := (x - c) / p
				return 1 / (1 + u*u)
			}
		},
	},
	"gauss": {
		Doc:  "exp(-(x-center)² / 2p²), p is the standard deviation",
		Args: []string{"center"},
		New: func(args map[string]float64) func(x, p float64) float64 {
			c := arg(args, "center", 0)
			return func(x, p float64) float64 {
				u := (x - c) / p
				return math.Exp(-u * u / 2)
			}
		},
	},
	"power": {
		Doc:  "scale · x^p",
		Args: []string{"scale"},
		New: func(args map[string]float64) func(x, p float64) float64 {
			a := arg(args, "scale", 1)
			return func(x, p float64) float64 { return a * math.Pow(x, p) }
		},
	},
	"damped": {
		Doc:  "exp(-p·x) · cos(omega·x)",
		Args: []string{"omega"},
		New: func(args map[string]float64) func(x, p float64) float64 {
			w := arg(args, "omega", 2*math.Pi)
			return func(x, p float64) float64 { return math.Exp(-p*x) * math.Cos(w*x) }
		},
	},
	"sin": {
		Doc:  "sin(p·x + phase)",
		Args: []string{"phase"},
		New: func(args map[string]float64) func(x, p float64) float64 {
			phi := arg(args, "phase", 0)
			return func(x, p float64) float64 { return math.Sin(p*x + phi) }
		},
	},
	"exp": {
		Doc:  "scale · exp(p·x)",
		Args: []string{"scale"},
		New: func(args map[string]float64) func(x, p float64) float64 {
			a := arg(args, "scale", 1)
			return func(x, p float64) float64 { return a * math.Exp(p*x) }
		},
	},
}

// lookupFunc instantiates the builtin name. Arguments the function does
// not know are rejected.
func lookupFunc(name string, args map[string]float64) (func(x, p float64) float64, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", errUnknownFunc, name, funcNames())
	}
	for k := range args {
		known := false
		for _, a := range b.Args {
			if a == k {
				known = true
			}
		}
		if !known {
			return nil, fmt.Errorf("function %s: unknown argument %q (known: %v)", name, k, b.Args)
		}
	}
	return b.New(args), nil
}

func arg(args map[string]float64, key string, def float64) float64 {
	if v, ok := args[key]; ok {
		return v
	}
	return def
}

func funcNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

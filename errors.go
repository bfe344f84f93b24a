package bastools

import "errors"

var (
	ErrNoX             = errors.New("bastools: no x values")
	ErrNoParam         = errors.New("bastools: no parameter values")
	ErrNoCurves        = errors.New("bastools: no curves")
	ErrNoFunc          = errors.New("bastools: curve without function")
	ErrLogDomain       = errors.New("bastools: non-positive value on log scale")
	ErrUnknownColorMap = errors.New("bastools: unknown colormap")
	ErrLineStyle       = errors.New("bastools: unknown line style")
	ErrFormat          = errors.New("bastools: unknown output format")
)

// Package escape computes escape-time grids for the Mandelbrot set.
//
// The package maps a rectangular character grid onto a region of the
// complex plane and iterates z <- z^2 + c for every sample point:
//
//   - [Viewport]: rectangle of the complex plane being sampled
//   - [Resolution]: number of sample columns and rows
//   - [Grid]: row-major escape counts produced by [Compute]
//   - [Count]: escape count of a single point
//
// # Example
//
//	vp := escape.Viewport{XMin: -2, XMax: 1, YMin: -1.5, YMax: 1.5}
//	grid := escape.Compute(vp, escape.Resolution{Width: 80, Height: 24}, 1000)
//
// # Preconditions
//
// Bounds must be finite with XMin < XMax and YMin < YMax, dimensions and
// the iteration cap must be positive. These are not checked here; see
// package config for validation.
package escape

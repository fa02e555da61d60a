// Package sigmask converts signature scans into white-on-transparent assets
// for display on dark backgrounds.
//
// Opacity is derived from per-pixel stroke intensity: the maximum RGB channel
// is run through a clamped linear ramp, the result is cropped to the strokes
// plus a fixed padding, and the color is replaced with uniform white. The
// package works entirely in memory; file handling lives in ProcessFile and
// the sigmask CLI.
package sigmask

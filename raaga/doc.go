// Package raaga models the scale system for Hindustani melodic tracking:
// a swara-to-semitone table covering three octave bands with komal and
// tivra variants, and a registry of named raagas (ordered sets of permitted
// scale degrees within an octave).
//
// # Usage
//
// Look up a built-in raaga and snap a detected semitone onto it:
//
//	reg := raaga.NewRegistry()
//	scale, _ := reg.Scale("bhupali")
//	snapped := scale.Snap(3) // -> 2 or 4, whichever degree is nearer
//
// Register a custom raaga from swara names (symbols resolve eagerly, so an
// unknown swara fails at definition time rather than during tracking):
//
//	err := reg.Define("durga", []string{"Sa", "Re", "Ma", "Dha", "Sa'"})
package raaga

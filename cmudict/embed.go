// Package cmudict embeds an abridged word-to-syllable-count table derived
// from the Carnegie Mellon pronouncing dictionary. Counts follow the first
// listed pronunciation. Words are lowercase and may contain apostrophes.
//
// Usage:
//
//	dict, err := cmudict.Load()
//	n := dict["lincoln"] // 2
package cmudict

import "embed"

//go:embed data/cmudict.txt
var FS embed.FS

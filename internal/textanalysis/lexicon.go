// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package textanalysis

// sentimentLexicon maps lowercase words to polarity valences in [-1, 1].
// The list is a compact news-domain lexicon; words absent from it
// contribute nothing to the sentiment score.
var sentimentLexicon = map[string]float64{
	// Positive
	"good":          0.5,
	"great":         0.8,
	"excellent":     0.9,
	"amazing":       0.8,
	"awesome":       0.8,
	"outstanding":   0.9,
	"fantastic":     0.8,
	"wonderful":     0.8,
	"brilliant":     0.8,
	"remarkable":    0.7,
	"impressive":    0.7,
	"innovative":    0.6,
	"breakthrough":  0.7,
	"success":       0.7,
	"successful":    0.7,
	"win":           0.6,
	"wins":          0.6,
	"winner":        0.6,
	"victory":       0.7,
	"triumph":       0.7,
	"record":        0.3,
	"growth":        0.5,
	"grow":          0.4,
	"growing":       0.4,
	"gains":         0.5,
	"gain":          0.4,
	"rise":          0.3,
	"rises":         0.3,
	"rising":        0.3,
	"surge":         0.4,
	"soar":          0.5,
	"soars":         0.5,
	"boost":         0.5,
	"boosts":        0.5,
	"improve":       0.5,
	"improves":      0.5,
	"improved":      0.5,
	"improvement":   0.5,
	"recovery":      0.5,
	"recover":       0.4,
	"strong":        0.4,
	"stronger":      0.4,
	"best":          0.8,
	"better":        0.5,
	"top":           0.3,
	"leading":       0.3,
	"popular":       0.4,
	"love":          0.7,
	"loved":         0.7,
	"happy":         0.7,
	"hope":          0.4,
	"hopeful":       0.5,
	"optimistic":    0.6,
	"positive":      0.5,
	"promising":     0.6,
	"praise":        0.6,
	"praised":       0.6,
	"celebrate":     0.6,
	"celebrated":    0.6,
	"benefit":       0.5,
	"benefits":      0.5,
	"safe":          0.4,
	"secure":        0.4,
	"thrive":        0.6,
	"thriving":      0.6,
	"progress":      0.5,
	"milestone":     0.5,
	"approval":      0.4,
	"approved":      0.4,
	"agreement":     0.3,
	"deal":          0.2,
	"acclaimed":     0.7,
	"revolutionary": 0.6,

	// Negative
	"bad":           -0.5,
	"terrible":      -0.8,
	"horrible":      -0.8,
	"awful":         -0.8,
	"worst":         -0.9,
	"worse":         -0.5,
	"poor":          -0.5,
	"fail":          -0.6,
	"fails":         -0.6,
	"failed":        -0.6,
	"failure":       -0.7,
	"loss":          -0.5,
	"losses":        -0.5,
	"lose":          -0.5,
	"loses":         -0.5,
	"losing":        -0.5,
	"decline":       -0.4,
	"declines":      -0.4,
	"declining":     -0.4,
	"drop":          -0.3,
	"drops":         -0.3,
	"fall":          -0.3,
	"falls":         -0.3,
	"falling":       -0.3,
	"plunge":        -0.5,
	"plunges":       -0.5,
	"crash":         -0.7,
	"crashes":       -0.7,
	"crisis":        -0.7,
	"collapse":      -0.7,
	"disaster":      -0.8,
	"catastrophe":   -0.9,
	"tragedy":       -0.8,
	"tragic":        -0.8,
	"death":         -0.7,
	"deaths":        -0.7,
	"dead":          -0.7,
	"killed":        -0.8,
	"kill":          -0.8,
	"war":           -0.6,
	"attack":        -0.6,
	"attacks":       -0.6,
	"violence":      -0.7,
	"violent":       -0.7,
	"threat":        -0.5,
	"threats":       -0.5,
	"fear":          -0.5,
	"fears":         -0.5,
	"panic":         -0.6,
	"worry":         -0.4,
	"worries":       -0.4,
	"concern":       -0.3,
	"concerns":      -0.3,
	"risk":          -0.3,
	"risks":         -0.3,
	"danger":        -0.6,
	"dangerous":     -0.6,
	"fraud":         -0.7,
	"scandal":       -0.6,
	"corruption":    -0.7,
	"lawsuit":       -0.4,
	"ban":           -0.4,
	"banned":        -0.4,
	"layoffs":       -0.6,
	"recession":     -0.6,
	"inflation":     -0.4,
	"debt":          -0.4,
	"shortage":      -0.4,
	"outbreak":      -0.6,
	"pandemic":      -0.6,
	"injury":        -0.5,
	"injured":       -0.5,
	"damage":        -0.5,
	"hate":          -0.7,
	"angry":         -0.6,
	"anger":         -0.6,
	"sad":           -0.5,
	"negative":      -0.5,
	"problem":       -0.4,
	"problems":      -0.4,
	"warning":       -0.4,
	"weak":          -0.4,
	"weaker":        -0.4,
	"criticism":     -0.4,
	"criticized":    -0.5,
	"controversy":   -0.4,
	"controversial": -0.3,
}

// negators invert the valence of the word that follows them.
var negators = map[string]struct{}{
	"not":     {},
	"no":      {},
	"never":   {},
	"nobody":  {},
	"nothing": {},
	"neither": {},
	"nor":     {},
	"cannot":  {},
	"without": {},
}

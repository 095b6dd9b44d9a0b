// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package textanalysis

import (
	"math"
	"sort"
	"strings"
)

// Analyzer performs text feature extraction over article text. Create one
// with NewAnalyzer and share it freely; it holds only immutable
// configuration.
type Analyzer struct {
	cfg Config
}

// Analysis is the result of analyzing an article's text fields.
type Analysis struct {
	// SentimentScore is the lexical polarity in [-1, 1].
	SentimentScore float64 `json:"sentiment_score"`

	// Keywords are the top extracted terms, strongest first.
	Keywords []string `json:"keywords"`

	// ReadingTime is the estimated reading time in whole minutes (>= 1).
	ReadingTime int `json:"reading_time"`

	// Category is the inferred category, or "general".
	Category string `json:"category"`
}

// NewAnalyzer creates an analyzer, filling zero config fields from
// DefaultConfig.
func NewAnalyzer(cfg Config) *Analyzer {
	def := DefaultConfig()
	if cfg.WordsPerMinute <= 0 {
		cfg.WordsPerMinute = def.WordsPerMinute
	}
	if cfg.KeywordCount <= 0 {
		cfg.KeywordCount = def.KeywordCount
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = def.Categories
	}
	if cfg.StopWords == nil {
		cfg.StopWords = def.StopWords
	}
	return &Analyzer{cfg: cfg}
}

// Analyze extracts all features from an article's text fields. The
// sentiment, keyword, and reading-time passes run over the concatenation
// of title, description, and content; categorization tests only title and
// description against the category table.
func (a *Analyzer) Analyze(title, description, content string) Analysis {
	full := title + " " + description + " " + content

	keywords := a.ExtractKeywords(full, a.cfg.KeywordCount)

	return Analysis{
		SentimentScore: a.SentimentScore(full),
		Keywords:       keywords,
		ReadingTime:    a.EstimateReadingTime(full),
		Category:       a.Categorize(keywords, title, description),
	}
}

// Normalize lowercases the text, strips every character that is not an
// ASCII letter or whitespace, and collapses runs of whitespace into
// single spaces. Empty input yields empty output.
func (a *Analyzer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// SentimentScore estimates the lexical polarity of the raw text in
// [-1, 1]. The score is the mean valence of lexicon words found in the
// text, with a preceding negator inverting a word's valence. Text with no
// lexicon hits, including empty text, scores 0.0. Identical input always
// produces an identical score.
func (a *Analyzer) SentimentScore(text string) float64 {
	if text == "" {
		return 0.0
	}

	tokens := strings.Fields(a.Normalize(text))
	if len(tokens) == 0 {
		return 0.0
	}

	var sum float64
	var hits int
	for i, tok := range tokens {
		valence, ok := sentimentLexicon[tok]
		if !ok {
			continue
		}
		if i > 0 {
			if _, neg := negators[tokens[i-1]]; neg {
				valence = -valence
			}
		}
		sum += valence
		hits++
	}

	if hits == 0 {
		return 0.0
	}

	score := sum / float64(hits)
	return math.Max(-1, math.Min(1, score))
}

// termStat tracks a candidate keyword's frequency and first occurrence.
type termStat struct {
	term  string
	count int
	first int
}

// ExtractKeywords returns up to topN terms ordered by descending TF-IDF
// weight over the unigrams and bigrams of the normalized, stop-word
// filtered text. For a single document the inverse-document-frequency
// factor is constant, so the ordering reduces to term frequency; ties
// break by first occurrence. Degenerate input yields an empty slice,
// never an error.
func (a *Analyzer) ExtractKeywords(text string, topN int) []string {
	if text == "" || topN <= 0 {
		return nil
	}

	tokens := strings.Fields(a.Normalize(text))

	// Drop stop words and single-letter tokens before building n-grams,
	// so bigrams span the remaining sequence.
	filtered := tokens[:0:0]
	for _, tok := range tokens {
		if len(tok) < 2 {
			continue
		}
		if _, stop := a.cfg.StopWords[tok]; stop {
			continue
		}
		filtered = append(filtered, tok)
	}
	if len(filtered) == 0 {
		return nil
	}

	stats := make(map[string]*termStat, len(filtered)*2)
	position := 0
	observe := func(term string) {
		s, ok := stats[term]
		if !ok {
			s = &termStat{term: term, first: position}
			stats[term] = s
		}
		s.count++
		position++
	}

	for i, tok := range filtered {
		observe(tok)
		if i+1 < len(filtered) {
			observe(tok + " " + filtered[i+1])
		}
	}

	ordered := make([]*termStat, 0, len(stats))
	for _, s := range stats {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].first < ordered[j].first
	})

	if len(ordered) > topN {
		ordered = ordered[:topN]
	}
	keywords := make([]string, len(ordered))
	for i, s := range ordered {
		keywords[i] = s.term
	}
	return keywords
}

// EstimateReadingTime estimates the reading time of the text in whole
// minutes, assuming the configured words-per-minute speed and rounding to
// the nearest minute with a floor of 1.
func (a *Analyzer) EstimateReadingTime(text string) int {
	words := len(strings.Fields(text))
	minutes := int(math.Round(float64(words) / float64(a.cfg.WordsPerMinute)))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Categorize tests the article's title and description against the
// ordered category table and returns the first category with any keyword
// match, or "general" when nothing matches. Matching is a lowercase
// substring test, not tokenized, so "ai" inside a longer headline counts.
// The keywords argument is accepted for signature compatibility with
// Analyze but categorization is driven by title and description alone.
func (a *Analyzer) Categorize(_ []string, title, description string) string {
	text := strings.ToLower(title + " " + description)

	for _, rule := range a.cfg.Categories {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule.Name
			}
		}
	}
	return "general"
}

// Categories returns the category names in table order, with the
// "general" fallback appended.
func (a *Analyzer) Categories() []string {
	names := make([]string, 0, len(a.cfg.Categories)+1)
	for _, rule := range a.cfg.Categories {
		names = append(names, rule.Name)
	}
	return append(names, "general")
}

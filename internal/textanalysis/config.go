// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package textanalysis

// CategoryRule maps a category name to the keywords that select it.
// Rules are evaluated in slice order and the first rule with any keyword
// appearing in the article's title or description wins, regardless of how
// many keywords later rules would match. Changing the order changes
// observable categorization.
type CategoryRule struct {
	// Name is the category identifier.
	Name string `json:"name"`

	// Keywords are lowercase substrings tested against the normalized
	// title and description.
	Keywords []string `json:"keywords"`
}

// Config contains the immutable vocabulary and tuning constants for an
// Analyzer. A zero Config is usable: NewAnalyzer fills every field from
// DefaultConfig.
type Config struct {
	// WordsPerMinute is the assumed reading speed for reading-time
	// estimates.
	WordsPerMinute int `json:"words_per_minute"`

	// KeywordCount is the number of keywords Analyze extracts.
	KeywordCount int `json:"keyword_count"`

	// Categories is the ordered category table.
	Categories []CategoryRule `json:"categories"`

	// StopWords is the set of terms excluded from keyword extraction.
	StopWords map[string]struct{} `json:"-"`
}

// DefaultConfig returns the standard analyzer configuration: a 200 wpm
// reading speed, 15 keywords per article, the fixed seven-entry category
// table, and the English stop-word list.
func DefaultConfig() Config {
	return Config{
		WordsPerMinute: 200,
		KeywordCount:   15,
		Categories:     defaultCategories(),
		StopWords:      defaultStopWords(),
	}
}

// defaultCategories returns the fixed category table. Order matters:
// earlier entries win ties (technology beats business for "AI startup
// raises funding").
func defaultCategories() []CategoryRule {
	return []CategoryRule{
		{Name: "technology", Keywords: []string{
			"tech", "technology", "software", "ai", "artificial intelligence",
			"machine learning", "programming", "startup", "innovation",
		}},
		{Name: "business", Keywords: []string{
			"business", "economy", "finance", "market", "investment",
			"stock", "trading", "company", "corporate",
		}},
		{Name: "politics", Keywords: []string{
			"politics", "government", "election", "policy", "democrat",
			"republican", "congress", "senate", "president",
		}},
		{Name: "sports", Keywords: []string{
			"sports", "football", "basketball", "baseball", "soccer",
			"tennis", "olympics", "championship", "game",
		}},
		{Name: "entertainment", Keywords: []string{
			"entertainment", "movie", "music", "celebrity", "hollywood",
			"film", "actor", "actress", "award",
		}},
		{Name: "health", Keywords: []string{
			"health", "medical", "medicine", "disease", "treatment",
			"hospital", "doctor", "patient", "covid",
		}},
		{Name: "science", Keywords: []string{
			"science", "research", "study", "discovery", "experiment",
			"laboratory", "scientist", "physics", "chemistry",
		}},
	}
}

// defaultStopWords returns the English stop-word set used for keyword
// extraction.
func defaultStopWords() map[string]struct{} {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "am",
		"an", "and", "any", "are", "as", "at", "be", "because", "been",
		"before", "being", "below", "between", "both", "but", "by", "can",
		"could", "did", "do", "does", "doing", "down", "during", "each",
		"few", "for", "from", "further", "had", "has", "have", "having",
		"he", "her", "here", "hers", "herself", "him", "himself", "his",
		"how", "i", "if", "in", "into", "is", "it", "its", "itself",
		"just", "me", "more", "most", "my", "myself", "no", "nor", "not",
		"now", "of", "off", "on", "once", "only", "or", "other", "our",
		"ours", "ourselves", "out", "over", "own", "said", "same", "she",
		"should", "so", "some", "such", "than", "that", "the", "their",
		"theirs", "them", "themselves", "then", "there", "these", "they",
		"this", "those", "through", "to", "too", "under", "until", "up",
		"very", "was", "we", "were", "what", "when", "where", "which",
		"while", "who", "whom", "why", "will", "with", "would", "you",
		"your", "yours", "yourself", "yourselves",
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

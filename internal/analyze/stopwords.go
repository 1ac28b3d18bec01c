// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

// defaultStopwords combines common English function words with terms that
// appear in nearly every title of the corpus and carry no signal there.
var defaultStopwords = []string{
	// English function words.
	"the", "and", "for", "with", "from", "this", "that", "are", "was",
	"were", "has", "have", "had", "can", "its", "their", "these", "those",
	"into", "among", "between", "during", "after", "before", "over",
	"under", "about", "against", "through", "than", "when", "where",
	"which", "while", "who", "whom", "whose", "will", "would", "could",
	"should", "may", "might", "must", "not", "nor", "but", "all", "any",
	"both", "each", "more", "most", "other", "some", "such", "only",
	"own", "same", "too", "very", "via", "per", "use", "used", "using",

	// Corpus-specific terms present in nearly every title.
	"covid", "sars", "cov", "coronavirus", "pandemic", "novel",
	"based", "study", "analysis", "case", "cases", "review",
}

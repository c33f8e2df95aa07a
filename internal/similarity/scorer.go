// Package similarity scores the textual similarity of two documents.
//
// The primary measure vectorises both texts with a TF-IDF vocabulary fit
// jointly on just the two documents (unigrams + bigrams, English
// stopwords removed, capped feature count) and takes the cosine of the
// two vectors. A two-document TF-IDF measures term overlap weighted by
// rarity within the pair, which is stable without a reference corpus.
//
// Degenerate input (empty after tokenisation, zero-norm vectors) falls
// back to a Ratcliff/Obershelp sequence ratio over the lowercased raw
// strings; two empty inputs score 0.
package similarity

import (
	"math"
	"sort"
	"strings"

	"jobmate/monitor-service/internal/textutil"
)

const defaultMaxFeatures = 1000

// Scorer computes pairwise text similarity. Stateless; safe for
// concurrent use.
type Scorer struct {
	maxFeatures int
}

// NewScorer returns a Scorer with the default feature cap.
func NewScorer() *Scorer {
	return &Scorer{maxFeatures: defaultMaxFeatures}
}

// Score returns the similarity of two texts in [0, 1]. Symmetric:
// Score(a, b) == Score(b, a) up to floating-point error.
func (s *Scorer) Score(text1, text2 string) float64 {
	if strings.TrimSpace(text1) == "" || strings.TrimSpace(text2) == "" {
		return 0
	}

	terms1 := tokenize(text1)
	terms2 := tokenize(text2)
	if len(terms1) == 0 || len(terms2) == 0 {
		return sequenceRatio(text1, text2)
	}

	counts1 := termCounts(terms1)
	counts2 := termCounts(terms2)
	vocab := buildVocabulary(counts1, counts2, s.maxFeatures)

	vec1 := tfidfVector(counts1, counts2, vocab)
	vec2 := tfidfVector(counts2, counts1, vocab)

	cos, ok := cosine(vec1, vec2)
	if !ok {
		return sequenceRatio(text1, text2)
	}
	return clamp01(cos)
}

// ─── TF-IDF ──────────────────────────────────────────────────────────────────

// tokenize normalises text, drops stopwords and emits unigrams plus
// bigrams over the remaining tokens.
func tokenize(text string) []string {
	fields := strings.Fields(textutil.Normalize(text))

	kept := fields[:0]
	for _, f := range fields {
		if !stopwords[f] {
			kept = append(kept, f)
		}
	}

	terms := make([]string, 0, 2*len(kept))
	terms = append(terms, kept...)
	for i := 0; i+1 < len(kept); i++ {
		terms = append(terms, kept[i]+" "+kept[i+1])
	}
	return terms
}

func termCounts(terms []string) map[string]int {
	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		counts[t]++
	}
	return counts
}

// buildVocabulary merges both documents' terms, keeping at most
// maxFeatures of them ranked by total count (ties alphabetical, so the
// cap is deterministic).
func buildVocabulary(counts1, counts2 map[string]int, maxFeatures int) []string {
	totals := make(map[string]int, len(counts1)+len(counts2))
	for t, n := range counts1 {
		totals[t] += n
	}
	for t, n := range counts2 {
		totals[t] += n
	}

	vocab := make([]string, 0, len(totals))
	for t := range totals {
		vocab = append(vocab, t)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if totals[vocab[i]] != totals[vocab[j]] {
			return totals[vocab[i]] > totals[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})
	if len(vocab) > maxFeatures {
		vocab = vocab[:maxFeatures]
	}
	return vocab
}

// tfidfVector computes the smoothed-IDF, L2-normalisable weight vector
// for doc over the shared vocabulary. With a two-document corpus the
// document frequency of a term is 1 or 2.
func tfidfVector(doc, other map[string]int, vocab []string) []float64 {
	const corpusSize = 2
	vec := make([]float64, len(vocab))
	for i, term := range vocab {
		tf := doc[term]
		if tf == 0 {
			continue
		}
		df := 1
		if other[term] > 0 {
			df = 2
		}
		idf := math.Log(float64(1+corpusSize)/float64(1+df)) + 1
		vec[i] = float64(tf) * idf
	}
	return vec
}

// cosine returns the cosine of two equal-length vectors after L2
// normalisation; ok is false when either vector has zero norm.
func cosine(a, b []float64) (float64, bool) {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, false
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

// ─── Sequence-ratio fallback ─────────────────────────────────────────────────

// sequenceRatio is the Ratcliff/Obershelp measure: twice the total length
// of the recursively matched common blocks over the combined length.
func sequenceRatio(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	total := len(ra) + len(rb)
	if total == 0 {
		return 0
	}
	matched := matchedLength(ra, rb)
	return clamp01(2 * float64(matched) / float64(total))
}

// matchedLength sums the longest common substring and recurses on the
// unmatched left and right remainders.
func matchedLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ai, bi, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchedLength(a[:ai], b[:bi]) +
		matchedLength(a[ai+size:], b[bi+size:])
}

func longestCommonSubstring(a, b []rune) (ai, bi, size int) {
	// prev[j] holds the common-suffix length ending at a[i-1], b[j-1].
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > size {
					size = curr[j]
					ai = i - size
					bi = j - size
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}
	return ai, bi, size
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// stopwords is a compact English stopword list; enough to keep boilerplate
// from dominating the bigram space.
var stopwords = func() map[string]bool {
	words := []string{
		"a", "an", "and", "are", "as", "at", "be", "been", "but", "by",
		"for", "from", "had", "has", "have", "he", "her", "his", "i",
		"if", "in", "into", "is", "it", "its", "of", "on", "or", "our",
		"s", "she", "so", "that", "the", "their", "them", "then",
		"there", "these", "they", "this", "to", "was", "we", "were",
		"which", "will", "with", "you", "your",
	}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}()

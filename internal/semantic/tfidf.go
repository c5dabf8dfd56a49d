package semantic

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"
)

const topTermCount = 10

var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// TFIDF is the offline similarity engine: term-frequency/inverse-document-
// frequency vectors over unigrams and bigrams with stop-words removed,
// compared by cosine similarity. It is deterministic and never errors.
type TFIDF struct{}

// Similarity vectorizes both texts and returns the cosine similarity scaled
// to 0-100, plus the terms with the highest resume-weight x template-weight
// product.
func (TFIDF) Similarity(_ context.Context, resumeText, jobDescription string) (Similarity, error) {
	resumeTerms := terms(resumeText)
	jobTerms := terms(jobDescription)

	resumeVec := vectorize(resumeTerms, jobTerms)
	jobVec := vectorize(jobTerms, resumeTerms)

	score := cosine(resumeVec, jobVec) * 100

	return Similarity{
		Score:         score,
		MatchingTerms: topCommonTerms(resumeVec, jobVec, topTermCount),
	}, nil
}

// terms tokenizes, drops stop-words and produces unigram plus bigram counts.
func terms(text string) map[string]int {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)
	filtered := tokens[:0:0]
	for _, token := range tokens {
		if !stopwords[token] {
			filtered = append(filtered, token)
		}
	}

	counts := make(map[string]int, len(filtered)*2)
	for i, token := range filtered {
		counts[token]++
		if i+1 < len(filtered) {
			counts[token+" "+filtered[i+1]]++
		}
	}
	return counts
}

// vectorize builds an l2-normalized tf-idf vector for a two-document corpus,
// with smoothed idf so terms present in both documents are down-weighted
// rather than zeroed.
func vectorize(doc, other map[string]int) map[string]float64 {
	vec := make(map[string]float64, len(doc))
	norm := 0.0
	for _, term := range sortedTerms(doc) {
		tf := doc[term]
		df := 1
		if other[term] > 0 {
			df = 2
		}
		idf := math.Log(3.0/float64(1+df)) + 1
		weight := float64(tf) * idf
		vec[term] = weight
		norm += weight * weight
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for term := range vec {
		vec[term] /= norm
	}
	return vec
}

func cosine(a, b map[string]float64) float64 {
	dot := 0.0
	for _, term := range sortedVecTerms(a) {
		dot += a[term] * b[term]
	}
	if dot > 1 {
		dot = 1
	}
	return dot
}

// sortedTerms and sortedVecTerms fix the float accumulation order so the
// engine is deterministic across runs, as its contract promises.
func sortedTerms(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedVecTerms(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func topCommonTerms(a, b map[string]float64, limit int) []string {
	type scored struct {
		term    string
		product float64
	}
	var common []scored
	for term, weight := range a {
		if other := b[term]; other > 0 {
			common = append(common, scored{term: term, product: weight * other})
		}
	}
	sort.Slice(common, func(i, j int) bool {
		if common[i].product != common[j].product {
			return common[i].product > common[j].product
		}
		return common[i].term < common[j].term
	})
	if len(common) > limit {
		common = common[:limit]
	}
	out := make([]string, 0, len(common))
	for _, c := range common {
		out = append(out, c.term)
	}
	return out
}

// Package retrieval provides relevance-ranked lexical search over a small job
// subset using the Okapi BM25 weighting scheme. The index is built per
// request at construction time, is immutable thereafter, and holds no
// external state: no embeddings, no persistence.
package retrieval

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/types"
)

// BM25 free parameters. Standard values; the corpora here are tens of
// documents, so tuning buys nothing.
const (
	k1 = 1.5
	b  = 0.75
)

// Hit is one ranked document: the position of the job in the input slice the
// index was built from, and its BM25 relevance score.
type Hit struct {
	JobIndex int
	Score    float64
}

// Index is an inverted index over synthetic job documents.
type Index struct {
	docs      []document
	termFreqs []map[string]int // per-document term counts
	docFreq   map[string]int   // number of documents containing each term
	avgLen    float64
}

type document struct {
	jobIndex int
	length   int
}

// BuildIndex constructs an index over the given jobs. Each job contributes
// one synthetic document: its description (or "{title} at {company}" when the
// description is blank) concatenated with the raw skills string. The document
// remembers the job's position in the input slice.
func BuildIndex(jobs []types.Job) *Index {
	idx := &Index{
		docFreq: make(map[string]int),
	}

	for i, job := range jobs {
		body := strings.TrimSpace(job.Description)
		if body == "" {
			body = fmt.Sprintf("%s at %s", job.Title, job.Company)
		}

		terms := tokenize(body + " " + job.Skills)

		freq := make(map[string]int, len(terms))
		for _, t := range terms {
			freq[t]++
		}
		for t := range freq {
			idx.docFreq[t]++
		}

		idx.docs = append(idx.docs, document{jobIndex: i, length: len(terms)})
		idx.termFreqs = append(idx.termFreqs, freq)
	}

	total := 0
	for _, d := range idx.docs {
		total += d.length
	}
	if len(idx.docs) > 0 {
		idx.avgLen = float64(total) / float64(len(idx.docs))
	}

	return idx
}

// Query ranks the indexed documents against the query text (typically the
// full résumé) and returns hits in descending score order. Documents that
// share no terms with the query are omitted; ties keep the original job
// order.
func (idx *Index) Query(text string) []Hit {
	if len(idx.docs) == 0 {
		return nil
	}

	queryTerms := dedupe(tokenize(text))
	if len(queryTerms) == 0 {
		return nil
	}

	n := float64(len(idx.docs))
	var hits []Hit
	for i, doc := range idx.docs {
		score := 0.0
		for _, term := range queryTerms {
			tf := float64(idx.termFreqs[i][term])
			if tf == 0 {
				continue
			}
			df := float64(idx.docFreq[term])
			idf := logIDF(n, df)
			norm := tf * (k1 + 1) / (tf + k1*(1-b+b*float64(doc.length)/idx.avgLen))
			score += idf * norm
		}
		if score > 0 {
			hits = append(hits, Hit{JobIndex: doc.jobIndex, Score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	return hits
}

// logIDF is the BM25 inverse document frequency with +1 smoothing, which
// keeps the contribution positive even for terms present in most documents.
func logIDF(n, df float64) float64 {
	return math.Log(1 + (n-df+0.5)/(df+0.5))
}

// tokenize lower-cases the text and splits it on anything that is not a
// letter or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func dedupe(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := terms[:0]
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

package recommend

import (
	"sort"
	"strings"
)

// DefaultTopK is the number of classes returned when the caller has no preference.
const DefaultTopK = 3

// Candidate is one class eligible for recommendation.
type Candidate struct {
	Name        string
	Description string
}

// Document is the text scored for c.
func (c Candidate) Document() string {
	return c.Name + " " + c.Description
}

// Scored is a candidate with its similarity to the query.
type Scored struct {
	Name  string
	Score float64
}

// Score returns every candidate with its similarity to interests, sorted by
// descending score. Ties keep input order.
func Score(interests []string, candidates []Candidate) []Scored {
	if len(candidates) == 0 {
		return []Scored{}
	}

	corpus := make([]string, 0, len(candidates)+1)
	corpus = append(corpus, strings.Join(interests, " "))
	for _, c := range candidates {
		corpus = append(corpus, c.Document())
	}

	rows := Vectorize(corpus).Rows
	query := rows[0]

	scored := make([]Scored, len(candidates))
	for i, c := range candidates {
		scored[i] = Scored{Name: c.Name, Score: Cosine(query, rows[i+1])}
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})
	return scored
}

// Recommend returns the names of the topK candidates most similar to
// interests. A non-positive topK is treated as DefaultTopK.
func Recommend(interests []string, candidates []Candidate, topK int) []string {
	if topK <= 0 {
		topK = DefaultTopK
	}

	scored := Score(interests, candidates)
	if topK > len(scored) {
		topK = len(scored)
	}

	names := make([]string, topK)
	for i := range names {
		names[i] = scored[i].Name
	}
	return names
}

package recommend

import (
	"math"
	"sort"
)

// Vector is a dense term-weight vector indexed by a Matrix vocabulary.
type Vector []float64

// Dot returns the inner product of v and o. Products are summed in
// ascending order, so vectors holding the same weights under different
// terms produce bit-identical results.
func (v Vector) Dot(o Vector) float64 {
	n := min(len(v), len(o))
	products := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if p := v[i] * o[i]; p != 0 {
			products = append(products, p)
		}
	}
	return sumAscending(products)
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Cosine returns the cosine similarity of a and b, or 0 if either is zero.
func Cosine(a, b Vector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	return a.Dot(b) / (na * nb)
}

// Matrix is a TF-IDF document-term matrix. Terms is sorted and Rows[i] is
// the L2-normalised vector of the i-th input document.
type Matrix struct {
	Terms []string
	Rows  []Vector
	index map[string]int
}

// Weight returns the weight of term in document doc, or 0 if the term is
// not in the vocabulary.
func (m *Matrix) Weight(doc int, term string) float64 {
	j, ok := m.index[term]
	if !ok {
		return 0
	}
	return m.Rows[doc][j]
}

// Vectorize builds the TF-IDF matrix for corpus over one shared vocabulary.
// Row order matches input order.
func Vectorize(corpus []string) *Matrix {
	n := len(corpus)
	counts := make([]map[string]int, n)
	df := make(map[string]int)

	for i, doc := range corpus {
		tf := make(map[string]int)
		for _, tok := range Tokenize(doc) {
			tf[tok]++
		}
		for term := range tf {
			df[term]++
		}
		counts[i] = tf
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	for j, term := range terms {
		index[term] = j
		idf[j] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}

	rows := make([]Vector, n)
	for i, tf := range counts {
		v := make(Vector, len(terms))
		for term, c := range tf {
			j := index[term]
			v[j] = float64(c) * idf[j]
		}
		normalize(v)
		rows[i] = v
	}
	return &Matrix{Terms: terms, Rows: rows, index: index}
}

func normalize(v Vector) {
	norm := v.Norm()
	if norm == 0 {
		return
	}
	for i := range v {
		v[i] /= norm
	}
}

func sumAscending(xs []float64) float64 {
	sort.Float64s(xs)
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum
}

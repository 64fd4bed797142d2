// Package recommend ranks AP classes against a student's interests.
//
// Documents are compared in a TF-IDF vector space built over the query and
// every candidate in one corpus:
//
//	tf(t, d)  = raw count of t in d
//	idf(t)    = ln((1 + N) / (1 + df(t))) + 1
//	w(t, d)   = tf(t, d) * idf(t), L2-normalised per document
//	sim(q, c) = q · c  (cosine of the normalised vectors, 0 for zero vectors)
//
// Tokens are maximal runs of Unicode letters, digits and '_' taken from the
// lower-cased document; runs shorter than two runes are dropped.
//
// Everything in this package is pure and safe for concurrent use.
package recommend

// Package index holds the two directions of the in-memory index and the
// word store backing both. The inverted direction drives scoring; the
// forward direction drives per-document iteration (match, removal, word
// frequencies, duplicate detection). Mutators keep the two in lockstep.
package index

// InvertedIndex maps a word to the documents containing it and their
// normalized term frequency.
type InvertedIndex struct {
	Postings map[string]map[int32]float64
}

// NewInvertedIndex creates an empty inverted index.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{Postings: make(map[string]map[int32]float64)}
}

// Accumulate adds tf to the stored frequency of word in document id.
func (ii *InvertedIndex) Accumulate(word string, id int32, tf float64) {
	docs, ok := ii.Postings[word]
	if !ok {
		docs = make(map[int32]float64)
		ii.Postings[word] = docs
	}
	docs[id] += tf
}

// PostingsFor returns the document→frequency map for word. The returned map
// is a read-only view of index state.
func (ii *InvertedIndex) PostingsFor(word string) (map[int32]float64, bool) {
	docs, ok := ii.Postings[word]
	return docs, ok
}

// DocumentFrequency returns the number of documents containing word.
func (ii *InvertedIndex) DocumentFrequency(word string) int {
	return len(ii.Postings[word])
}

// DeleteDocument removes document id from word's postings. An emptied inner
// map is left in place; only the entry disappears.
func (ii *InvertedIndex) DeleteDocument(word string, id int32) {
	if docs, ok := ii.Postings[word]; ok {
		delete(docs, id)
	}
}

package index

// ForwardIndex is the transpose of InvertedIndex: for each document, the
// words it contains and their normalized term frequency. It exists so that
// per-document operations do not have to scan every posting list.
type ForwardIndex struct {
	Terms map[int32]map[string]float64
}

// NewForwardIndex creates an empty forward index.
func NewForwardIndex() *ForwardIndex {
	return &ForwardIndex{Terms: make(map[int32]map[string]float64)}
}

// EnsureDocument materializes the (possibly empty) term map for id. A
// document whose text was entirely stop words still owns an entry here.
func (fi *ForwardIndex) EnsureDocument(id int32) {
	if _, ok := fi.Terms[id]; !ok {
		fi.Terms[id] = make(map[string]float64)
	}
}

// Accumulate adds tf to the stored frequency of word in document id.
func (fi *ForwardIndex) Accumulate(id int32, word string, tf float64) {
	fi.EnsureDocument(id)
	fi.Terms[id][word] += tf
}

// TermsFor returns the word→frequency map for id. The returned map is a
// read-only view of index state.
func (fi *ForwardIndex) TermsFor(id int32) (map[string]float64, bool) {
	terms, ok := fi.Terms[id]
	return terms, ok
}

// Has reports whether id owns a term map.
func (fi *ForwardIndex) Has(id int32) bool {
	_, ok := fi.Terms[id]
	return ok
}

// DeleteDocument removes id's term map entirely.
func (fi *ForwardIndex) DeleteDocument(id int32) {
	delete(fi.Terms, id)
}

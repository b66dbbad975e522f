// Package store owns the per-document metadata and the ordered set of live
// document ids, which is the public iteration surface of the index.
package store

import (
	"github.com/huandu/skiplist"

	"github.com/dabramov/search-server/internal/errors"
	"github.com/dabramov/search-server/model"
)

// DocumentData is the metadata retained per document.
type DocumentData struct {
	Rating int32
	Status model.Status
}

// DocumentStore maps document ids to their metadata and keeps the live ids
// in ascending order. The skiplist gives ordered iteration without a sort on
// every read.
type DocumentStore struct {
	Docs map[int32]DocumentData
	ids  *skiplist.SkipList
}

// NewDocumentStore creates an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		Docs: make(map[int32]DocumentData),
		ids:  skiplist.New(skiplist.Int32),
	}
}

// Put registers id with its metadata.
func (ds *DocumentStore) Put(id int32, data DocumentData) {
	ds.Docs[id] = data
	ds.ids.Set(id, struct{}{})
}

// Get returns the metadata for id.
func (ds *DocumentStore) Get(id int32) (DocumentData, bool) {
	data, ok := ds.Docs[id]
	return data, ok
}

// Has reports whether id is live.
func (ds *DocumentStore) Has(id int32) bool {
	_, ok := ds.Docs[id]
	return ok
}

// Delete removes id and its metadata.
func (ds *DocumentStore) Delete(id int32) {
	delete(ds.Docs, id)
	ds.ids.Remove(id)
}

// Count returns the number of live documents.
func (ds *DocumentStore) Count() int {
	return len(ds.Docs)
}

// IDs returns the live document ids in ascending order.
func (ds *DocumentStore) IDs() []int32 {
	ids := make([]int32, 0, ds.ids.Len())
	for el := ds.ids.Front(); el != nil; el = el.Next() {
		ids = append(ids, el.Key().(int32))
	}
	return ids
}

// DocumentID returns the id at the given position of the ascending id
// sequence. Retained for callers of the legacy positional accessor.
func (ds *DocumentStore) DocumentID(index int) (int32, error) {
	if index < 0 || index >= ds.ids.Len() {
		return 0, &errors.IndexOutOfRangeError{Index: index, Size: ds.ids.Len()}
	}
	el := ds.ids.Front()
	for i := 0; i < index; i++ {
		el = el.Next()
	}
	return el.Key().(int32), nil
}

package model

// DocumentID identifies a document within the catalogue.
type DocumentID string

// Collection tags for catalogue documents.
const (
	CollectionDiagram   = "diagram"
	CollectionDataModel = "data-model"
)

// Document is a named unit of textual content (diagram source or data
// file). Immutable once loaded; replaced wholesale on reload.
type Document struct {
	id         DocumentID
	label      string
	collection string
	body       string
}

func NewDocument(id DocumentID, label string, collection string, body string) *Document {
	return &Document{
		id:         id,
		label:      label,
		collection: collection,
		body:       body,
	}
}

func (d *Document) ID() DocumentID {
	return d.id
}

func (d *Document) Label() string {
	return d.label
}

func (d *Document) Collection() string {
	return d.collection
}

func (d *Document) Body() string {
	return d.body
}

// CatalogueEntry describes a document to be loaded from the content source.
type CatalogueEntry struct {
	ID         DocumentID `yaml:"id"`
	Label      string     `yaml:"label"`
	Location   string     `yaml:"location"`
	Collection string     `yaml:"collection"`
}

// Selection is the ordered set of document identifiers chosen for a single
// render request. Insertion order is preserved; duplicates are ignored.
type Selection struct {
	ids  []DocumentID
	seen map[DocumentID]struct{}
}

func NewSelection(ids ...DocumentID) *Selection {
	s := &Selection{
		ids:  make([]DocumentID, 0, len(ids)),
		seen: make(map[DocumentID]struct{}, len(ids)),
	}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s *Selection) Add(id DocumentID) {
	if _, exists := s.seen[id]; exists {
		return
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *Selection) IDs() []DocumentID {
	ids := make([]DocumentID, len(s.ids))
	copy(ids, s.ids)
	return ids
}

func (s *Selection) Len() int {
	return len(s.ids)
}

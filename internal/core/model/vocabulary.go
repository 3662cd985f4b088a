package model

// VocabularyTerm is one leaf entry of the vocabulary document: the path of
// keys leading to it and its textual content.
type VocabularyTerm struct {
	Path string `json:"path"`
	Text string `json:"text"`
}

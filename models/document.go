package models

// RawDocument is the output of the upstream HTML extraction stage: plain text
// plus a naive paragraph split. It is read once and never modified.
type RawDocument struct {
	DocID      string   `json:"doc_id"`
	Filename   string   `json:"filename"`
	Title      string   `json:"title,omitempty"`
	RawText    string   `json:"raw_text"`
	Paragraphs []string `json:"paragraphs"`
}

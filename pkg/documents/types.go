package documents

// Metadata carries where a document came from.
type Metadata struct {
	Link   string `json:"link,omitempty"`
	Title  string `json:"title,omitempty"`
	Source string `json:"source,omitempty"`
}

// Document is one unit of loaded text: either an original page/file or an
// excerpt carved out of one.
type Document struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Metadata Metadata `json:"metadata"`

	// ParentID links an excerpt back to the document it was cut from.
	ParentID string `json:"parent_id,omitempty"`

	// TopicName groups documents into a retrieval collection.
	TopicName string `json:"topic_name,omitempty"`

	// Tokens is the whitespace-token count of Text.
	Tokens int `json:"tokens"`

	// Order is the excerpt's position within its parent.
	Order int `json:"order"`

	Keywords []string `json:"keywords,omitempty"`
}

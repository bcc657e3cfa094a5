package domain

// UploadedDocument is the transient form of a PDF submitted by a client.
// It only lives for the duration of one request.
type UploadedDocument struct {
	Data        []byte
	Filename    string
	Size        int64 // size declared by the client
	ContentType string
}

// DocumentInfo is what the container decoder reports about a PDF.
type DocumentInfo struct {
	Title     string
	Author    string
	Creator   string
	Producer  string
	PageCount int
}

// ResultMetadata is the metadata section of an ExtractionResult.
// Absent fields are nil and omitted from JSON.
type ResultMetadata struct {
	Title    *string `json:"title,omitempty"`
	Author   *string `json:"author,omitempty"`
	Creator  *string `json:"creator,omitempty"`
	Producer *string `json:"producer,omitempty"`
	FileSize *string `json:"fileSize,omitempty"`
}

// ExtractionResult is returned once per request and never modified afterwards.
// Either Error is set and the other fields are zero, or Error is empty.
type ExtractionResult struct {
	Text      string         `json:"text"`
	PageCount int            `json:"pageCount"`
	Metadata  ResultMetadata `json:"metadata"`
	Error     string         `json:"error,omitempty"`
}

// Failed reports whether the result carries an error instead of content.
func (r ExtractionResult) Failed() bool {
	return r.Error != ""
}

// TextRun is a contiguous styled fragment of text.
type TextRun struct {
	T string
}

// TextItem is one positioned text element on a page, made of one or more runs.
type TextItem struct {
	Runs []TextRun
}

// TextPage holds the text items of one page in reading order.
type TextPage struct {
	Texts []TextItem
}

// TextDocument is the tree emitted by a TextTokenizer.
type TextDocument struct {
	Pages []TextPage
}

// TokenizerEvent is the single terminal event of a TextTokenizer.
// Exactly one of Document or Err is set.
type TokenizerEvent struct {
	Document *TextDocument
	Err      error
}

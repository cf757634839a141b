package models

// FileSummary echoes the metadata of one received file part. Contents are
// never retained beyond these three fields.
type FileSummary struct {
	OriginalName string `json:"originalName" msgpack:"originalName"`
	MimeType     string `json:"mimeType" msgpack:"mimeType"`
	SizeBytes    int64  `json:"sizeBytes" msgpack:"sizeBytes"`
}

// AskResponse is the acceptance payload for one submission. Timestamp is
// server-generated at acceptance time, RFC 3339.
type AskResponse struct {
	Message   string        `json:"message" msgpack:"message"`
	Question  string        `json:"question" msgpack:"question"`
	Files     []FileSummary `json:"files" msgpack:"files"`
	Timestamp string        `json:"timestamp" msgpack:"timestamp"`
}

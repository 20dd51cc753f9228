package models

// FileInfo describes an attachment derived from its leading bytes.
type FileInfo struct {
	MimeType  string `json:"mime_type"`
	Extension string `json:"extension"`
}

// Attachment is a decoded binary attachment with its derived file name.
type Attachment struct {
	Data     []byte   `json:"-"`
	FileName string   `json:"file_name"`
	Info     FileInfo `json:"info"`
}

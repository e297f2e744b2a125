package models

// Export is a rendered text document ready for download.
type Export struct {
	FileName string `json:"fileName"`
	Content  string `json:"content"`
}

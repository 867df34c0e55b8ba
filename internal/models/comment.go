package models

// Comment is an immutable note on a project. Comments are ordered by append
// sequence and are never edited or deleted.
type Comment struct {
	Text      string `json:"text"`
	UserID    string `json:"userId"`
	Timestamp string `json:"timestamp"`
}

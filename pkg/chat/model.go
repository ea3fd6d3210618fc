package chat

import "time"

// Message is one entry in the shared message log. The server assigns both
// the ID and the timestamp.
type Message struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

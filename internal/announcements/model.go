package announcements

import "time"

// Ad is a short promotional message shown on the landing page, newest
// first. DatePosted is set once at creation and never changes.
type Ad struct {
	ID         int64     `json:"id"`
	Content    string    `json:"content"`
	DatePosted time.Time `json:"date_posted"`
}

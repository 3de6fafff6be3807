package models

import "time"

// NewsItem is the persisted form of a news headline.
type NewsItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
}

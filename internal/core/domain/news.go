package domain

import "time"

// NewsItem is a headline shown in the news panel. Lists are ordered by PublishedAt.
type NewsItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
}

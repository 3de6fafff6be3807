package dto

import (
	"time"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
)

// CreateNewsRequest defines a news item. PublishedAt defaults to now.
type CreateNewsRequest struct {
	Title       string     `json:"title" binding:"required,max=256"`
	Content     string     `json:"content" binding:"required"`
	Source      string     `json:"source" binding:"required,max=128"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// NewsResponse mirrors domain.NewsItem.
type NewsResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
}

// ToNewsResponse converts a domain.NewsItem to NewsResponse DTO
func ToNewsResponse(n *domain.NewsItem) NewsResponse {
	return NewsResponse{
		ID:          n.ID,
		Title:       n.Title,
		Content:     n.Content,
		Source:      n.Source,
		PublishedAt: n.PublishedAt,
	}
}

// ToListNewsResponse converts news items to their DTOs.
func ToListNewsResponse(items []domain.NewsItem) []NewsResponse {
	res := make([]NewsResponse, len(items))
	for i := range items {
		res[i] = ToNewsResponse(&items[i])
	}
	return res
}

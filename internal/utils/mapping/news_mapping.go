package mapping

import (
	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	"github.com/SscSPs/macro_dashboard_app/internal/models"
)

// ToModelNewsItem converts a domain NewsItem to its model
func ToModelNewsItem(d domain.NewsItem) models.NewsItem {
	return models.NewsItem{
		ID:          d.ID,
		Title:       d.Title,
		Content:     d.Content,
		Source:      d.Source,
		PublishedAt: d.PublishedAt,
	}
}

// ToDomainNewsItem converts a model NewsItem to its domain form
func ToDomainNewsItem(m models.NewsItem) domain.NewsItem {
	return domain.NewsItem{
		ID:          m.ID,
		Title:       m.Title,
		Content:     m.Content,
		Source:      m.Source,
		PublishedAt: m.PublishedAt,
	}
}

// ToDomainNewsSlice converts a slice of model news items.
func ToDomainNewsSlice(ms []models.NewsItem) []domain.NewsItem {
	ds := make([]domain.NewsItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNewsItem(m)
	}
	return ds
}

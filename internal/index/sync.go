package index

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/starford/billabong/internal/checksum"
	"github.com/starford/billabong/internal/models"
)

// SyncStats summarises one Sync pass.
type SyncStats struct {
	Indexed int
	Removed int
	Skipped int
}

// Sync brings the index up to date with the blog index:
//   - new/changed published articles are upserted
//   - articles that disappeared or were unpublished are deleted
func Sync(db *DB, blog *models.BlogIndex, logger *slog.Logger) (SyncStats, error) {
	var stats SyncStats

	checksums, err := db.AllChecksums()
	if err != nil {
		return stats, err
	}

	live := make(map[string]struct{}, len(blog.Articles))
	now := time.Now().UTC()
	for _, a := range blog.Articles {
		if !a.Published {
			continue
		}
		live[a.ID] = struct{}{}

		raw, _ := json.Marshal(a)
		cs := checksum.Sum(raw)
		if checksums[a.ID] == cs {
			stats.Skipped++
			continue
		}
		row := ArticleRow{
			ID:               a.ID,
			Title:            a.Title,
			ShortDescription: a.ShortDescription,
			Category:         a.Category,
			Tags:             a.Tags,
			Body:             a.Content,
			CreationDate:     a.CreationDate,
			Checksum:         cs,
			UpdatedAt:        now,
		}
		if err := db.UpsertArticle(row); err != nil {
			logger.Warn("sync: index failed", slog.String("id", a.ID), slog.String("error", err.Error()))
			continue
		}
		stats.Indexed++
		logger.Debug("sync: indexed", slog.String("id", a.ID))
	}

	// Remove stale entries.
	for id := range checksums {
		if _, ok := live[id]; ok {
			continue
		}
		if err := db.DeleteArticle(id); err != nil {
			logger.Warn("sync: delete failed", slog.String("id", id), slog.String("error", err.Error()))
		} else {
			stats.Removed++
			logger.Debug("sync: removed stale", slog.String("id", id))
		}
	}

	return stats, nil
}

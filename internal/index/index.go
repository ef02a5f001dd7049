package index

import "context"

// ArticleIndex is the search side of the index. Consumers depend on this
// interface rather than the concrete *DB type.
type ArticleIndex interface {
	UpsertArticle(a ArticleRow) error
	DeleteArticle(id string) error
	AllChecksums() (map[string]string, error)
	Search(query string, limit int) ([]SearchResult, error)
	Count() (int, error)
}

// SubmissionLog records contact form dispatch attempts.
type SubmissionLog interface {
	RecordSubmission(ctx context.Context, s Submission) error
	ListSubmissions(ctx context.Context, limit int) ([]Submission, error)
}

var (
	_ ArticleIndex  = (*DB)(nil)
	_ SubmissionLog = (*DB)(nil)
)

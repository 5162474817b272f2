package service

import (
	"context"
	"log"

	"aicompliance/internal/model"
	"aicompliance/internal/repository"
)

// DocumentSearcher retrieves relevant regulatory chunks for a query.
// The chat service depends on this interface, not on the Mongo repo.
type DocumentSearcher interface {
	Search(ctx context.Context, query string, k int64, category string) ([]model.DocumentMatch, error)
}

// DocumentService exposes the regulatory corpus: text search for the RAG
// pipeline plus category and stats endpoints.
type DocumentService struct {
	documents repository.DocumentRepo
}

// NewDocumentService creates a new document service
func NewDocumentService(documents repository.DocumentRepo) *DocumentService {
	return &DocumentService{
		documents: documents,
	}
}

// Search runs a text search over the corpus and returns matches with their
// source metadata
func (s *DocumentService) Search(ctx context.Context, query string, k int64, category string) ([]model.DocumentMatch, error) {
	if k <= 0 || k > 20 {
		k = 5
	}

	docs, err := s.documents.Search(ctx, query, k, category)
	if err != nil {
		return nil, err
	}

	matches := make([]model.DocumentMatch, len(docs))
	for i, doc := range docs {
		matches[i] = model.DocumentMatch{
			Content: doc.Content,
			Metadata: map[string]any{
				"doc_id":   doc.DocID,
				"title":    doc.Title,
				"category": doc.Category,
				"source":   doc.Source,
			},
		}
	}
	return matches, nil
}

// Categories lists the distinct corpus categories
func (s *DocumentService) Categories(ctx context.Context) ([]string, error) {
	return s.documents.Categories(ctx)
}

// Stats describes the state of the corpus. Partial failures degrade to
// zero counts rather than failing the endpoint.
func (s *DocumentService) Stats(ctx context.Context) (*model.DocumentStats, error) {
	chunks, err := s.documents.CountChunks(ctx)
	if err != nil {
		log.Printf("Failed to count corpus chunks: %v", err)
	}

	docs, err := s.documents.CountDocuments(ctx)
	if err != nil {
		log.Printf("Failed to count corpus documents: %v", err)
	}

	categories, err := s.documents.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return &model.DocumentStats{
		TotalChunks:    int(chunks),
		TotalDocuments: int(docs),
		Categories:     categories,
		LastUpdates:    map[string]string{},
	}, nil
}

package service

import "fmt"

// RetrievalError wraps a vector index query failure. An empty match set is
// not an error; only a failed query produces one of these.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("similar-brand retrieval failed: %v", e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// GenerationError wraps a text-generation failure. The pipeline halts on it:
// there is nothing to parse and no basis for a logo prompt.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("brand kit generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// EmbeddingError wraps a query embedding failure, which prevents retrieval
// from running at all.
type EmbeddingError struct {
	Err error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("query embedding failed: %v", e.Err)
}

func (e *EmbeddingError) Unwrap() error {
	return e.Err
}

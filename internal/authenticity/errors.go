// Package authenticity analyzes repositories for signs of AI-generated
// code, combining GitHub content retrieval with an LLM judge.
package authenticity

import (
	"errors"
	"fmt"
)

// Sentinel conditions an analysis can end in without a transport failure.
var (
	// ErrNoFiles means the repository tree held no analyzable text files.
	ErrNoFiles = errors.New("no text files found for analysis")
	// ErrNoWeight means every candidate file chunked down to nothing.
	ErrNoWeight = errors.New("no analyzable files")
)

// RepoError is a failure tied to a repository as a whole.
type RepoError struct {
	Owner   string
	Repo    string
	Message string
	Cause   error
}

func (e *RepoError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("repo %s/%s: %s: %v", e.Owner, e.Repo, e.Message, e.Cause)
	}
	return fmt.Sprintf("repo %s/%s: %s", e.Owner, e.Repo, e.Message)
}

func (e *RepoError) Unwrap() error {
	return e.Cause
}

// FileError is a failure tied to a single file within a repository.
type FileError struct {
	Path    string
	Message string
	Cause   error
}

func (e *FileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("file %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("file %s: %s", e.Path, e.Message)
}

func (e *FileError) Unwrap() error {
	return e.Cause
}

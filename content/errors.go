package content

import (
	"errors"
	"fmt"
)

// ErrSlugCollision is returned by Index.Rebuild when two post slugs differ
// only by letter case.
var ErrSlugCollision = errors.New("content: slug collision")

// DirectoryReadError reports a content directory that could not be listed.
type DirectoryReadError struct {
	Dir string
	Err error
}

func (e *DirectoryReadError) Error() string {
	return fmt.Sprintf("read directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryReadError) Unwrap() error { return e.Err }

// FileReadError reports a single content file that could not be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// FrontmatterParseError reports a malformed metadata block.
type FrontmatterParseError struct {
	Path string
	Err  error
}

func (e *FrontmatterParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse frontmatter: %v", e.Err)
	}
	return fmt.Sprintf("parse frontmatter %s: %v", e.Path, e.Err)
}

func (e *FrontmatterParseError) Unwrap() error { return e.Err }

// ValidationError reports a post whose metadata cannot be listed.
type ValidationError struct {
	Path   string
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", e.Path, e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

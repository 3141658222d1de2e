package rating

import (
	"errors"
	"strings"
)

const MaxCommentLength = 1000

var (
	ErrCourtRequired  = errors.New("court reference is required")
	ErrRaterRequired  = errors.New("rater identity is required")
	ErrInvalidScore   = errors.New("score must be between 1 and 5")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")
)

type Score struct {
	value int
}

func NewScore(v int) (Score, error) {
	if v < 1 || v > 5 {
		return Score{}, ErrInvalidScore
	}
	return Score{value: v}, nil
}

func (s Score) Value() int { return s.value }

// Comment is optional free text; empty is allowed.
type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

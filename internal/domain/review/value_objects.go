package review

import (
	"errors"
	"strings"
)

const MaxCommentLength = 1000

var (
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrEmptyComment     = errors.New("comment cannot be empty")
	ErrCommentTooLong   = errors.New("comment is too long")
)

type Rating int

func NewRating(value int) (Rating, error) {
	if value < 1 || value > 5 {
		return 0, ErrRatingOutOfRange
	}

	return Rating(value), nil
}

func (r Rating) Int() int {
	return int(r)
}

type Comment string

func NewComment(value string) (Comment, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ErrEmptyComment
	}
	if len(trimmed) > MaxCommentLength {
		return "", ErrCommentTooLong
	}

	return Comment(trimmed), nil
}

func (c Comment) String() string {
	return string(c)
}

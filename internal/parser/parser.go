// Package parser extracts the key/value header from post files.
//
// A post starts with a title line, followed by "key: value" lines up to a
// "---" separator. Everything after the separator is body and is never read.
package parser

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/starford/listposts/internal/apperr"
	"github.com/starford/listposts/internal/models"
)

const separator = "---"

// Parse reads the header of the post named name from r.
// The first line is skipped; header lines are consumed until the separator
// line or EOF.
func Parse(name string, r io.Reader) (*models.Post, error) {
	br := bufio.NewReader(r)
	post := &models.Post{Path: name}

	// Title line.
	if _, err := br.ReadString('\n'); err != nil {
		if errors.Is(err, io.EOF) {
			return post, nil
		}
		return nil, readError(name, err)
	}

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, readError(name, err)
		}
		if line == "" || isSeparator(line) {
			return post, nil
		}
		if perr := parseLine(post, line); perr != nil {
			return nil, perr
		}
		if err != nil {
			return post, nil
		}
	}
}

// parseLine appends the field held by line to post. When the key is "date"
// the sort key is derived from it as well.
func parseLine(post *models.Post, line string) error {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return &apperr.PostError{Kind: apperr.ErrMalformedHeader, File: post.Path, Line: line}
	}
	text := strings.TrimSuffix(line, "\n")
	key := text[:colon]

	// The value starts after the conventional ": ".
	value := ""
	if start := colon + 2; start < len(text) {
		value = text[start:]
	}

	if key == dateKey {
		sk, err := dateLineKey(line)
		if err != nil {
			return &apperr.PostError{Kind: apperr.ErrMalformedDate, File: post.Path, Line: line}
		}
		post.SortKey = sk
		post.HasDate = true
	}

	post.Fields = append(post.Fields, models.Field{Key: key, Value: value})
	return nil
}

func isSeparator(line string) bool {
	return line == separator+"\n" || line == separator
}

func readError(name string, err error) error {
	return &apperr.PostError{Kind: apperr.ErrFileOpen, File: name, Err: err}
}

package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for post and comment fields. Blank checks live in
// the domain; these guard against oversized payloads only.
const (
	maxTitleLen        = 300
	maxContentLen      = 100_000
	maxCommentLen      = 10_000
	maxCategoryNameLen = 100
)

// validatePost checks post input sizes and returns the first error found.
func validatePost(title, content string) string {
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "title is too long (max 300 characters)"
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return "content is too long (max 100,000 characters)"
	}
	return ""
}

// validateComment checks comment input sizes.
func validateComment(content string) string {
	if utf8.RuneCountInString(content) > maxCommentLen {
		return "comment is too long (max 10,000 characters)"
	}
	return ""
}

// validateCategoryName checks category name size.
func validateCategoryName(name string) string {
	if utf8.RuneCountInString(strings.TrimSpace(name)) > maxCategoryNameLen {
		return "category name is too long (max 100 characters)"
	}
	return ""
}

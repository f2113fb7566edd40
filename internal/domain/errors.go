// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a domain error for callers that map violations to
// transport responses. Every Error carries exactly one Kind.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidArgument
	KindStateViolation
	KindConflict
	KindNotFound
	KindUsageConflict
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindStateViolation:
		return "state_violation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindUsageConflict:
		return "usage_conflict"
	default:
		return "unknown"
	}
}

// Code identifies the specific rule that was violated.
type Code string

const (
	CodeInvalidArgument        Code = "invalid_argument"
	CodePostAlreadyDeleted     Code = "post_already_deleted"
	CodePostAlreadyPublished   Code = "post_already_published"
	CodePostNotPublished       Code = "post_not_published"
	CodeCannotChangeCategory   Code = "cannot_change_category"
	CodeCommentAlreadyApproved Code = "comment_already_approved"
	CodeCategoryExists         Code = "category_already_exists"
	CodeCategoryNotFound       Code = "category_not_found"
	CodePostNotFound           Code = "post_not_found"
	CodeCannotDeleteCategory   Code = "cannot_delete_category"
)

// Error is the single error type raised by the domain and services.
// Callers match on Kind or Code rather than on distinct types.
type Error struct {
	Kind    Kind
	Code    Code
	Message string

	// MissingCategoryIDs carries the unresolved ids when Code is
	// CodeCategoryNotFound and the failure came from a bulk lookup.
	MissingCategoryIDs []CategoryID
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// ErrInvalidArgument reports a blank or missing required field.
func ErrInvalidArgument(field string) *Error {
	return &Error{
		Kind:    KindInvalidArgument,
		Code:    CodeInvalidArgument,
		Message: field + " must not be blank",
	}
}

// ErrPostAlreadyDeleted reports an operation on a soft-deleted post.
func ErrPostAlreadyDeleted(id PostID) *Error {
	return &Error{
		Kind:    KindStateViolation,
		Code:    CodePostAlreadyDeleted,
		Message: fmt.Sprintf("post %s is already deleted", id),
	}
}

// ErrPostAlreadyPublished reports an operation forbidden on a published post.
func ErrPostAlreadyPublished(id PostID) *Error {
	return &Error{
		Kind:    KindStateViolation,
		Code:    CodePostAlreadyPublished,
		Message: fmt.Sprintf("post %s is already published", id),
	}
}

// ErrPostNotPublished reports a comment operation on an unpublished post.
func ErrPostNotPublished(id PostID) *Error {
	return &Error{
		Kind:    KindStateViolation,
		Code:    CodePostNotPublished,
		Message: fmt.Sprintf("post %s is not published", id),
	}
}

// ErrCannotChangeCategory reports a category mutation on a published post.
func ErrCannotChangeCategory(id PostID) *Error {
	return &Error{
		Kind:    KindStateViolation,
		Code:    CodeCannotChangeCategory,
		Message: fmt.Sprintf("categories of post %s cannot be changed while published", id),
	}
}

// ErrCommentAlreadyApproved reports a second approval of the same comment.
func ErrCommentAlreadyApproved(id CommentID) *Error {
	return &Error{
		Kind:    KindStateViolation,
		Code:    CodeCommentAlreadyApproved,
		Message: fmt.Sprintf("comment %s is already approved", id),
	}
}

// ErrCategoryExists reports a duplicate category name, either globally
// or within a single post's category list.
func ErrCategoryExists(name string) *Error {
	return &Error{
		Kind:    KindConflict,
		Code:    CodeCategoryExists,
		Message: fmt.Sprintf("category %q already exists", name),
	}
}

// ErrCategoryNotFound reports a single unresolvable category id.
func ErrCategoryNotFound(id CategoryID) *Error {
	return &Error{
		Kind:               KindNotFound,
		Code:               CodeCategoryNotFound,
		Message:            fmt.Sprintf("category %s not found", id),
		MissingCategoryIDs: []CategoryID{id},
	}
}

// ErrCategoriesNotFound reports the full set of ids a bulk lookup could
// not resolve.
func ErrCategoriesNotFound(ids []CategoryID) *Error {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}
	return &Error{
		Kind:               KindNotFound,
		Code:               CodeCategoryNotFound,
		Message:            "categories not found: " + strings.Join(strs, ", "),
		MissingCategoryIDs: ids,
	}
}

// ErrPostNotFound reports an unresolvable post id.
func ErrPostNotFound(id PostID) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    CodePostNotFound,
		Message: fmt.Sprintf("post %s not found", id),
	}
}

// ErrPostNotFoundSlug reports an unresolvable post slug.
func ErrPostNotFoundSlug(slug string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    CodePostNotFound,
		Message: fmt.Sprintf("post %q not found", slug),
	}
}

// ErrCannotDeleteCategory reports a delete attempt on a category still
// referenced by a non-deleted post.
func ErrCannotDeleteCategory(id CategoryID) *Error {
	return &Error{
		Kind:    KindUsageConflict,
		Code:    CodeCannotDeleteCategory,
		Message: fmt.Sprintf("category %s is still referenced by an active post", id),
	}
}

// KindOf extracts the Kind from an error chain, or KindUnknown.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// CodeOf extracts the Code from an error chain, or the empty Code.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

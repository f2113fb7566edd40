package domain

import (
	"errors"
	"fmt"
	"testing"
)

// TestErrorKinds checks every constructor yields the kind callers
// dispatch on.
func TestErrorKinds(t *testing.T) {
	pid := NewPostID()
	cid := NewCategoryID()
	mid := NewCommentID()

	tests := []struct {
		name string
		err  *Error
		kind Kind
		code Code
	}{
		{name: "invalid argument", err: ErrInvalidArgument("title"), kind: KindInvalidArgument, code: CodeInvalidArgument},
		{name: "already deleted", err: ErrPostAlreadyDeleted(pid), kind: KindStateViolation, code: CodePostAlreadyDeleted},
		{name: "already published", err: ErrPostAlreadyPublished(pid), kind: KindStateViolation, code: CodePostAlreadyPublished},
		{name: "not published", err: ErrPostNotPublished(pid), kind: KindStateViolation, code: CodePostNotPublished},
		{name: "cannot change category", err: ErrCannotChangeCategory(pid), kind: KindStateViolation, code: CodeCannotChangeCategory},
		{name: "comment already approved", err: ErrCommentAlreadyApproved(mid), kind: KindStateViolation, code: CodeCommentAlreadyApproved},
		{name: "category exists", err: ErrCategoryExists("go"), kind: KindConflict, code: CodeCategoryExists},
		{name: "category not found", err: ErrCategoryNotFound(cid), kind: KindNotFound, code: CodeCategoryNotFound},
		{name: "post not found", err: ErrPostNotFound(pid), kind: KindNotFound, code: CodePostNotFound},
		{name: "cannot delete category", err: ErrCannotDeleteCategory(cid), kind: KindUsageConflict, code: CodeCannotDeleteCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("kind: got %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.err.Code != tt.code {
				t.Errorf("code: got %v, want %v", tt.err.Code, tt.code)
			}
			if tt.err.Error() == "" {
				t.Error("empty message")
			}
		})
	}
}

// TestErrorsThroughWrapping ensures KindOf/CodeOf see through fmt.Errorf
// wrapping.
func TestErrorsThroughWrapping(t *testing.T) {
	base := ErrPostNotFound(NewPostID())
	wrapped := fmt.Errorf("load post: %w", base)

	if KindOf(wrapped) != KindNotFound {
		t.Errorf("KindOf(wrapped) = %v", KindOf(wrapped))
	}
	if CodeOf(wrapped) != CodePostNotFound {
		t.Errorf("CodeOf(wrapped) = %v", CodeOf(wrapped))
	}

	var de *Error
	if !errors.As(wrapped, &de) {
		t.Fatal("errors.As failed")
	}

	if KindOf(errors.New("plain")) != KindUnknown {
		t.Error("plain error must map to KindUnknown")
	}
	if CodeOf(nil) != "" {
		t.Error("nil error must map to empty code")
	}
}

// TestCategoriesNotFoundCarriesIDs verifies the bulk-miss error lists
// every missing id.
func TestCategoriesNotFoundCarriesIDs(t *testing.T) {
	ids := []CategoryID{NewCategoryID(), NewCategoryID()}
	err := ErrCategoriesNotFound(ids)

	if len(err.MissingCategoryIDs) != 2 {
		t.Fatalf("got %d missing ids, want 2", len(err.MissingCategoryIDs))
	}
	for i, id := range ids {
		if err.MissingCategoryIDs[i] != id {
			t.Errorf("missing id %d: got %s, want %s", i, err.MissingCategoryIDs[i], id)
		}
	}
}

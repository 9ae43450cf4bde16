package domain_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/internal/domain"
)

func TestValidationError_MessageListsFields(t *testing.T) {
	err := &domain.ValidationError{Missing: []string{"title", "userEmail"}}
	if got := err.Error(); got != "missing required fields: title, userEmail" {
		t.Errorf("Error() = %q", got)
	}
}

func TestInvalidIDError_CarriesID(t *testing.T) {
	err := &domain.InvalidIDError{ID: "not-a-hex"}
	if !strings.Contains(err.Error(), "not-a-hex") {
		t.Errorf("Error() = %q, want it to mention the bad id", err.Error())
	}

	var ide *domain.InvalidIDError
	if !errors.As(fmt.Errorf("lookup: %w", err), &ide) {
		t.Error("errors.As failed to unwrap *InvalidIDError")
	}
}

func TestStorageError_Unwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := &domain.StorageError{Op: "find job", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is failed to reach the wrapped cause")
	}
	if got := err.Error(); got != "find job: connection reset" {
		t.Errorf("Error() = %q", got)
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrUnauthorized,
		domain.ErrSelfAccept,
		domain.ErrDuplicateAccept,
		domain.ErrNotFoundOrUnauthorized,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v unexpectedly matches %v", a, b)
			}
		}
	}
}

package pkgvalidator

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/shandysiswandi/gocafe/internal/pkg/pkgerror"
)

type samplePayload struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"required"`
	Note  string  `json:"note"`
}

func TestValidateAcceptsCompletePayload(t *testing.T) {
	v := New()
	if err := v.Validate(samplePayload{Name: "Soup", Price: 5}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestValidateRejectsZeroValues(t *testing.T) {
	v := New()

	err := v.Validate(samplePayload{Name: "Soup"})
	if err == nil {
		t.Fatal("expected error for zero price")
	}

	var perr *pkgerror.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *pkgerror.Error, got %T", err)
	}
	if perr.StatusCode() != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", perr.StatusCode())
	}
	if !strings.Contains(err.Error(), "price is required") {
		t.Fatalf("expected json field name in message, got %q", err.Error())
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	v := New()

	err := v.Validate(samplePayload{})
	if err == nil {
		t.Fatal("expected error")
	}
	for _, field := range []string{"name is required", "price is required"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected %q in %q", field, err.Error())
		}
	}
}

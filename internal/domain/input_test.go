package domain_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/internal/domain"
)

func validJobMap() map[string]any {
	return map[string]any{
		"title":      "Build a landing page",
		"postedBy":   "Alex Doe",
		"category":   "web-development",
		"summary":    "Responsive landing page with contact form",
		"coverImage": "https://example.com/cover.png",
		"userEmail":  "alex@example.com",
	}
}

func TestJobInputFromMap_KnownFields(t *testing.T) {
	in := domain.JobInputFromMap(validJobMap())

	if in.Title != "Build a landing page" {
		t.Errorf("Title = %q, want %q", in.Title, "Build a landing page")
	}
	if in.UserEmail != "alex@example.com" {
		t.Errorf("UserEmail = %q, want %q", in.UserEmail, "alex@example.com")
	}
	if in.Extra != nil {
		t.Errorf("Extra = %v, want nil for a body with no unknown fields", in.Extra)
	}
}

func TestJobInputFromMap_UnknownFieldsGoToExtra(t *testing.T) {
	m := validJobMap()
	m["budget"] = float64(500)
	m["deadline"] = "2026-09-15"

	in := domain.JobInputFromMap(m)

	want := map[string]any{"budget": float64(500), "deadline": "2026-09-15"}
	if !reflect.DeepEqual(in.Extra, want) {
		t.Errorf("Extra = %v, want %v", in.Extra, want)
	}
}

func TestJobInputFromMap_DropsReservedFields(t *testing.T) {
	m := validJobMap()
	m["_id"] = "665f1f77bcf86cd799439011"
	m["postedDate"] = "2020-01-01T00:00:00Z"
	m["createdAt"] = "2020-01-01T00:00:00Z"
	m["updatedAt"] = "2020-01-01T00:00:00Z"

	in := domain.JobInputFromMap(m)

	if in.Extra != nil {
		t.Errorf("reserved fields leaked into Extra: %v", in.Extra)
	}
}

func TestJobInputFromMap_NonStringKnownFieldCountsAsMissing(t *testing.T) {
	m := validJobMap()
	m["title"] = 42

	in := domain.JobInputFromMap(m)

	if in.Title != "" {
		t.Errorf("Title = %q, want empty for non-string value", in.Title)
	}
}

func TestValidate_AllPresent(t *testing.T) {
	in := domain.JobInputFromMap(validJobMap())
	if err := in.Validate(); err != nil {
		t.Errorf("Validate() returned unexpected error: %v", err)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	cases := []struct {
		name    string
		remove  []string
		missing []string
	}{
		{"single missing", []string{"title"}, []string{"title"}},
		{"two missing", []string{"summary", "userEmail"}, []string{"summary", "userEmail"}},
		{
			"all missing",
			[]string{"title", "postedBy", "category", "summary", "coverImage", "userEmail"},
			[]string{"title", "postedBy", "category", "summary", "coverImage", "userEmail"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := validJobMap()
			for _, field := range c.remove {
				delete(m, field)
			}

			err := domain.JobInputFromMap(m).Validate()

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if !reflect.DeepEqual(ve.Missing, c.missing) {
				t.Errorf("Missing = %v, want %v", ve.Missing, c.missing)
			}
		})
	}
}

func TestValidate_EmptyStringCountsAsMissing(t *testing.T) {
	m := validJobMap()
	m["coverImage"] = ""

	err := domain.JobInputFromMap(m).Validate()

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	if len(ve.Missing) != 1 || ve.Missing[0] != "coverImage" {
		t.Errorf("Missing = %v, want [coverImage]", ve.Missing)
	}
}

func TestParseSortOrder(t *testing.T) {
	cases := []struct {
		in   string
		want domain.SortOrder
	}{
		{"asc", domain.SortAsc},
		{"desc", domain.SortDesc},
		{"", domain.SortDesc},
		{"garbage", domain.SortDesc},
	}

	for _, c := range cases {
		if got := domain.ParseSortOrder(c.in); got != c.want {
			t.Errorf("ParseSortOrder(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

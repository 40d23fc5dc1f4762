package comment

import (
	"errors"
	"math"
	"testing"

	"github.com/goccy/go-json"
)

func TestFromMap(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want Comment
	}{
		{
			name: "typed values",
			in:   map[string]any{"id": float64(2), "name": "Corey", "text": "OMG!"},
			want: Comment{ID: 2, Name: "Corey", Text: "OMG!"},
		},
		{
			name: "string id",
			in:   map[string]any{"id": "12", "name": "Virtal", "text": "upd"},
			want: Comment{ID: 12, Name: "Virtal", Text: "upd"},
		},
		{
			name: "string id with leading zero is decimal",
			in:   map[string]any{"id": "010", "name": "a", "text": "b"},
			want: Comment{ID: 10, Name: "a", Text: "b"},
		},
		{
			name: "hex-looking string id stops at x",
			in:   map[string]any{"id": "0x10", "name": "a", "text": "b"},
			want: Comment{ID: 0, Name: "a", Text: "b"},
		},
		{
			name: "string id with trailing text",
			in:   map[string]any{"id": "12abc", "name": "a", "text": "b"},
			want: Comment{ID: 12, Name: "a", Text: "b"},
		},
		{
			name: "string id with whitespace and sign",
			in:   map[string]any{"id": "  -7", "name": "a", "text": "b"},
			want: Comment{ID: -7, Name: "a", Text: "b"},
		},
		{
			name: "non-numeric string id",
			in:   map[string]any{"id": "abc", "name": "a", "text": "b"},
			want: Comment{ID: 0, Name: "a", Text: "b"},
		},
		{
			name: "string id saturates",
			in:   map[string]any{"id": "99999999999999999999", "name": "a", "text": "b"},
			want: Comment{ID: math.MaxInt64, Name: "a", Text: "b"},
		},
		{
			name: "json number above 2^53",
			in:   map[string]any{"id": json.Number("9007199254740993"), "name": "a", "text": "b"},
			want: Comment{ID: 9007199254740993, Name: "a", Text: "b"},
		},
		{
			name: "fractional json number truncates",
			in:   map[string]any{"id": json.Number("2.9"), "name": json.Number("42"), "text": "b"},
			want: Comment{ID: 2, Name: "42", Text: "b"},
		},
		{
			name: "numeric name",
			in:   map[string]any{"id": float64(1), "name": float64(42), "text": ""},
			want: Comment{ID: 1, Name: "42", Text: ""},
		},
		{
			name: "null values become zero",
			in:   map[string]any{"id": nil, "name": nil, "text": nil},
			want: Comment{},
		},
		{
			name: "extra keys ignored",
			in:   map[string]any{"id": float64(3), "name": "a", "text": "b", "created_at": "now"},
			want: Comment{ID: 3, Name: "a", Text: "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromMap(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FromMap() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromMapMissingFields(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
	}{
		{"missing id", map[string]any{"name": "Fenix", "text": "GOOD"}},
		{"missing name", map[string]any{"id": float64(1), "text": "GOOD"}},
		{"missing text", map[string]any{"id": float64(1), "name": "Fenix"}},
		{"all missing", map[string]any{}},
		{"nil map", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromMap(tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrMissingField) {
				t.Errorf("err = %v, want ErrMissingField", err)
			}
		})
	}
}

func TestFromMapReportsFirstMissingKey(t *testing.T) {
	_, err := FromMap(map[string]any{"id": float64(1)})
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), "missing required field: name"; got != want {
		t.Errorf("err = %q, want %q", got, want)
	}
}

package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-pdfgen/internal/yamlutil"
)

type testDoc struct {
	Name    string `yaml:"name"`
	Count   int    `yaml:"count"`
	Enabled bool   `yaml:"enabled"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("name: test\ncount: 42\nenabled: true"),
			dest: &testDoc{},
			check: func(t *testing.T, v any) {
				doc := v.(*testDoc)
				if doc.Name != "test" || doc.Count != 42 || !doc.Enabled {
					t.Errorf("parsed = %+v", doc)
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testDoc{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testDoc{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: test"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "oversized input",
			data:    []byte("name: " + strings.Repeat("x", yamlutil.MaxInputSize)),
			dest:    &testDoc{},
			wantErr: yamlutil.ErrInputTooLarge,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("accepts known fields", func(t *testing.T) {
		t.Parallel()

		var doc testDoc
		if err := yamlutil.UnmarshalStrict([]byte("name: ok"), &doc); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Name != "ok" {
			t.Errorf("Name = %q", doc.Name)
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		var doc testDoc
		if err := yamlutil.UnmarshalStrict([]byte("name: ok\nbogus: 1"), &doc); err == nil {
			t.Fatal("expected error for unknown field")
		}
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		var doc testDoc
		if err := yamlutil.UnmarshalStrict([]byte("name: [unclosed"), &doc); err == nil {
			t.Fatal("expected parse error")
		}
	})
}

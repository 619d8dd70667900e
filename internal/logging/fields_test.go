package logging

import (
	"log/slog"
	"testing"
)

func TestWithCommon(t *testing.T) {
	existing := []slog.Attr{slog.String(FieldCareerID, "c1")}

	cases := []struct {
		service, version string
		wantKeys         []string
	}{
		{"football-career-sim", "v1", []string{FieldCareerID, FieldService, FieldVersion}},
		{"football-career-sim", "", []string{FieldCareerID, FieldService}},
		{"", "", []string{FieldCareerID}},
	}
	for _, tc := range cases {
		attrs := WithCommon(append([]slog.Attr(nil), existing...), tc.service, tc.version)
		if len(attrs) != len(tc.wantKeys) {
			t.Fatalf("%q/%q: expected %d attrs, got %+v", tc.service, tc.version, len(tc.wantKeys), attrs)
		}
		for i, key := range tc.wantKeys {
			if attrs[i].Key != key {
				t.Fatalf("expected key %s at %d, got %s", key, i, attrs[i].Key)
			}
		}
	}
}

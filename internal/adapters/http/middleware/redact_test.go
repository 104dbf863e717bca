package middleware

import (
	"log/slog"
	"net/http"
	"testing"
)

func TestHeaderGroup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header http.Header
		want   [][2]string
	}{
		{
			name:   "empty",
			header: http.Header{},
		},
		{
			name: "credentials are redacted",
			header: http.Header{
				"Authorization": {"Bearer ledger-admin"},
				"X-Api-Key":     {"k-123"},
				"Cookie":        {"session=abc"},
			},
			want: [][2]string{
				{"Authorization", redacted},
				{"Cookie", redacted},
				{"X-Api-Key", redacted},
			},
		},
		{
			name: "sorted and joined",
			header: http.Header{
				"X-Request-Id": {"req-7"},
				"Accept":       {"application/json", "application/problem+json"},
				"Content-Type": {"application/json"},
			},
			want: [][2]string{
				{"Accept", "application/json,application/problem+json"},
				{"Content-Type", "application/json"},
				{"X-Request-Id", "req-7"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attr := headerGroup(tt.header)

			if attr.Key != "headers" {
				t.Errorf("Key = %q, want %q", attr.Key, "headers")
			}
			if attr.Value.Kind() != slog.KindGroup {
				t.Fatalf("Kind = %v, want group", attr.Value.Kind())
			}

			got := attr.Value.Group()
			if len(got) != len(tt.want) {
				t.Fatalf("len(group) = %d, want %d: %v", len(got), len(tt.want), got)
			}
			for i, w := range tt.want {
				if got[i].Key != w[0] || got[i].Value.String() != w[1] {
					t.Errorf("group[%d] = %s=%q, want %s=%q", i, got[i].Key, got[i].Value.String(), w[0], w[1])
				}
			}
		})
	}
}

package storage

import (
	"strings"
	"testing"
)

func TestAttachmentKey(t *testing.T) {
	key := attachmentKey(42, "My Report Final.pdf")

	if !strings.HasPrefix(key, "submissions/42/") {
		t.Errorf("key %q missing user prefix", key)
	}
	if !strings.HasSuffix(key, ".pdf") {
		t.Errorf("key %q lost extension", key)
	}
	if strings.Contains(key, " ") {
		t.Errorf("key %q contains spaces", key)
	}

	// Keys must be unique per call even for the same filename.
	if other := attachmentKey(42, "My Report Final.pdf"); other == key {
		t.Error("expected unique keys for repeated filenames")
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"My Report":      "my-report",
		"v2.final draft": "v2-final-draft",
		"###":            "file",
		"ok_name-1":      "ok_name-1",
	}
	for in, want := range cases {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestContentTypeFor(t *testing.T) {
	cases := map[string]string{
		"report.pdf":  "application/pdf",
		"notes.md":    "text/markdown",
		"data.csv":    "text/csv",
		"img.jpeg":    "image/jpeg",
		"archive.bin": "application/octet-stream",
	}
	for filename, want := range cases {
		if got := ContentTypeFor(filename); got != want {
			t.Errorf("ContentTypeFor(%q) = %q, want %q", filename, got, want)
		}
	}
}

package store

import "testing"

func TestURLRoundTrip(t *testing.T) {
	keys := []string{
		"u1/docs/1700000000000_42_report_final.pdf",
		"1700000000000_7_photo.png",
		"a/b/c/d.txt",
	}

	for _, key := range keys {
		url := EncodeURL("my-bucket", key)
		if got := DecodeURL("my-bucket", url); got != key {
			t.Fatalf("round trip failed: key %q -> url %q -> %q", key, url, got)
		}
	}
}

func TestEncodeURLFormat(t *testing.T) {
	url := EncodeURL("my-bucket", "u1/docs/file.pdf")
	want := "https://storage.googleapis.com/my-bucket/u1/docs/file.pdf"
	if url != want {
		t.Fatalf("EncodeURL = %q, want %q", url, want)
	}
}

func TestDecodeURLPassesThroughRawKeys(t *testing.T) {
	// Callers may hand over raw keys or foreign URLs; both come back unchanged.
	cases := []string{
		"u1/docs/file.pdf",
		"https://storage.googleapis.com/other-bucket/file.pdf",
		"https://example.com/my-bucket/file.pdf",
	}

	for _, in := range cases {
		if got := DecodeURL("my-bucket", in); got != in {
			t.Fatalf("DecodeURL(%q) = %q, want unchanged", in, got)
		}
	}
}

package store

import (
	"regexp"
	"testing"
)

var keyCharset = regexp.MustCompile(`^[A-Za-z0-9/_.-]+$`)

func TestComposePrefixJoinsScopes(t *testing.T) {
	cases := []struct {
		name      string
		userID    string
		directory string
		want      string
	}{
		{"both", "u1", "docs", "u1/docs"},
		{"user only", "u1", "", "u1"},
		{"directory only", "", "docs", "docs"},
		{"both blank", "", "", ""},
		{"whitespace is blank", "   ", "\t", ""},
		{"segments sanitized", "user@example.com", "my docs", "user_example_com/my_docs"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComposePrefix(tc.userID, tc.directory); got != tc.want {
				t.Fatalf("ComposePrefix(%q, %q) = %q, want %q", tc.userID, tc.directory, got, tc.want)
			}
		})
	}
}

func TestComposeObjectKeyShape(t *testing.T) {
	key := ComposeObjectKey("u1/docs", "report final.pdf")

	pattern := regexp.MustCompile(`^u1/docs/\d+_\d+_report_final\.pdf$`)
	if !pattern.MatchString(key) {
		t.Fatalf("unexpected key shape: %q", key)
	}
	if !keyCharset.MatchString(key) {
		t.Fatalf("key contains forbidden characters: %q", key)
	}
}

func TestComposeObjectKeyWithoutPrefix(t *testing.T) {
	key := ComposeObjectKey("", "photo.png")

	pattern := regexp.MustCompile(`^\d+_\d+_photo\.png$`)
	if !pattern.MatchString(key) {
		t.Fatalf("unexpected key shape: %q", key)
	}
}

func TestComposeObjectKeyDegenerateNames(t *testing.T) {
	// Empty and all-special names still yield valid keys.
	empty := ComposeObjectKey("", "")
	if !regexp.MustCompile(`^\d+_\d+_$`).MatchString(empty) {
		t.Fatalf("unexpected key for empty name: %q", empty)
	}

	special := ComposeObjectKey("", "???!!!")
	if !regexp.MustCompile(`^\d+_\d+_{7}$`).MatchString(special) {
		t.Fatalf("unexpected key for special name: %q", special)
	}
	if !keyCharset.MatchString(special) {
		t.Fatalf("key contains forbidden characters: %q", special)
	}
}

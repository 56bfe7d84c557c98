package investmind

import "testing"

func TestHashPassword(t *testing.T) {
	// Known SHA-256 vector, hex encoded.
	got := HashPassword("password")
	want := "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"
	if got != want {
		t.Errorf("HashPassword(%q) = %q, want %q", "password", got, want)
	}

	if HashPassword("a") == HashPassword("b") {
		t.Error("distinct passwords must not collide on trivial inputs")
	}
	if HashPassword("") == "" {
		t.Error("empty password must still produce a digest")
	}
}

func TestVerifyPassword(t *testing.T) {
	digest := HashPassword("s3cret")

	if !VerifyPassword(digest, "s3cret") {
		t.Error("matching password not verified")
	}
	if VerifyPassword(digest, "S3cret") {
		t.Error("case-differing password verified")
	}
	if VerifyPassword(digest, "") {
		t.Error("empty password verified against a real digest")
	}
	if VerifyPassword("", "s3cret") {
		t.Error("password verified against an empty digest")
	}
}

package urlutil

import "testing"

func TestCleanDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.Example.com/", "example.com"},
		{"http://example.com", "example.com"},
		{"www.example.com", "example.com"},
		{"example.com", "example.com"},
		{"  EXAMPLE.COM  ", "example.com"},
		{"https://sub.example.com/path/", "sub.example.com/path"},
	}
	for _, tt := range tests {
		if got := CleanDomain(tt.in); got != tt.want {
			t.Errorf("CleanDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanDomainIdempotent(t *testing.T) {
	once := CleanDomain("https://www.Example.com/")
	if twice := CleanDomain(once); twice != once {
		t.Errorf("CleanDomain not idempotent: %q -> %q", once, twice)
	}
}

func TestDomainFromURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com/path/page", "example.com"},
		{"http://example.com", "example.com"},
		{"https://sub.example.com/", "sub.example.com"},
	}
	for _, tt := range tests {
		if got := DomainFromURL(tt.in); got != tt.want {
			t.Errorf("DomainFromURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateURL(t *testing.T) {
	valid := []string{"https://example.com", "http://example.com/path"}
	for _, u := range valid {
		if err := ValidateURL(u); err != nil {
			t.Errorf("ValidateURL(%q) = %v, want nil", u, err)
		}
	}

	invalid := []string{"", "example.com", "ftp://example.com", "https://"}
	for _, u := range invalid {
		if err := ValidateURL(u); err == nil {
			t.Errorf("ValidateURL(%q) = nil, want error", u)
		}
	}
}

package validators

import "testing"

func TestIsEmailValid(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"alice@example.com", true},
		{"a@b", true},
		{"nome.sobrenome@sub.dominio.com", true},
		{"", false},
		{"semarroba", false},
		{"@dominio.com", false},
		{"local@", false},
	}

	for _, tc := range cases {
		if got := IsEmailValid(tc.email); got != tc.want {
			t.Errorf("IsEmailValid(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  Alice@Example.COM "); got != "alice@example.com" {
		t.Fatalf("Normalize = %q", got)
	}
}

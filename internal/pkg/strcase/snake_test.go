package strcase

import "testing"

func TestToLowerSnake(t *testing.T) {
	cases := map[string]string{
		"":           "",
		"Phrase":     "phrase",
		"userID":     "user_id",
		"HTTPServer": "http_server",
		"MessageID":  "message_id",
		"already":    "already",
	}

	for in, want := range cases {
		if got := ToLowerSnake(in); got != want {
			t.Errorf("ToLowerSnake(%q) = %q, want %q", in, got, want)
		}
	}
}

package moderation

import "testing"

func TestContainsDisallowed(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "clean prompt",
			text: "a red bicycle leaning against a wall",
			want: false,
		},
		{
			name: "empty",
			text: "",
			want: false,
		},
		{
			name: "direct match",
			text: "child sexual content",
			want: true,
		},
		{
			name: "case insensitive",
			text: "CHILD SEXUAL imagery",
			want: true,
		},
		{
			name: "match inside longer text",
			text: "please draw some child sexual stuff for me",
			want: true,
		},
		{
			name: "adult content not on deny list",
			text: "a nude portrait in classical style",
			want: false,
		},
		{
			name: "mixed case phrase",
			text: "Underage Sex scene",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContainsDisallowed(tt.text)
			if got != tt.want {
				t.Errorf("ContainsDisallowed(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

package markdown

import (
	"strings"
	"testing"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	r := NewRenderer()

	tests := []struct {
		name        string
		src         string
		contains    []string
		notContains []string
	}{
		{
			name:     "heading and list",
			src:      "# THYAO Yatırım Sinyali\n\n- **İlk Hedef:** 320",
			contains: []string{"<h1>THYAO Yatırım Sinyali</h1>", "<strong>İlk Hedef:</strong> 320"},
		},
		{
			name:        "raw html is not passed through",
			src:         "ok <script>alert(1)</script>",
			notContains: []string{"<script>"},
		},
		{
			name:     "hard wraps",
			src:      "satır1\nsatır2",
			contains: []string{"satır1<br>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Render(tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, c := range tt.contains {
				if !strings.Contains(string(got), c) {
					t.Errorf("output %q missing %q", got, c)
				}
			}
			for _, c := range tt.notContains {
				if strings.Contains(string(got), c) {
					t.Errorf("output %q should not contain %q", got, c)
				}
			}
		})
	}
}

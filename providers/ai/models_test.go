package ai

import "testing"

func TestIsBuiltinTool(t *testing.T) {
	tests := map[string]bool{
		ToolGoogleSearch: true,
		ToolURLContext:   true,
		"get_weather":    false,
		"":               false,
	}
	for name, want := range tests {
		if got := IsBuiltinTool(name); got != want {
			t.Errorf("IsBuiltinTool(%q) = %v, want %v", name, got, want)
		}
	}
}

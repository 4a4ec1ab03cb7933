package mesh2d

import "testing"

func TestBlendMode_String(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want string
	}{
		{BlendAlpha, "alpha"},
		{BlendAdd, "add"},
		{BlendReplace, "replace"},
		{BlendMode(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("BlendMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestBlendMode_DefaultIsAlpha(t *testing.T) {
	var m BlendMode
	if m != BlendAlpha {
		t.Errorf("zero BlendMode = %v, want BlendAlpha", m)
	}
}

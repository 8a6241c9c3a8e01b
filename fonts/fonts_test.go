package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFont(t *testing.T) {
	if Debug.Loaded() {
		t.Fatalf("font loaded before LoadFont")
	}
	if err := LoadFontWithSize(Debug, goregular.TTF, 12); err != nil {
		t.Fatalf("LoadFontWithSize: %v", err)
	}
	if !Debug.Loaded() || Debug.Get() == nil {
		t.Fatalf("font not registered")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont(DebugSmall, []byte("not a font")); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	FontName("missing").Get()
}

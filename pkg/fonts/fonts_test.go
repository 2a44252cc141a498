package fonts

import (
	"testing"

	"golang.org/x/image/font"
)

func TestFace(t *testing.T) {
	regular, err := Face(14, false)
	if err != nil {
		t.Fatalf("Face(14, false): %v", err)
	}
	bold, err := Face(14, true)
	if err != nil {
		t.Fatalf("Face(14, true): %v", err)
	}
	if font.MeasureString(bold, "Zemin Kat") <= font.MeasureString(regular, "Zemin Kat") {
		t.Error("bold face does not measure wider than regular")
	}

	large, _ := Face(28, false)
	if font.MeasureString(large, "Zemin Kat") <= font.MeasureString(regular, "Zemin Kat") {
		t.Error("larger face does not measure wider")
	}
}

func TestFaceTurkishGlyphs(t *testing.T) {
	f, err := Face(16, false)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range "ıİşŞğĞüÜöÖçÇ" {
		if _, ok := f.GlyphAdvance(r); !ok {
			t.Errorf("no glyph for %q", r)
		}
	}
}

package htmlreport

import (
	"strings"
	"testing"
)

// The minifier is free to drop attribute quotes, so class attributes are
// checked in both spellings.
func containsClass(doc, class string) bool {
	return strings.Contains(doc, `class="`+class+`"`) || strings.Contains(doc, "class="+class)
}

func TestRender(t *testing.T) {
	x := "a := 1\nb := 2\nc := 3\n"
	y := "a := 1\nb := 4\n"

	b, err := Render("example.go", x, y, Lang("go"))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	got := string(b)

	if !strings.Contains(got, "<title>example.go</title>") {
		t.Errorf("rendered report doesn't contain the title:\n%s", got)
	}
	for _, want := range []string{"keep", "change", "remove"} {
		if !containsClass(got, want) {
			t.Errorf("rendered report doesn't contain a %q row:\n%s", want, got)
		}
	}
	if containsClass(got, "add") {
		t.Errorf("rendered report contains an add row, want none:\n%s", got)
	}
	for _, want := range []string{"b := 4", "c := 3"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered report doesn't contain %q:\n%s", want, got)
		}
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	b, err := Render("esc", "<script>\n", "<script>alert(1)</script>\n", LangFromFilename("esc.txt"))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(string(b), "<script>") {
		t.Errorf("rendered report contains unescaped input:\n%s", b)
	}
}

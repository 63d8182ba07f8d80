package web

import (
	"io/fs"
	"strings"
	"testing"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("Templates() error = %v", err)
	}
	for _, name := range []string{"generator", "landing"} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("missing template %q", name)
		}
	}
}

func TestPreviewScriptDropsStaleResponses(t *testing.T) {
	data, err := fs.ReadFile(Static(), "app.js")
	if err != nil {
		t.Fatal(err)
	}
	script := string(data)

	for _, want := range []string{
		"if (id !== seq) return;",
		"inflight.abort()",
		"if (!out.ok)",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("app.js missing %q", want)
		}
	}
}

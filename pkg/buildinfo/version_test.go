package buildinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	t.Cleanup(func() { Version = old })

	i := Get()
	if i.Version != "v9.9.9" {
		t.Errorf("Version = %q, want v9.9.9", i.Version)
	}
	if i.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", i.GoVersion, runtime.Version())
	}
	if tmpl := Template(); !strings.Contains(tmpl, "v9.9.9") || !strings.HasPrefix(tmpl, "{{.Name}}") {
		t.Errorf("Template() = %q", tmpl)
	}
}

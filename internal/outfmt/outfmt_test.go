package outfmt

import (
	"bytes"
	"strings"
	"testing"
)

func TestOutputTo(t *testing.T) {
	data := map[string]any{"filename": "SAP-1.pdf", "pages": "1-10"}

	var buf bytes.Buffer
	if err := OutputTo(&buf, FormatJSON, data); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"filename": "SAP-1.pdf"`) {
		t.Errorf("json output = %q", buf.String())
	}

	buf.Reset()
	if err := OutputTo(&buf, FormatYAML, data); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "filename: SAP-1.pdf") {
		t.Errorf("yaml output = %q", buf.String())
	}

	if err := OutputTo(&buf, Format("xml"), data); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestSetFormat(t *testing.T) {
	defer SetFormat("yaml")

	SetFormat("json")
	if GetFormat() != FormatJSON {
		t.Errorf("got %v, want json", GetFormat())
	}
	SetFormat("bogus")
	if GetFormat() != DefaultFormat {
		t.Errorf("got %v, want default", GetFormat())
	}
}

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lintrig/lintrig/src/config"
	"github.com/lintrig/lintrig/src/resolve"
	"github.com/lintrig/lintrig/src/rules"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"", FormatText, false},
		{"xml", "", true},
		{"JSON", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	results := []resolve.FileRules{
		{Path: "a.py", Codes: []rules.Code{"E501", "F401"}},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, results, FormatJSON); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var decoded []struct {
		Path  string   `json:"path"`
		Rules []string `json:"rules"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Path != "a.py" || len(decoded[0].Rules) != 2 {
		t.Errorf("unexpected JSON payload: %s", buf.String())
	}
}

func TestEncodeYAML(t *testing.T) {
	opts := config.DefaultFormatConfig()

	var buf bytes.Buffer
	if err := Encode(&buf, opts, FormatYAML); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), "quote-style: double") {
		t.Errorf("YAML output missing quote-style: %s", buf.String())
	}
}

func TestEncodeRejectsText(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, struct{}{}, FormatText); err == nil {
		t.Error("Encode(text) = nil, want error")
	}
}

func TestPrinterFileRules(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Writer: &buf, Color: false}

	p.FileRules([]resolve.FileRules{
		{Path: "pkg/__init__.py", Codes: []rules.Code{"E999"}},
	})

	out := buf.String()
	if !strings.Contains(out, "pkg/__init__.py") || !strings.Contains(out, "E999") {
		t.Errorf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "syntax-error") {
		t.Errorf("output missing rule name: %q", out)
	}
}

func TestPrinterFormatOptions(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Writer: &buf, Color: false}

	p.FormatOptions(config.DefaultFormatConfig())

	out := buf.String()
	for _, want := range []string{"quote-style", "double", "indent-style", "space", "line-ending", "auto"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

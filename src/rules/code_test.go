package rules

import "testing"

func TestParseSelector(t *testing.T) {
	valid := []string{"E", "E5", "E501", "C90", "W605", "F", "I001"}
	for _, s := range valid {
		if _, err := ParseSelector(s); err != nil {
			t.Errorf("ParseSelector(%q) = %v, want nil", s, err)
		}
	}

	invalid := []string{"", "e501", "501", "E501x", "E-501", "E 501"}
	for _, s := range invalid {
		if _, err := ParseSelector(s); err == nil {
			t.Errorf("ParseSelector(%q) = nil, want error", s)
		}
	}
}

func TestSelectorMatches(t *testing.T) {
	tests := []struct {
		sel  Selector
		code Code
		want bool
	}{
		{"E", "E501", true},
		{"E5", "E501", true},
		{"E501", "E501", true},
		{"E5", "E741", false},
		{"W", "E501", false},
		{"C", "C901", true},
		{"E5011", "E501", false},
	}
	for _, tt := range tests {
		if got := tt.sel.Matches(tt.code); got != tt.want {
			t.Errorf("Selector(%q).Matches(%q) = %v, want %v", tt.sel, tt.code, got, tt.want)
		}
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{"E501", "E"},
		{"C901", "C"},
		{"W605", "W"},
		{"I001", "I"},
	}
	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("Code(%q).Category() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

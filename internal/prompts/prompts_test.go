package prompts_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/JaimeStill/studize/internal/prompts"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name     string
		mode     prompts.Mode
		wantHead string
		wantTail string
	}{
		{
			name:     "single",
			mode:     prompts.ModeSingle,
			wantHead: "Here is the data for the student:",
			wantTail: "Avoid generic statements.",
		},
		{
			name:     "multi",
			mode:     prompts.ModeMulti,
			wantHead: "Here is the data for the students:",
			wantTail: "collaboratively where applicable.",
		},
	}

	context := " Name  Score\nAlice     90"

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := prompts.Assemble(tt.mode, context)
			if err != nil {
				t.Fatalf("Assemble: %v", err)
			}

			if !strings.Contains(got, tt.wantHead+"\n\n"+context+"\n\n") {
				t.Errorf("context not embedded after header:\n%s", got)
			}
			if !strings.HasSuffix(strings.TrimSpace(got), tt.wantTail) {
				t.Errorf("template tail missing:\n%s", got)
			}
			if strings.Contains(got, prompts.Placeholder) {
				t.Error("placeholder left in prompt")
			}
		})
	}
}

func TestAssembleInsertsVerbatim(t *testing.T) {
	context := "Note: literal {context} and {other} stay as written"

	got, err := prompts.Assemble(prompts.ModeSingle, context)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if strings.Count(got, context) != 1 {
		t.Errorf("context should appear exactly once:\n%s", got)
	}
}

func TestAssembleDiffersByMode(t *testing.T) {
	single, _ := prompts.Assemble(prompts.ModeSingle, "rows")
	multi, _ := prompts.Assemble(prompts.ModeMulti, "rows")

	if single == multi {
		t.Error("single and multi prompts should differ")
	}
}

func TestAssembleInvalidMode(t *testing.T) {
	_, err := prompts.Assemble(prompts.Mode("group"), "rows")
	if !errors.Is(err, prompts.ErrInvalidMode) {
		t.Errorf("error: got %v, want ErrInvalidMode", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    prompts.Mode
		wantErr bool
	}{
		{"single", prompts.ModeSingle, false},
		{"multi", prompts.ModeMulti, false},
		{"Single", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := prompts.ParseMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestModeUnmarshalJSON(t *testing.T) {
	var body struct {
		Mode prompts.Mode `json:"mode"`
	}

	if err := json.Unmarshal([]byte(`{"mode":"multi"}`), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Mode != prompts.ModeMulti {
		t.Errorf("mode: got %q, want multi", body.Mode)
	}

	err := json.Unmarshal([]byte(`{"mode":"batch"}`), &body)
	if !errors.Is(err, prompts.ErrInvalidMode) {
		t.Errorf("error: got %v, want ErrInvalidMode", err)
	}
}

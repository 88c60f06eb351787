package rule_test

import (
	"errors"
	"testing"

	"github.com/llamasoft/HashcatRulesEngine/rule"
)

func TestParseSimpleOps(t *testing.T) {
	r, err := rule.Parse("lu")
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if r.String() != "lu" {
		t.Errorf("Parse = %q, want lu", r.String())
	}
}

func TestParseStripsWhitespaceAndColon(t *testing.T) {
	r, err := rule.Parse("l : u   c")
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if r.String() != "luc" {
		t.Errorf("Parse = %q, want luc", r.String())
	}
}

func TestParsePositionalOperand(t *testing.T) {
	r, err := rule.Parse("T5")
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if r.String() != "T5" {
		t.Errorf("Parse = %q, want T5", r.String())
	}
}

func TestParseInvalidPositional(t *testing.T) {
	_, err := rule.Parse("T?")
	var target *rule.Error
	if !errors.As(err, &target) {
		t.Fatalf("Parse: expected *rule.Error, got %v", err)
	}
	if target.Kind != rule.ErrorInvalidPositional {
		t.Errorf("Kind = %v, want ErrorInvalidPositional", target.Kind)
	}
}

func TestParseUnknownOp(t *testing.T) {
	_, err := rule.Parse("lW")
	var target *rule.Error
	if !errors.As(err, &target) {
		t.Fatalf("Parse: expected *rule.Error, got %v", err)
	}
	if target.Kind != rule.ErrorUnknownRuleOp {
		t.Errorf("Kind = %v, want ErrorUnknownRuleOp", target.Kind)
	}
}

func TestParsePrematureEndOfRule(t *testing.T) {
	_, err := rule.Parse("T")
	var target *rule.Error
	if !errors.As(err, &target) {
		t.Fatalf("Parse: expected *rule.Error, got %v", err)
	}
	if target.Kind != rule.ErrorPrematureEndOfRule {
		t.Errorf("Kind = %v, want ErrorPrematureEndOfRule", target.Kind)
	}
}

func TestParseByteOperandAcceptsAnyByte(t *testing.T) {
	r, err := rule.Parse("$!")
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if r.String() != "$!" {
		t.Errorf("Parse = %q, want $!", r.String())
	}
}

func TestParsePositionalPair(t *testing.T) {
	r, err := rule.Parse("x05")
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if r.String() != "x05" {
		t.Errorf("Parse = %q, want x05", r.String())
	}
}

func TestParsePositionalByte(t *testing.T) {
	r, err := rule.Parse("i0!")
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if r.String() != "i0!" {
		t.Errorf("Parse = %q, want i0!", r.String())
	}
}

func TestParsePositionalTriple(t *testing.T) {
	r, err := rule.Parse("MX012")
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if r.String() != "MX012" {
		t.Errorf("Parse = %q, want MX012", r.String())
	}
}

func TestParseMemoryReadBeforeMemorizeIsMemoryError(t *testing.T) {
	for _, text := range []string{"4", "6", "Q", "X012"} {
		_, err := rule.Parse(text)
		var target *rule.Error
		if !errors.As(err, &target) {
			t.Fatalf("Parse(%q): expected *rule.Error, got %v", text, err)
		}
		if target.Kind != rule.ErrorMemoryError {
			t.Errorf("Parse(%q) Kind = %v, want ErrorMemoryError", text, target.Kind)
		}
	}
}

func TestParseMemoryReadAfterMemorizeSucceeds(t *testing.T) {
	for _, text := range []string{"M4", "M6", "MQ", "MX012"} {
		if _, err := rule.Parse(text); err != nil {
			t.Errorf("Parse(%q): unexpected error %v", text, err)
		}
	}
}

func TestParseStripsCarriageReturn(t *testing.T) {
	r, err := rule.Parse("l\ru")
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if r.String() != "lu" {
		t.Errorf("Parse = %q, want lu", r.String())
	}
}

func TestParseLineSkipsCommentsAndBlank(t *testing.T) {
	r, err := rule.ParseLine("# a comment")
	if err != nil || r != nil {
		t.Errorf("ParseLine(comment) = %v, %v, want nil, nil", r, err)
	}
	r, err = rule.ParseLine("   ")
	if err != nil || r != nil {
		t.Errorf("ParseLine(blank) = %v, %v, want nil, nil", r, err)
	}
	r, err = rule.ParseLine("lu # trailing comment")
	if err != nil {
		t.Fatalf("ParseLine: unexpected error %v", err)
	}
	if r.String() != "lu" {
		t.Errorf("ParseLine = %q, want lu", r.String())
	}
}

package engine_test

import (
	"errors"
	"testing"

	"github.com/llamasoft/HashcatRulesEngine/engine"
	"github.com/llamasoft/HashcatRulesEngine/rule"
)

func apply(t *testing.T, ruleText, word string) string {
	t.Helper()
	r, err := rule.Parse(ruleText)
	if err != nil {
		t.Fatalf("rule.Parse(%q): %v", ruleText, err)
	}
	out, err := engine.Apply(r, []byte(word))
	if err != nil {
		t.Fatalf("engine.Apply(%q, %q): %v", ruleText, word, err)
	}
	return string(out)
}

func TestApplyLowercase(t *testing.T) {
	if got := apply(t, "l", "PassWord"); got != "password" {
		t.Errorf("got %q, want password", got)
	}
}

func TestApplyCapitalize(t *testing.T) {
	if got := apply(t, "c", "password"); got != "Password" {
		t.Errorf("got %q, want Password", got)
	}
}

func TestApplyAppendDuplicate(t *testing.T) {
	if got := apply(t, "$1d", "abc"); got != "abc1abc1" {
		t.Errorf("got %q, want abc1abc1", got)
	}
}

func TestApplyReject(t *testing.T) {
	r, err := rule.Parse("<3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = engine.Apply(r, []byte("password"))
	if !errors.Is(err, engine.Rejected) {
		t.Fatalf("Apply = %v, want Rejected", err)
	}
}

func TestApplyRejectContainsChar(t *testing.T) {
	r, err := rule.Parse("!1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = engine.Apply(r, []byte("pass1word"))
	if !errors.Is(err, engine.Rejected) {
		t.Fatalf("Apply = %v, want Rejected", err)
	}
}

func TestApplyMemoryAppend(t *testing.T) {
	if got := apply(t, "M4", "abc"); got != "abcabc" {
		t.Errorf("got %q, want abcabc", got)
	}
}

func TestParseRejectsMemoryReadBeforeMemorize(t *testing.T) {
	_, err := rule.Parse("4")
	var target *rule.Error
	if !errors.As(err, &target) {
		t.Fatalf("Parse(\"4\") = %v, want *rule.Error", err)
	}
	if target.Kind != rule.ErrorMemoryError {
		t.Errorf("Kind = %v, want ErrorMemoryError", target.Kind)
	}
}

// TestApplyMemoryWithoutMemorizeIsMemoryError exercises engine.Apply's own
// guard directly, bypassing rule.Parse's scope check, since a rule.Rule
// can also arrive from a source other than Parse (e.g. a future wire
// format) and Apply must not trust memory-read ops without re-checking.
func TestApplyMemoryWithoutMemorizeIsMemoryError(t *testing.T) {
	r := rule.Rule("4")
	_, err := engine.Apply(r, []byte("abc"))
	var target *engine.Error
	if !errors.As(err, &target) {
		t.Fatalf("Apply = %v, want *engine.Error", err)
	}
	if target.Kind != engine.ErrorMemoryError {
		t.Errorf("Kind = %v, want ErrorMemoryError", target.Kind)
	}
}

func TestApplyMemoryRejectIfUnchanged(t *testing.T) {
	r, err := rule.Parse("MQ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = engine.Apply(r, []byte("abc"))
	if !errors.Is(err, engine.Rejected) {
		t.Fatalf("Apply = %v, want Rejected", err)
	}
}

func TestApplyInsertMultiFromMemory(t *testing.T) {
	if got := apply(t, "MX010", "abc"); got != "aabc" {
		t.Errorf("got %q, want aabc", got)
	}
}

func TestApplyInvalidInputTooLong(t *testing.T) {
	r, err := rule.Parse("l")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	_, err = engine.Apply(r, long)
	var target *engine.Error
	if !errors.As(err, &target) {
		t.Fatalf("Apply = %v, want *engine.Error", err)
	}
	if target.Kind != engine.ErrorInvalidInput {
		t.Errorf("Kind = %v, want ErrorInvalidInput", target.Kind)
	}
}

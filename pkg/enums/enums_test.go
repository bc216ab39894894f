package enums

import "testing"

func TestParseItemCondition(t *testing.T) {
	cases := map[string]ItemCondition{
		"Good":   ItemConditionGood,
		" fair ": ItemConditionFair,
		"POOR":   ItemConditionPoor,
	}
	for raw, want := range cases {
		got, err := ParseItemCondition(raw)
		if err != nil {
			t.Fatalf("ParseItemCondition(%q) returned error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseItemCondition(%q) = %q, want %q", raw, got, want)
		}
	}
	if _, err := ParseItemCondition("Broken"); err == nil {
		t.Fatal("expected error for unknown condition")
	}
}

func TestItemConditionAllowsDamage(t *testing.T) {
	if ItemConditionGood.AllowsDamage() {
		t.Fatal("Good condition should not carry damage")
	}
	if !ItemConditionFair.AllowsDamage() || !ItemConditionPoor.AllowsDamage() {
		t.Fatal("Fair and Poor conditions should carry damage")
	}
}

func TestParseProjectStatus(t *testing.T) {
	got, err := ParseProjectStatus(" Closed ")
	if err != nil || got != ProjectStatusClosed {
		t.Fatalf("expected closed, got %q err=%v", got, err)
	}
	if _, err := ParseProjectStatus("archived"); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if ProjectStatus("archived").IsValid() {
		t.Fatal("archived should not be valid")
	}
}

func TestOutboxEventTypesAreValid(t *testing.T) {
	for _, e := range validOutboxEventTypes {
		if !e.IsValid() {
			t.Fatalf("event %q should be valid", e)
		}
		parsed, err := ParseOutboxEventType(string(e))
		if err != nil || parsed != e {
			t.Fatalf("round trip failed for %q", e)
		}
	}
	if _, err := ParseOutboxAggregateType("vendor_order"); err == nil {
		t.Fatal("expected unknown aggregate type to fail")
	}
}

package util

import "testing"

func TestGetEnvString_Default(t *testing.T) {
	if got := GetEnvString("CAL_HACKS_TEST_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestGetEnvString_Set(t *testing.T) {
	t.Setenv("CAL_HACKS_TEST_STR", "value")
	if got := GetEnvString("CAL_HACKS_TEST_STR", "fallback"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("CAL_HACKS_TEST_INT", "42")
	if got := GetEnvInt("CAL_HACKS_TEST_INT", 7); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := GetEnvInt("CAL_HACKS_TEST_INT_UNSET", 7); got != 7 {
		t.Fatalf("expected default 7, got %d", got)
	}

	t.Setenv("CAL_HACKS_TEST_INT", "not-a-number")
	if got := GetEnvInt("CAL_HACKS_TEST_INT", 7); got != 7 {
		t.Fatalf("expected default 7 for garbage input, got %d", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("CAL_HACKS_TEST_BOOL", "true")
	if !GetEnvBool("CAL_HACKS_TEST_BOOL", false) {
		t.Fatal("expected true")
	}

	t.Setenv("CAL_HACKS_TEST_BOOL", "yes")
	if GetEnvBool("CAL_HACKS_TEST_BOOL", false) {
		t.Fatal("expected default false for non true/false value")
	}
}

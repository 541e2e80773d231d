package core

import "testing"

func TestExtraFieldAccessors(t *testing.T) {
	one := OneValue("x")
	if one.IsMany() {
		t.Error("single value reports IsMany")
	}
	if one.One() != "x" {
		t.Errorf("expected 'x', got %q", one.One())
	}
	if one.Many() != nil {
		t.Errorf("single value must have nil list, got %v", one.Many())
	}

	many := ManyValues([]string{"a", "b"})
	if !many.IsMany() {
		t.Error("multi value does not report IsMany")
	}
	if many.One() != "" {
		t.Errorf("multi value must have empty single accessor, got %q", many.One())
	}
	if got := many.Many(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("expected [a b], got %v", got)
	}
}

func TestExtraFieldEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b ExtraField
		want bool
	}{
		{"same single", OneValue("x"), OneValue("x"), true},
		{"different single", OneValue("x"), OneValue("y"), false},
		{"same list", ManyValues([]string{"a", "b"}), ManyValues([]string{"a", "b"}), true},
		{"different list", ManyValues([]string{"a"}), ManyValues([]string{"b"}), false},
		{"different length", ManyValues([]string{"a"}), ManyValues([]string{"a", "a"}), false},
		{"arity mismatch", OneValue("a"), ManyValues([]string{"a"}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, expected %v", got, tt.want)
			}
		})
	}
}

package evaluator

import "testing"

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"zero", 0.0, true},
		{"empty string", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isTruthy(tc.value); got != tc.want {
				t.Errorf("isTruthy(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestIsEqual(t *testing.T) {
	tests := []struct {
		name        string
		left, right any
		want        bool
	}{
		{"nil equals nil", nil, nil, true},
		{"nil vs value", nil, 1.0, false},
		{"same number", 1.0, 1.0, true},
		{"different types never equal", 1.0, "1", false},
		{"same string", "a", "a", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isEqual(tc.left, tc.right); got != tc.want {
				t.Errorf("isEqual(%v, %v) = %v, want %v", tc.left, tc.right, got, tc.want)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "nil"},
		{"whole number drops .0", 1.0, "1"},
		{"fraction keeps digits", 1.5, "1.5"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"string passthrough", "hi", "hi"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := stringify(tc.value); got != tc.want {
				t.Errorf("stringify(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

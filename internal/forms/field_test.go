package forms

import "testing"

func TestFieldValidity(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  Validity
	}{
		{"required empty", Field{Required: true}, Validity{ValueMissing: true}},
		{"required blank text is present", Field{Required: true, Value: "   "}, Validity{}},
		{"required blank email is missing", Field{Kind: KindEmail, Required: true, Value: "   "}, Validity{ValueMissing: true}},
		{"email trimmed", Field{Kind: KindEmail, Value: " jane@example.com "}, Validity{}},
		{"optional empty skips pattern", Field{Pattern: `\d+`}, Validity{}},
		{"valid email", Field{Kind: KindEmail, Value: "jane@example.com"}, Validity{}},
		{"bad email", Field{Kind: KindEmail, Value: "jane.example.com"}, Validity{TypeMismatch: true}},
		{"number", Field{Kind: KindNumber, Value: "12.5"}, Validity{}},
		{"not a number", Field{Kind: KindNumber, Value: "twelve"}, Validity{TypeMismatch: true}},
		{"too short", Field{MinLength: 2, Value: "J"}, Validity{TooShort: true}},
		{"too long", Field{MaxLength: 3, Value: "abcd"}, Validity{TooLong: true}},
		{"runes not bytes", Field{MaxLength: 2, Value: "🚗🚙"}, Validity{}},
		{"pattern whole value", Field{Pattern: `\d+`, Value: "12a"}, Validity{PatternMismatch: true}},
		{"tel ok", Field{Kind: KindTel, Pattern: telPattern, Value: "+1 (555) 010-2000"}, Validity{}},
		{"tel bad", Field{Kind: KindTel, Pattern: telPattern, Value: "call me"}, Validity{PatternMismatch: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.field.Validity()
			if got != tt.want {
				t.Errorf("Validity() = %+v, expected %+v", got, tt.want)
			}
			if got.Valid() != (tt.want == Validity{}) {
				t.Errorf("Valid() = %v", got.Valid())
			}
		})
	}
}

func TestFieldMessage(t *testing.T) {
	tests := []struct {
		field Field
		want  string
	}{
		{Field{Required: true}, "Please fill out this field."},
		{Field{Kind: KindEmail, Value: "x"}, "Please enter an email address."},
		{Field{MinLength: 2, Value: "x"}, "Please use at least 2 characters."},
		{Field{Required: true, Feedback: "Pick a car."}, "Pick a car."},
		{Field{Value: "fine"}, ""},
	}

	for _, tt := range tests {
		if got := tt.field.Message(); got != tt.want {
			t.Errorf("Message() = %q, expected %q", got, tt.want)
		}
	}
}

package ir

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Class
	}{
		{in: "123", want: ClassInt},
		{in: "-7", want: ClassInt},
		{in: "+42", want: ClassInt},
		{in: "3.14", want: ClassFloat},
		{in: "1e14", want: ClassFloat},
		{in: "-0.5", want: ClassFloat},
		{in: "True", want: ClassBool},
		{in: "true", want: ClassBool},
		{in: "YES", want: ClassBool},
		{in: "on", want: ClassBool},
		{in: "False", want: ClassBool},
		{in: "no", want: ClassBool},
		{in: "Off", want: ClassBool},
		{in: "null", want: ClassNull},
		{in: "NULL", want: ClassNull},
		{in: "~", want: ClassNull},
		{in: "", want: ClassNull},
		{in: "hello", want: ClassString},
		{in: "12abc", want: ClassString},
		{in: "yes please", want: ClassString},
	}
	for _, tt := range tests {
		if got := Classify(tt.in); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIntAbsent(t *testing.T) {
	for _, in := range []string{"null", "Null", "~", "", "3.14", "abc", "12abc"} {
		if v, ok := Int(FromString(in)); ok {
			t.Errorf("Int(%q) = %v, ok, want absent", in, v)
		}
	}
	if _, ok := Int(NewSequence()); ok {
		t.Errorf("Int(sequence) ok, want absent")
	}
}

func TestIntPresent(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{in: "0", want: 0},
		{in: "85", want: 85},
		{in: "-12", want: -12},
		{in: "9223372036854775807", want: 9223372036854775807},
	}
	for _, tt := range tests {
		got, ok := Int(FromString(tt.in))
		if !ok || got != tt.want {
			t.Errorf("Int(%q) = %v, %v, want %v, true", tt.in, got, ok, tt.want)
		}
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		absent bool
	}{
		{in: "92.5", want: 92.5},
		{in: "85", want: 85},
		{in: "1e3", want: 1000},
		{in: "null", absent: true},
		{in: "~", absent: true},
		{in: "", absent: true},
		{in: "abc", absent: true},
	}
	for _, tt := range tests {
		got, ok := Float(FromString(tt.in))
		if tt.absent {
			if ok {
				t.Errorf("Float(%q) = %v, ok, want absent", tt.in, got)
			}
			continue
		}
		if !ok || got != tt.want {
			t.Errorf("Float(%q) = %v, %v, want %v, true", tt.in, got, ok, tt.want)
		}
	}
}

func TestBool(t *testing.T) {
	trues := []string{"true", "True", "TRUE", "yes", "Yes", "on", "ON"}
	falses := []string{"false", "False", "no", "NO", "off", "Off"}
	for _, in := range trues {
		got, ok := Bool(FromString(in))
		if !ok || !got {
			t.Errorf("Bool(%q) = %v, %v, want true, true", in, got, ok)
		}
	}
	for _, in := range falses {
		got, ok := Bool(FromString(in))
		if !ok || got {
			t.Errorf("Bool(%q) = %v, %v, want false, true", in, got, ok)
		}
	}
	for _, in := range []string{"null", "~", "", "maybe", "1"} {
		if got, ok := Bool(FromString(in)); ok {
			t.Errorf("Bool(%q) = %v, ok, want absent", in, got)
		}
	}
}

func TestStrRaw(t *testing.T) {
	// Str is raw access: null spellings are still text.
	got, ok := Str(FromString("null"))
	if !ok || got != "null" {
		t.Errorf("Str(null scalar) = %q, %v, want \"null\", true", got, ok)
	}
	if _, ok := Str(NewMapping()); ok {
		t.Errorf("Str(mapping) ok, want absent")
	}
}

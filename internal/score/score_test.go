package score

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
)

func TestOvers(t *testing.T) {
	tests := []struct {
		balls int
		want  string
	}{
		{0, "0.0"},
		{1, "0.1"},
		{5, "0.5"},
		{6, "1.0"},
		{7, "1.1"},
		{114, "19.0"},
		{119, "19.5"},
		{120, "20.0"},
		{-3, "0.0"},
	}
	for _, tt := range tests {
		if got := Overs(tt.balls); got != tt.want {
			t.Errorf("Overs(%d) = %q, want %q", tt.balls, got, tt.want)
		}
	}
}

func TestOversBallComponentRange(t *testing.T) {
	for balls := 0; balls <= 600; balls++ {
		parts := strings.SplitN(Overs(balls), ".", 2)
		if len(parts) != 2 {
			t.Fatalf("Overs(%d) = %q, want overs.balls form", balls, Overs(balls))
		}
		b, err := strconv.Atoi(parts[1])
		if err != nil {
			t.Fatalf("Overs(%d): ball component %q not numeric", balls, parts[1])
		}
		if b < 0 || b > 5 {
			t.Errorf("Overs(%d): ball component %d out of [0,5]", balls, b)
		}
	}
}

func TestInningsOver(t *testing.T) {
	tests := []struct {
		name     string
		wickets  int
		balls    int
		oversCap int
		want     bool
	}{
		{"fresh innings", 0, 0, 20, false},
		{"nine down inside overs", 9, 114, 20, false},
		{"overs cap reached", 9, 120, 20, true},
		{"all out", 10, 30, 20, true},
		{"all out independent of balls", 10, 0, 20, true},
		{"past the cap", 3, 150, 20, true},
		{"unlimited overs", 4, 540, 0, false},
		{"unlimited overs all out", 10, 540, 0, true},
		{"odi mid innings", 5, 240, 50, false},
		{"odi complete", 5, 300, 50, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InningsOver(tt.wickets, tt.balls, tt.oversCap); got != tt.want {
				t.Errorf("InningsOver(%d, %d, %d) = %v, want %v",
					tt.wickets, tt.balls, tt.oversCap, got, tt.want)
			}
		})
	}
}

// Once an innings is over it must stay over for any state with equal or
// greater wickets and balls.
func TestInningsOverMonotonic(t *testing.T) {
	const oversCap = 20
	for wickets := 0; wickets <= 10; wickets++ {
		for balls := 0; balls <= 130; balls++ {
			if !InningsOver(wickets, balls, oversCap) {
				continue
			}
			for dw := 0; dw <= 1; dw++ {
				for db := 0; db <= 12; db += 6 {
					if !InningsOver(wickets+dw, balls+db, oversCap) {
						t.Fatalf("InningsOver not monotonic: true at (%d,%d) but false at (%d,%d)",
							wickets, balls, wickets+dw, balls+db)
					}
				}
			}
		}
	}
}

func TestRunRate(t *testing.T) {
	tests := []struct {
		runs  int
		balls int
		want  float64
	}{
		{0, 0, 0},
		{85, 114, 4.473684210526316},
		{60, 60, 6},
		{12, 6, 12},
	}
	for _, tt := range tests {
		if got := RunRate(tt.runs, tt.balls); got != tt.want {
			t.Errorf("RunRate(%d, %d) = %v, want %v", tt.runs, tt.balls, got, tt.want)
		}
	}
}

func TestFormatRunRate(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{0, "0.00"},
		{-1, "0.00"},
		{4.473684, "4.47"},
		{6, "6.00"},
		{7.5, "7.50"},
	}
	for _, tt := range tests {
		if got := FormatRunRate(tt.rate); got != tt.want {
			t.Errorf("FormatRunRate(%v) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}

func ExampleOvers() {
	fmt.Println(Overs(117))
	// Output: 19.3
}

package cmp

import (
	"math"
	"testing"
	"time"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		x, y     int
		expected int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{2, 2, 0},
		{-1, 1, -1},
	}

	for _, test := range tests {
		if actualValue := Compare(test.x, test.y); actualValue != test.expected {
			t.Errorf("Compare(%v, %v): got %v expected %v", test.x, test.y, actualValue, test.expected)
		}
	}
}

func TestCompareNaN(t *testing.T) {
	nan := math.NaN()

	if actualValue := Compare(nan, 1.0); actualValue != -1 {
		t.Errorf("Got %v expected %v", actualValue, -1)
	}

	if actualValue := Compare(1.0, nan); actualValue != 1 {
		t.Errorf("Got %v expected %v", actualValue, 1)
	}

	if actualValue := Compare(nan, nan); actualValue != 0 {
		t.Errorf("Got %v expected %v", actualValue, 0)
	}
}

func TestLess(t *testing.T) {
	if !Less(1, 2) {
		t.Errorf("Got %v expected %v", false, true)
	}

	if Less(2, 1) {
		t.Errorf("Got %v expected %v", true, false)
	}

	if !Less(math.NaN(), 1.0) {
		t.Errorf("Got %v expected %v", false, true)
	}
}

func TestGenericComparator(t *testing.T) {
	if actualValue := GenericComparator("a", "b"); actualValue != -1 {
		t.Errorf("Got %v expected %v", actualValue, -1)
	}

	if actualValue := GenericComparator("b", "a"); actualValue != 1 {
		t.Errorf("Got %v expected %v", actualValue, 1)
	}

	if actualValue := GenericComparator("a", "a"); actualValue != 0 {
		t.Errorf("Got %v expected %v", actualValue, 0)
	}
}

func TestReverse(t *testing.T) {
	reversed := Reverse(GenericComparator[int])

	if actualValue := reversed(1, 2); actualValue != 1 {
		t.Errorf("Got %v expected %v", actualValue, 1)
	}

	if actualValue := reversed(2, 1); actualValue != -1 {
		t.Errorf("Got %v expected %v", actualValue, -1)
	}

	if actualValue := reversed(2, 2); actualValue != 0 {
		t.Errorf("Got %v expected %v", actualValue, 0)
	}
}

func TestOr(t *testing.T) {
	if actualValue := Or(0, 0, 3, 4); actualValue != 3 {
		t.Errorf("Got %v expected %v", actualValue, 3)
	}

	if actualValue := Or("", "x"); actualValue != "x" {
		t.Errorf("Got %v expected %v", actualValue, "x")
	}

	if actualValue := Or(0, 0); actualValue != 0 {
		t.Errorf("Got %v expected %v", actualValue, 0)
	}
}

func TestTimeComparator(t *testing.T) {
	now := time.Now()
	later := now.Add(time.Hour)

	if actualValue := TimeComparator(now, later); actualValue != -1 {
		t.Errorf("Got %v expected %v", actualValue, -1)
	}

	if actualValue := TimeComparator(later, now); actualValue != 1 {
		t.Errorf("Got %v expected %v", actualValue, 1)
	}

	if actualValue := TimeComparator(now, now); actualValue != 0 {
		t.Errorf("Got %v expected %v", actualValue, 0)
	}
}

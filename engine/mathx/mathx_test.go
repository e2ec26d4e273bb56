package mathx

import "testing"

func TestVec2(t *testing.T) {
	v := Vec2{1, 2}.Add(Vec2{3, -1}).Scale(2)
	if v != (Vec2{8, 2}) {
		t.Fatalf("got %v, want {8 2}", v)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("Clamp(5,0,3) = %d", got)
	}
	if got := Clamp(-1.5, 0.0, 3.0); got != 0 {
		t.Fatalf("Clamp(-1.5,0,3) = %v", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Fatalf("Clamp(2,0,3) = %d", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Fatalf("Lerp(0,10,0.5) = %v", got)
	}
	if got := Lerp(2, 2, 0.9); got != 2 {
		t.Fatalf("Lerp(2,2,0.9) = %v", got)
	}
}

func TestRandRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		got := RandRange(-1, 1)
		if got < -1 || got >= 1 {
			t.Fatalf("RandRange(-1,1) = %v out of range", got)
		}
	}
}

package core

import "testing"

func TestScancodeTableCoversEveryAction(t *testing.T) {
	cases := []struct {
		code Scancode
		want Button
	}{
		{17, ButtonUp},
		{103, ButtonUp},
		{31, ButtonDown},
		{108, ButtonDown},
		{30, ButtonLeft},
		{105, ButtonLeft},
		{32, ButtonRight},
		{106, ButtonRight},
		{57, ButtonJump},
		{28, ButtonAccept},
		{96, ButtonAccept},
	}

	for _, tc := range cases {
		got, ok := ButtonForScancode(tc.code)
		if !ok {
			t.Errorf("scancode %d not mapped, want %s", tc.code, tc.want)
			continue
		}
		if got != tc.want {
			t.Errorf("scancode %d = %s, want %s", tc.code, got, tc.want)
		}
	}
}

func TestScancodeTablePressAndRelease(t *testing.T) {
	for code := range scancodeButtons {
		in := NewInputState()
		button, _ := ButtonForScancode(code)

		in.UpdateButton(button, true)
		if !in.IsPressed(button) {
			t.Errorf("scancode %d: %s not pressed after key down", code, button)
		}
		in.UpdateButton(button, false)
		if in.IsPressed(button) {
			t.Errorf("scancode %d: %s still pressed after key up", code, button)
		}
	}
}

func TestUnmappedScancodeYieldsNoButton(t *testing.T) {
	for _, code := range []Scancode{0, 1, 999, 0xFFFF} {
		if b, ok := ButtonForScancode(code); ok {
			t.Errorf("scancode %d unexpectedly mapped to %s", code, b)
		}
	}
}

func TestResetEventsClearsOnlyTransientFlags(t *testing.T) {
	in := NewInputState()

	in.UpdateButton(ButtonUp, true)
	if !in.PressedThisCycle() {
		t.Fatal("press edge did not raise pressedThisCycle")
	}

	in.ResetEvents()

	if in.PressedThisCycle() || in.ReleasedThisCycle() {
		t.Fatal("transient flags survived ResetEvents")
	}
	if !in.IsPressed(ButtonUp) {
		t.Fatal("persistent button state lost on ResetEvents")
	}
}

func TestReleaseRaisesReleasedThisCycle(t *testing.T) {
	in := NewInputState()
	in.UpdateButton(ButtonJump, true)
	in.ResetEvents()

	in.UpdateButton(ButtonJump, false)
	if !in.ReleasedThisCycle() {
		t.Fatal("release edge did not raise releasedThisCycle")
	}
	if in.PressedThisCycle() {
		t.Fatal("release edge raised pressedThisCycle")
	}
}

func TestUpdateButtonIdempotent(t *testing.T) {
	in := NewInputState()
	in.UpdateButton(ButtonAccept, true)
	in.ResetEvents()

	// Setting the same state again is a no-op: no new edge, no flag.
	in.UpdateButton(ButtonAccept, true)
	if in.PressedThisCycle() {
		t.Fatal("repeated press raised pressedThisCycle without an edge")
	}
	if !in.IsPressed(ButtonAccept) {
		t.Fatal("button state lost on repeated press")
	}
}

func TestCursorLastWriteWins(t *testing.T) {
	in := NewInputState()
	in.SetCursor(10, 20)
	in.SetCursor(300, 400)

	x, y := in.Cursor()
	if x != 300 || y != 400 {
		t.Fatalf("cursor = (%v, %v), want (300, 400)", x, y)
	}
}

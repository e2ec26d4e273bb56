package core

import "testing"

func TestFrameMetricsRollingAverage(t *testing.T) {
	m := NewFrameMetrics()
	for i := 0; i < avgCount; i++ {
		m.Update(0.010) // 10ms frames
	}
	if got := m.FrameTime(); got < 9.9 || got > 10.1 {
		t.Fatalf("avg frame time = %v ms, want ~10", got)
	}
}

func TestFrameMetricsFPS(t *testing.T) {
	m := NewFrameMetrics()
	// 120 frames at ~16.7ms crosses the one-second FPS window.
	for i := 0; i < 120; i++ {
		m.Update(1.0 / 60.0)
	}
	fps, _ := m.Frame()
	if fps < 50 || fps > 70 {
		t.Fatalf("fps = %v, want ~60", fps)
	}
}

package glider

import "testing"

func TestThrottleCollapsesBurst(t *testing.T) {
	fired := 0
	th := NewThrottle(0.1, func() { fired++ })
	th.Request()
	th.Request()
	th.Request()
	th.Update(0.05)
	if fired != 0 {
		t.Fatalf("fired %d times before the window elapsed", fired)
	}
	th.Update(0.06)
	if fired != 1 {
		t.Fatalf("fired %d times, want 1", fired)
	}
	th.Update(1)
	if fired != 1 {
		t.Errorf("fired again without a new request")
	}
}

func TestThrottleRearmsAfterFiring(t *testing.T) {
	fired := 0
	th := NewThrottle(0.1, func() { fired++ })
	th.Request()
	th.Update(0.2)
	th.Request()
	th.Update(0.2)
	if fired != 2 {
		t.Errorf("fired %d times, want 2", fired)
	}
}

func TestThrottleCancel(t *testing.T) {
	fired := 0
	th := NewThrottle(0.1, func() { fired++ })
	th.Request()
	th.Cancel()
	if th.Pending() {
		t.Error("still pending after Cancel")
	}
	th.Update(1)
	if fired != 0 {
		t.Errorf("fired %d times after Cancel", fired)
	}
}

func TestThrottleZeroWindowFiresNextUpdate(t *testing.T) {
	fired := 0
	th := NewThrottle(0, func() { fired++ })
	th.Request()
	th.Update(0)
	if fired != 1 {
		t.Errorf("fired %d times, want 1", fired)
	}
}

func TestIntervalFiresPerPeriod(t *testing.T) {
	fired := 0
	iv := NewInterval(1, func() { fired++ })
	iv.Update(0.5)
	iv.Update(0.4)
	if fired != 0 {
		t.Fatalf("fired %d times early", fired)
	}
	iv.Update(0.2)
	if fired != 1 {
		t.Fatalf("fired %d times, want 1", fired)
	}
	iv.Update(1)
	if fired != 2 {
		t.Errorf("fired %d times, want 2", fired)
	}
}

func TestIntervalOversizedDtFiresOnce(t *testing.T) {
	fired := 0
	iv := NewInterval(1, func() { fired++ })
	iv.Update(10)
	if fired != 1 {
		t.Errorf("fired %d times for one oversized dt, want 1", fired)
	}
}

func TestIntervalResetAndProgress(t *testing.T) {
	iv := NewInterval(2, func() {})
	iv.Update(1)
	if got := iv.Progress(); got != 0.5 {
		t.Errorf("Progress = %v, want 0.5", got)
	}
	iv.Reset()
	if got := iv.Progress(); got != 0 {
		t.Errorf("Progress after Reset = %v, want 0", got)
	}
}

func TestIntervalZeroPeriodNeverFires(t *testing.T) {
	fired := 0
	iv := NewInterval(0, func() { fired++ })
	iv.Update(100)
	if fired != 0 || iv.Progress() != 0 {
		t.Errorf("zero period fired %d times, progress %v", fired, iv.Progress())
	}
}

package services

import "time"

// ResendGate rate-limits OTP resend requests: after a code is sent the gate
// is armed, and resending stays disabled until the interval elapses. The
// clock is injectable for tests.
type ResendGate struct {
	interval time.Duration
	deadline time.Time
	now      func() time.Time
}

func NewResendGate(interval time.Duration) *ResendGate {
	return &ResendGate{interval: interval, now: time.Now}
}

// Arm starts (or restarts) the countdown.
func (g *ResendGate) Arm() {
	g.deadline = g.now().Add(g.interval)
}

// CanResend reports whether the countdown has elapsed. An unarmed gate
// always allows resending.
func (g *ResendGate) CanResend() bool {
	return !g.now().Before(g.deadline)
}

// Remaining reports how long until resending is allowed again; zero once it
// already is.
func (g *ResendGate) Remaining() time.Duration {
	d := g.deadline.Sub(g.now())
	if d < 0 {
		return 0
	}
	return d
}

package timex

import "time"

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// Sleeper abstracts blocking delays so poll loops can run under test
// without wall-clock waits.
type Sleeper interface {
	Sleep(d time.Duration)
}

// Real sleeps on the runtime clock.
type Real struct{}

func (Real) Sleep(d time.Duration) { time.Sleep(d) }

// Fake records requested delays and returns immediately.
// OnSleep, when set, runs after each delay is recorded; tests use it to
// change inputs between polls.
type Fake struct {
	Slept   []time.Duration
	OnSleep func(n int, d time.Duration)
}

func (f *Fake) Sleep(d time.Duration) {
	f.Slept = append(f.Slept, d)
	if f.OnSleep != nil {
		f.OnSleep(len(f.Slept), d)
	}
}

// Total sums all recorded delays.
func (f *Fake) Total() time.Duration {
	var t time.Duration
	for _, d := range f.Slept {
		t += d
	}
	return t
}

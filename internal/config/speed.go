package config

import "time"

// SpeedCurve shortens an interval as a game progresses.
// Every `Every` units of progress subtract Step, down to Min.
type SpeedCurve struct {
	Start time.Duration
	Step  time.Duration
	Min   time.Duration
	Every int
}

// Interval returns the period for the given progress (pieces placed, food eaten).
func (s SpeedCurve) Interval(progress int) time.Duration {
	every := s.Every
	if every < 1 {
		every = 1
	}
	if progress < 0 {
		progress = 0
	}
	d := s.Start - s.Step*time.Duration(progress/every)
	if d < s.Min {
		return s.Min
	}
	return d
}

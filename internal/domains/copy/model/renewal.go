package model

import (
	"errors"
	"time"
)

// Renewal window, in days. A librarian may extend a loan up to four
// weeks out; the pre-filled suggestion is three weeks.
const (
	MaxRenewalDays     = 28
	DefaultRenewalDays = 21
	RenewalDateLayout  = "2006-01-02"
)

// The two rejection messages are user-facing and fixed; tests and
// clients match on them verbatim.
var (
	ErrRenewalInPast = errors.New("Invalid date — renewal in the past")
	ErrRenewalTooFar = errors.New("Invalid date — renewal exceeds 4 weeks")
)

// CivilDate truncates a timestamp to its calendar date (midnight UTC).
// Renewal rules compare whole days, never clock times.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateRenewalDate checks a proposed renewal date against today.
// Both bounds are inclusive: today and today+28d are accepted. On
// success the proposed date is returned unchanged. Pure function of
// (proposed, today).
func ValidateRenewalDate(proposed, today time.Time) (time.Time, error) {
	p := CivilDate(proposed)
	d := CivilDate(today)

	if p.Before(d) {
		return time.Time{}, ErrRenewalInPast
	}
	if p.After(d.AddDate(0, 0, MaxRenewalDays)) {
		return time.Time{}, ErrRenewalTooFar
	}

	return proposed, nil
}

// ProposedRenewalDate is the default suggestion shown for an empty
// renewal form: three weeks from today. A convenience, not a bound.
func ProposedRenewalDate(today time.Time) time.Time {
	return CivilDate(today).AddDate(0, 0, DefaultRenewalDays)
}

// RenewalRejectedError carries everything the redisplay-with-errors
// outcome needs: the untouched copy, the date the caller submitted, and
// the specific rule violation. Unwraps to ErrRenewalInPast or
// ErrRenewalTooFar.
type RenewalRejectedError struct {
	Copy          *Copy
	SubmittedDate time.Time
	Err           error
}

func (e *RenewalRejectedError) Error() string {
	return e.Err.Error()
}

func (e *RenewalRejectedError) Unwrap() error {
	return e.Err
}

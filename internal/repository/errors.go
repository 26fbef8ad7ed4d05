// Package repository defines sentinel error values that are reused across
// multiple repositories. Higher layers match on these to distinguish
// failure scenarios: handlers translate not-found errors into HTTP 404 and
// conflict errors into HTTP 409.
package repository

import "errors"

// ErrSponsorNotFound indicates the requested sponsor does not exist.
var ErrSponsorNotFound = errors.New("sponsor not found")

// ErrEventNotFound indicates the requested event does not exist.
var ErrEventNotFound = errors.New("event not found")

// ErrSponsorshipNotFound indicates the requested sponsorship does not exist.
var ErrSponsorshipNotFound = errors.New("sponsorship not found")

// ErrMemberNotFound indicates the requested member does not exist.
var ErrMemberNotFound = errors.New("member not found")

// ErrEmailExists is returned when registering with an email that is
// already taken.
var ErrEmailExists = errors.New("email already exists")

// ErrDuplicateSponsorship is returned when a sponsorship already links the
// given sponsor and event. The (sponsor, event) pair is unique on the
// create path.
var ErrDuplicateSponsorship = errors.New("sponsorship already exists for this sponsor and event")

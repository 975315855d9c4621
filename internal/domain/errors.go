package domain

import "errors"

// Domain errors.
var (
	ErrNoActiveDraft           = errors.New("no event draft in progress")
	ErrUnparseable             = errors.New("could not understand the date/time")
	ErrPastTime                = errors.New("the event time must be in the future")
	ErrInvalidTimezone         = errors.New("timezone is not in the accepted catalog")
	ErrInvalidDuration         = errors.New("duration is not one of the allowed values")
	ErrMissingDateTime         = errors.New("date and time are required")
	ErrMissingReason           = errors.New("a reason is required")
	ErrStepOutOfOrder          = errors.New("this step is not expected right now")
	ErrPermissionDenied        = errors.New("permission denied")
	ErrDuplicateTeamMembership = errors.New("user already belongs to a team")
	ErrTeamExists              = errors.New("team already exists")
	ErrNotFound                = errors.New("not found")
)

// DuplicateMembershipError reports the team a user is already rostered on.
type DuplicateMembershipError struct {
	Team string
}

func (e *DuplicateMembershipError) Error() string {
	return ErrDuplicateTeamMembership.Error() + ": " + e.Team
}

func (e *DuplicateMembershipError) Unwrap() error {
	return ErrDuplicateTeamMembership
}

var codes = []struct {
	err  error
	code string
}{
	{ErrNoActiveDraft, "no_active_draft"},
	{ErrUnparseable, "unparseable"},
	{ErrPastTime, "past_time"},
	{ErrInvalidTimezone, "invalid_timezone"},
	{ErrInvalidDuration, "invalid_duration"},
	{ErrMissingDateTime, "missing_datetime"},
	{ErrMissingReason, "missing_reason"},
	{ErrStepOutOfOrder, "step_out_of_order"},
	{ErrPermissionDenied, "permission_denied"},
	{ErrDuplicateTeamMembership, "duplicate_team_membership"},
	{ErrTeamExists, "team_exists"},
	{ErrNotFound, "not_found"},
}

// Code returns the stable code of the domain error wrapped by err, or "" when
// err is not a domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}

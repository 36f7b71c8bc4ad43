package domain

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrRunNotFound       = errors.New("payout_run_not_found")
	ErrInvalidTransition = errors.New("invalid_run_transition")
	ErrMissingFxRate     = errors.New("missing_fx_rate")
)

// RevenueBucket names an agency revenue stream a manager/VA percentage can
// apply to.
type RevenueBucket string

const (
	BucketChatting RevenueBucket = "chatting"
	BucketGunzo    RevenueBucket = "gunzo"
)

// DualPercentageError reports a member configured with both the total-net
// and the messages/tips-net percentage for the same bucket. Summing them
// would silently misstate the payout, so the whole month's computation
// aborts instead.
type DualPercentageError struct {
	TeamMemberID snowflake.ID
	Bucket       RevenueBucket
}

func (e *DualPercentageError) Error() string {
	return fmt.Sprintf("ambiguous percentage configuration for member %s: both total-net and messages/tips percentages set for %s bucket", e.TeamMemberID, e.Bucket)
}

// IsConfigurationError reports whether err is the fatal configuration
// ambiguity, as opposed to a recoverable per-line degradation.
func IsConfigurationError(err error) bool {
	var dual *DualPercentageError
	return errors.As(err, &dual)
}

package cmd

// Messages shown to the user when an action fails or succeeds.
const (
	msgCreateGroupFailed  = "Failed to create group."
	msgJoinGroupFailed    = "Invalid group code or group not found."
	msgMemberAdded        = "Member added successfully!"
	msgAddMemberFailed    = "Failed to add member."
	msgMemberRemoved      = "Member removed successfully!"
	msgRemoveMemberFailed = "Failed to remove member."
	msgPrefsFailed        = "Failed to update preferences."
	msgMatchesFailed      = "Failed to get restaurant recommendations."
	msgRatingSubmitted    = "Rating submitted successfully!"
	msgMenuRatingFailed   = "Failed to submit rating. Please try again."
	msgRecipeRatingFailed = "Failed to submit rating."
	msgNoSelection        = "Please select a rating before submitting"
	msgGenericFailure     = "An error occurred. Please try again."
)

// noticeError carries the message shown to the user while keeping the cause
// reachable through errors.Is.
type noticeError struct {
	message string
	err     error
}

func (e *noticeError) Error() string {
	return e.message
}

func (e *noticeError) Unwrap() error {
	return e.err
}

func failure(message string, err error) error {
	return &noticeError{message: message, err: err}
}

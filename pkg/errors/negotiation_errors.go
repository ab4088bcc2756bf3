package errors

var (
	// Domain errors used in usecase/repository
	ErrNegotiationNotFound   = NotFound("negotiation not found")
	ErrNegotiationNotActive  = FailedPrecondition("negotiation is not active")
	ErrEmptyCommodity        = InvalidArg("commodity cannot be empty")
	ErrInvalidQuantity       = InvalidArg("quantity must be greater than zero")
	ErrEmptyUnit             = InvalidArg("unit cannot be empty")
	ErrPastDeliveryDate      = InvalidArg("delivery date must be in the future")
	ErrInvalidPrice          = InvalidArg("price must be greater than zero")
	ErrEmptyMessage          = InvalidArg("message needs text or at least one attachment")
	ErrNotParticipant        = Forbidden("sender is not a participant of this negotiation")
	ErrFinalizeNotAllowed    = Forbidden("actor is not allowed to finalize this negotiation")
	ErrNoTurnFromBothParties = FailedPrecondition("both buyer and seller must send at least one message before finalizing")
	ErrVersionConflict       = Aborted("negotiation was modified concurrently, refetch and retry")
	ErrAttachmentNotFound    = NotFound("attachment not found on this negotiation")
	ErrAdvisorUnavailable    = Unavailable("suggestion engine unavailable")
)

func ErrStartFailed(cause error) error {
	return Wrap(CodeInternal, "failed to start negotiation", cause)
}

func ErrAttachmentResolveFailed(cause error) error {
	return Wrap(CodeUnavailable, "failed to resolve attachment content", cause)
}

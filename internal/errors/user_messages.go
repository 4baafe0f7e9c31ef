package errors

// User-friendly error messages
const (
	MsgInvalidAddress       = "The provided address is incomplete or incorrectly formatted. Please include street, city, state, and zip code."
	MsgPropertyNotFound     = "We could not find a property record for that address. Please try a different address."
	MsgProviderUnavailable  = "We're unable to retrieve property information right now. Please try again in a few minutes."
	MsgServiceUnavailable   = "The service is temporarily unavailable. Please try again in a few minutes."
	MsgRateLimited          = "You're sending requests too quickly! Please wait a moment and try again."
	MsgInvalidParameters    = "The provided parameters are invalid. Please check your input and try again."
	MsgInvalidCredentials   = "The email or password is incorrect."
	MsgEmailTaken           = "An account with this email already exists."
	MsgAccountPending       = "Your partner account is pending review. You'll be able to submit leads once it is approved."
	MsgAccountDenied        = "Your partner account application was not approved. Contact partner support for details."
	MsgLeadNotFound         = "Lead not found."
	MsgLeadNotQualified     = "This lead did not qualify for any product and cannot be submitted."
	MsgLeadAlreadySubmitted = "This lead has already been submitted to the funding network."
	MsgSubmissionRejected   = "The funding network declined this lead."
	MsgInternalError        = "Something went wrong on our end. Please try again later."
)

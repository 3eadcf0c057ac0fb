package constants

const (
	MsgInvalidCredentials  = "Invalid credentials."
	MsgMissingAuthHeader   = "Missing or invalid Authorization header."
	MsgInvalidToken        = "Invalid or expired token."
	MsgForbiddenRole       = "Forbidden for this role."
	MsgCannotRegisterAdmin = "Cannot register as admin."
	MsgInvalidRole         = "Invalid role. Must be passenger, agent, or crew."
	MsgUsernameTaken       = "Username already exists."
	MsgPassengerIdentity   = "Passenger identity missing in token."
	MsgPassengerProfile    = "Passenger profile not found."
	MsgPassengerNotFound   = "Passenger not found."
	MsgTicketNotOwned      = "Ticket not found for this passenger."
	MsgTicketNotFound      = "Ticket not found."
	MsgFlightNotFound      = "Flight not found."
	MsgDuplicateValue      = "Duplicate value violates a unique constraint."
	MsgRelatedRecord       = "Related record does not exist."
	MsgInternalError       = "Unexpected server error. Check logs."
)

package common

import (
	"strings"

	"github.com/google/uuid"
)

// Ticket and incident numbers are UUID-derived so concurrent requests cannot
// collide the way a timestamp+random scheme can.

func NewTicketNum() string {
	return "T" + idSuffix()
}

func NewIncidentNum() string {
	return "I" + idSuffix()
}

func idSuffix() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:12])
}

package models

import (
	"fmt"
	"strings"
)

// Close-session button custom ids follow the wire contract
// "close_thread_<ownerID>" - a fixed prefix, a literal thread segment and the
// id of the user allowed to close the session.
const (
	closeSessionPrefix  = "close"
	closeSessionSegment = "thread"
)

// CloseSessionControl identifies a close-session button and the only user
// authorized to activate it
type CloseSessionControl struct {
	OwnerID string
}

// CustomID serializes the control into its wire format
func (c CloseSessionControl) CustomID() string {
	return fmt.Sprintf("%s_%s_%s", closeSessionPrefix, closeSessionSegment, c.OwnerID)
}

// ParseCloseSessionControl parses a component custom id. It returns false for
// any id that does not match the close-session wire contract exactly.
func ParseCloseSessionControl(customID string) (CloseSessionControl, bool) {
	parts := strings.Split(customID, "_")
	if len(parts) != 3 {
		return CloseSessionControl{}, false
	}
	if parts[0] != closeSessionPrefix || parts[1] != closeSessionSegment || parts[2] == "" {
		return CloseSessionControl{}, false
	}
	return CloseSessionControl{OwnerID: parts[2]}, true
}

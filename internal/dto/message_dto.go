package dto

import "github.com/google/uuid"

// SendMessageRequest represents the request to send a direct message.
// From may be omitted; it then defaults to the authenticated caller. When
// provided it must match the caller (admins may send on behalf of anyone).
type SendMessageRequest struct {
	From    *uuid.UUID `json:"from,omitempty"`
	To      uuid.UUID  `json:"to" binding:"required"`
	Content string     `json:"content" binding:"required"`
}

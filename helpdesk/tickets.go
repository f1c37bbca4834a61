package helpdesk

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var priorityEmoji = map[string]string{
	"low":      "🟢",
	"medium":   "🟡",
	"high":     "🟠",
	"critical": "🔴",
}

// newTicketID produces an ID in the IT-1000..IT-9999 range.
func newTicketID() string {
	id := uuid.New()
	n := binary.BigEndian.Uint16(id[:2])
	return fmt.Sprintf("IT-%d", 1000+int(n)%9000)
}

// CreateTicket files a mock support ticket and returns the confirmation.
func CreateTicket(issueType, priority, description string) string {
	emoji, ok := priorityEmoji[strings.ToLower(priority)]
	if !ok {
		emoji = "⚪"
	}

	return fmt.Sprintf(`🎫 IT Ticket Created Successfully!

**Ticket ID:** %s
**Type:** %s
**Priority:** %s %s
**Description:** %s
**Status:** Open
**Assigned:** IT Support Team

You will receive email updates on ticket progress.`,
		newTicketID(),
		titleCase(issueType),
		emoji, strings.ToUpper(priority),
		description)
}

// titleCase capitalizes the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		words[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
	}
	return strings.Join(words, " ")
}

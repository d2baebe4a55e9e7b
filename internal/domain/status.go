package domain

// StatusSequence is the total order a ticket moves through. The board renders
// one column per entry, left to right.
var StatusSequence = []TicketStatus{
	TicketStatusNew,
	TicketStatusInProgress,
	TicketStatusWaiting,
	TicketStatusResolved,
	TicketStatusClosed,
}

// InitialStatus is where every new ticket starts.
const InitialStatus = TicketStatusNew

func statusIndex(s TicketStatus) int {
	for i, known := range StatusSequence {
		if known == s {
			return i
		}
	}
	return -1
}

// NextStatus returns the status following s. The terminal status clamps to
// itself, and a value outside the sequence passes through unchanged.
func NextStatus(s TicketStatus) TicketStatus {
	i := statusIndex(s)
	if i < 0 || i == len(StatusSequence)-1 {
		return s
	}
	return StatusSequence[i+1]
}

// PreviousStatus returns the status preceding s, clamping at the first entry.
// Unknown values pass through unchanged.
func PreviousStatus(s TicketStatus) TicketStatus {
	i := statusIndex(s)
	if i <= 0 {
		return s
	}
	return StatusSequence[i-1]
}

// ValidStatus reports membership in the status sequence.
func ValidStatus(s TicketStatus) bool {
	return statusIndex(s) >= 0
}

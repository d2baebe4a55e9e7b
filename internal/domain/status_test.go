package domain

import "testing"

func TestNextStatus(t *testing.T) {
	cases := []struct {
		in   TicketStatus
		want TicketStatus
	}{
		{TicketStatusNew, TicketStatusInProgress},
		{TicketStatusInProgress, TicketStatusWaiting},
		{TicketStatusWaiting, TicketStatusResolved},
		{TicketStatusResolved, TicketStatusClosed},
		{TicketStatusClosed, TicketStatusClosed},
		{TicketStatus("Unbekannt"), TicketStatus("Unbekannt")},
		{TicketStatus(""), TicketStatus("")},
	}
	for _, tt := range cases {
		if got := NextStatus(tt.in); got != tt.want {
			t.Fatalf("NextStatus(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPreviousStatus(t *testing.T) {
	cases := []struct {
		in   TicketStatus
		want TicketStatus
	}{
		{TicketStatusClosed, TicketStatusResolved},
		{TicketStatusResolved, TicketStatusWaiting},
		{TicketStatusWaiting, TicketStatusInProgress},
		{TicketStatusInProgress, TicketStatusNew},
		{TicketStatusNew, TicketStatusNew},
		{TicketStatus("Unbekannt"), TicketStatus("Unbekannt")},
	}
	for _, tt := range cases {
		if got := PreviousStatus(tt.in); got != tt.want {
			t.Fatalf("PreviousStatus(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStatusRoundTrip(t *testing.T) {
	// next(previous(s)) == s for every non-boundary status.
	for _, s := range StatusSequence[1:] {
		if got := NextStatus(PreviousStatus(s)); got != s {
			t.Fatalf("NextStatus(PreviousStatus(%q))=%q", s, got)
		}
	}
	for _, s := range StatusSequence[:len(StatusSequence)-1] {
		if got := PreviousStatus(NextStatus(s)); got != s {
			t.Fatalf("PreviousStatus(NextStatus(%q))=%q", s, got)
		}
	}
}

func TestValidPriority(t *testing.T) {
	for _, p := range Priorities {
		if !ValidPriority(p) {
			t.Fatalf("ValidPriority(%q)=false", p)
		}
	}
	if ValidPriority("urgent!!") {
		t.Fatal(`ValidPriority("urgent!!")=true`)
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !ValidCategory(c) {
			t.Fatalf("ValidCategory(%q)=false", c)
		}
	}
	if ValidCategory("Drucker") {
		t.Fatal(`ValidCategory("Drucker")=true`)
	}
}

package domain

import (
	"time"

	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot grid constants: half-hour slots from 09:00 up to (but excluding) 16:00
const (
	SlotOpenHour        = 9
	SlotCloseHour       = 16
	SlotDurationMinutes = 30
	SlotsPerDay         = 14
)

// LunchTimes slots that are always blocked on business days
var LunchTimes = []types.TimeString{"12:00", "12:30"}

// Deterministic blocking constants: between MinBlockedSlots and
// MaxBlockedSlots non-lunch slots are unavailable on any business day
const (
	MinBlockedSlots = 2
	MaxBlockedSlots = 4
)

// Storage keys for the keyed record store
// Version suffix is the only schema-versioning mechanism
const (
	KeyQuoteRequests = "quote_requests"
	KeyAppointments  = "booking_appointments_v1"
	KeyActivity      = "booking_activity_v1"
	KeyAttachments   = "booking_attachments_v1"
)

// Simulated remote-call latencies
// These model the boundary to a remote scheduling system and are not a
// correctness requirement; tests inject a no-op sleeper
const (
	LatencyRead       = 200 * time.Millisecond
	LatencyBook       = 300 * time.Millisecond
	LatencyCancel     = 200 * time.Millisecond
	LatencyReschedule = 250 * time.Millisecond
	LatencyMiss       = 100 * time.Millisecond

	// Intake submission latency window: 500-900ms
	LatencySubmitBase   = 500 * time.Millisecond
	LatencySubmitJitter = 400 * time.Millisecond
)

// SubmitFailureRate independent random failure chance of the intake
// submission, stacked on top of the deterministic "fail"-email rule
const SubmitFailureRate = 0.05

// Request id format constants
const (
	RequestIDPrefix  = "REQ"
	RequestIDPattern = `REQ-(\d{4})-(\d{4})`
)

package models

import (
	"github.com/shopspring/decimal"
)

type UrgencyLevel string

const (
	UrgencyNormal   UrgencyLevel = "normal"
	UrgencyUrgent   UrgencyLevel = "urgent"
	UrgencyCritical UrgencyLevel = "critical"
)

func (u UrgencyLevel) IsValid() bool {
	switch u {
	case UrgencyNormal, UrgencyUrgent, UrgencyCritical:
		return true
	}
	return false
}

// ShiftPricingInput carries everything the pricing engine needs for one
// calculation. Callers fetch the fields from storage and fill the struct;
// the engine never reads anything else.
type ShiftPricingInput struct {
	BaseHourlyRate  decimal.Decimal `json:"base_hourly_rate" validate:"required"`
	DurationHours   decimal.Decimal `json:"duration_hours"`
	RequiredWorkers int             `json:"required_workers"`
	UrgencyLevel    UrgencyLevel    `json:"urgency_level" validate:"required,urgency_level"`
	IsNightShift    bool            `json:"is_night_shift"`
	IsWeekend       bool            `json:"is_weekend"`
	IsPublicHoliday bool            `json:"is_public_holiday"`

	// Externally supplied surge components, zero when no surge is active.
	DemandSurge decimal.Decimal `json:"demand_surge"`
	EventSurge  decimal.Decimal `json:"event_surge"`

	PlatformFeeRatePercent       decimal.Decimal `json:"platform_fee_rate_percent"`
	VATRatePercent               decimal.Decimal `json:"vat_rate_percent"`
	ContingencyBufferRatePercent decimal.Decimal `json:"contingency_buffer_rate_percent"`
}

// ShiftPricingResult is the full monetary breakdown for a shift. Every field
// is derived; the struct is never returned partially filled.
type ShiftPricingResult struct {
	TimeSurge            decimal.Decimal `json:"time_surge"`
	TotalSurgeMultiplier decimal.Decimal `json:"total_surge_multiplier"`
	FinalHourlyRate      decimal.Decimal `json:"final_hourly_rate"`
	BaseWorkerPay        decimal.Decimal `json:"base_worker_pay"`
	TotalWorkerPay       decimal.Decimal `json:"total_worker_pay"`
	PlatformFeeAmount    decimal.Decimal `json:"platform_fee_amount"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	VATAmount            decimal.Decimal `json:"vat_amount"`
	TotalBusinessCost    decimal.Decimal `json:"total_business_cost"`
	EscrowAmount         decimal.Decimal `json:"escrow_amount"`
}

// SurgeQuote is the rate preview returned when only the multiplier is needed,
// e.g. a live estimate while a business edits a shift.
type SurgeQuote struct {
	TimeSurge            decimal.Decimal `json:"time_surge"`
	TotalSurgeMultiplier decimal.Decimal `json:"total_surge_multiplier"`
	FinalHourlyRate      decimal.Decimal `json:"final_hourly_rate"`
}

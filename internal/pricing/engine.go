package pricing

import (
	"gostaff/internal/models"
	"gostaff/internal/utils"

	"github.com/shopspring/decimal"
)

// Config holds the surge increments applied per time-based flag. Magnitudes
// are deployment configuration, not algorithm: inject them through the
// constructor so tests can use arbitrary rate tables.
type Config struct {
	UrgentSurge   decimal.Decimal `json:"urgent_surge"`
	CriticalSurge decimal.Decimal `json:"critical_surge"`
	NightSurge    decimal.Decimal `json:"night_surge"`
	WeekendSurge  decimal.Decimal `json:"weekend_surge"`
	HolidaySurge  decimal.Decimal `json:"holiday_surge"`
}

// DefaultConfig returns the standard surge increment table.
func DefaultConfig() Config {
	return Config{
		UrgentSurge:   decimal.NewFromFloat(0.30),
		CriticalSurge: decimal.NewFromFloat(0.60),
		NightSurge:    decimal.NewFromFloat(0.20),
		WeekendSurge:  decimal.NewFromFloat(0.15),
		HolidaySurge:  decimal.NewFromFloat(0.50),
	}
}

// Engine computes shift pricing: the surge multiplier applied to the
// advertised rate and the full monetary breakdown charged to the business.
// All arithmetic is exact decimal, so identical inputs always produce
// identical results. The engine is stateless and safe for concurrent use.
type Engine struct {
	config Config
}

func NewEngine(config Config) *Engine {
	return &Engine{config: config}
}

// CalculateSurge computes the rate preview for a shift: the summed
// time-based surge, the total multiplier, and the resulting hourly rate.
func (e *Engine) CalculateSurge(input models.ShiftPricingInput) (*models.SurgeQuote, error) {
	if err := e.validateSurgeInput(input); err != nil {
		return nil, err
	}

	timeSurge := decimal.Zero
	switch input.UrgencyLevel {
	case models.UrgencyUrgent:
		timeSurge = timeSurge.Add(e.config.UrgentSurge)
	case models.UrgencyCritical:
		timeSurge = timeSurge.Add(e.config.CriticalSurge)
	}
	if input.IsNightShift {
		timeSurge = timeSurge.Add(e.config.NightSurge)
	}
	if input.IsWeekend {
		timeSurge = timeSurge.Add(e.config.WeekendSurge)
	}
	if input.IsPublicHoliday {
		timeSurge = timeSurge.Add(e.config.HolidaySurge)
	}

	// No upper cap here; callers may impose one.
	multiplier := decimal.NewFromInt(1).
		Add(timeSurge).
		Add(input.DemandSurge).
		Add(input.EventSurge)

	return &models.SurgeQuote{
		TimeSurge:            timeSurge,
		TotalSurgeMultiplier: multiplier,
		FinalHourlyRate:      input.BaseHourlyRate.Mul(multiplier),
	}, nil
}

// CalculateCosts computes the full breakdown: worker pay, platform fee, VAT,
// total business cost, and the escrow amount the business must reserve
// before the shift is confirmed.
func (e *Engine) CalculateCosts(input models.ShiftPricingInput) (*models.ShiftPricingResult, error) {
	if err := e.validateCostInput(input); err != nil {
		return nil, err
	}

	quote, err := e.CalculateSurge(input)
	if err != nil {
		return nil, err
	}

	workerHours := input.DurationHours.Mul(decimal.NewFromInt(int64(input.RequiredWorkers)))
	baseWorkerPay := input.BaseHourlyRate.Mul(workerHours)
	totalWorkerPay := quote.FinalHourlyRate.Mul(workerHours)

	platformFee := totalWorkerPay.Mul(utils.Percent(input.PlatformFeeRatePercent))
	subtotal := totalWorkerPay.Add(platformFee)
	vat := subtotal.Mul(utils.Percent(input.VATRatePercent))
	totalBusinessCost := subtotal.Add(vat)
	escrow := totalBusinessCost.Mul(
		decimal.NewFromInt(1).Add(utils.Percent(input.ContingencyBufferRatePercent)))

	return &models.ShiftPricingResult{
		TimeSurge:            quote.TimeSurge,
		TotalSurgeMultiplier: quote.TotalSurgeMultiplier,
		FinalHourlyRate:      quote.FinalHourlyRate,
		BaseWorkerPay:        baseWorkerPay,
		TotalWorkerPay:       totalWorkerPay,
		PlatformFeeAmount:    platformFee,
		Subtotal:             subtotal,
		VATAmount:            vat,
		TotalBusinessCost:    totalBusinessCost,
		EscrowAmount:         escrow,
	}, nil
}

func (e *Engine) validateSurgeInput(input models.ShiftPricingInput) error {
	if !input.BaseHourlyRate.IsPositive() {
		return models.NewInvalidInput("base_hourly_rate", "must be greater than zero")
	}
	if !input.UrgencyLevel.IsValid() {
		return models.NewInvalidInput("urgency_level", "must be normal, urgent, or critical")
	}
	if input.DemandSurge.IsNegative() {
		return models.NewInvalidInput("demand_surge", "must not be negative")
	}
	if input.EventSurge.IsNegative() {
		return models.NewInvalidInput("event_surge", "must not be negative")
	}
	return nil
}

func (e *Engine) validateCostInput(input models.ShiftPricingInput) error {
	// Zero duration or workers is allowed and yields all-zero money.
	if input.DurationHours.IsNegative() {
		return models.NewInvalidInput("duration_hours", "must not be negative")
	}
	if input.RequiredWorkers < 0 {
		return models.NewInvalidInput("required_workers", "must not be negative")
	}
	if input.PlatformFeeRatePercent.IsNegative() {
		return models.NewInvalidInput("platform_fee_rate_percent", "must not be negative")
	}
	if input.VATRatePercent.IsNegative() {
		return models.NewInvalidInput("vat_rate_percent", "must not be negative")
	}
	if input.ContingencyBufferRatePercent.IsNegative() {
		return models.NewInvalidInput("contingency_buffer_rate_percent", "must not be negative")
	}
	return nil
}

package settings

// Monetary fields are minor units; margins and rates are basis fractions
// in percent (20 = 20%).
type SaveSettingsRequest struct {
	RentPerSquareMeter    int64 `json:"rent_per_square_meter" binding:"gte=0"`
	ElectricityCostPerKwh int64 `json:"electricity_cost_per_kwh" binding:"gte=0"`
	OperatorHourlyCost    int64 `json:"operator_hourly_cost" binding:"gte=0"`
	WorkingHoursPerYear   int64 `json:"working_hours_per_year" binding:"required,gt=0"`
	DefaultProfitMargin   int64 `json:"default_profit_margin" binding:"gte=0"`
	DefaultTaxRate        int64 `json:"default_tax_rate" binding:"gte=0"`
}

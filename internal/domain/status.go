package domain

// GapStatus classifies a region's stock against its forecast demand.
type GapStatus string

const (
	StatusShortage  GapStatus = "Shortage"
	StatusBalanced  GapStatus = "Balanced"
	StatusOverstock GapStatus = "Overstock"
)

// Supplier delay flags.
const (
	SupplierOnTime  = "On-Time"
	SupplierDelayed = "Delayed"
)

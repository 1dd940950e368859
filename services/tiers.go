package services

const (
	TierFree     = "free"
	TierStandard = "standard"
	TierPlus     = "plus"
)

// IsValidTier reports whether tier is one of the three known plans.
// Anything else is ignored by the subscription flow, never persisted.
func IsValidTier(tier string) bool {
	return tier == TierFree || tier == TierStandard || tier == TierPlus
}

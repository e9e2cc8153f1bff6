package entitlement

const (
	ErrFmtLoadSubscription = "failed to load household subscription: %w"

	LogMsgEntitlementDenied = "Wheel entitlement denied"
)

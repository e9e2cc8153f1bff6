package domain

// Plan is a household subscription tier
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPro     Plan = "pro"
	PlanPremium Plan = "premium"
)

// IsPaid reports whether the plan includes paid features
func (p Plan) IsPaid() bool {
	return p != "" && p != PlanFree
}

// SubscriptionStatus mirrors the billing provider's subscription state
type SubscriptionStatus string

const (
	StatusActive   SubscriptionStatus = "active"
	StatusPastDue  SubscriptionStatus = "past_due"
	StatusCanceled SubscriptionStatus = "canceled"
	StatusInactive SubscriptionStatus = "inactive"
)

// IsActive reports whether the status grants access to paid features
func (s SubscriptionStatus) IsActive() bool {
	return s == StatusActive
}

// HouseholdSubscription is the billing row for a household
type HouseholdSubscription struct {
	HouseholdID string             `json:"household_id" db:"household_id"`
	Plan        Plan               `json:"plan" db:"plan"`
	Status      SubscriptionStatus `json:"status" db:"status"`
}

// Entitlement is the outcome of a plan check
type Entitlement struct {
	Plan   Plan               `json:"plan"`
	Status SubscriptionStatus `json:"status"`
	Active bool               `json:"active"`
}

// Role is a household member's permission level
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Profile is a household member's points and avatar record
type Profile struct {
	UserID      string `json:"user_id" db:"user_id"`
	HouseholdID string `json:"household_id" db:"household_id"`
	DisplayName string `json:"display_name" db:"display_name"`
	AvatarEmoji string `json:"avatar_emoji" db:"avatar_emoji"`
	TotalPoints int    `json:"total_points" db:"total_points"`
	Role        Role   `json:"role" db:"role"`
}

// IsAdmin reports whether the member may manage the household's wheel
func (p Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

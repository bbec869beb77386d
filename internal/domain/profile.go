package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultCalorieGoal = 2000
	DefaultLanguage    = "fr"
)

// UserProfile holds per-user demographics and preferences. One per user.
type UserProfile struct {
	OwnerID       uuid.UUID
	Name          string
	Age           *int
	Gender        *Gender
	Height        *float64 // cm
	Weight        *float64 // kg
	ActivityLevel ActivityLevel
	CalorieGoal   int
	DarkMode      bool
	Language      string
	Units         Units
	Notifications bool

	// Monthly photo-recognition usage. PhotoLookupsMonth is "YYYY-MM".
	PhotoLookupsUsed  int
	PhotoLookupsMonth string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultUserProfile returns the profile created at registration.
func DefaultUserProfile(ownerID uuid.UUID, name string) UserProfile {
	return UserProfile{
		OwnerID:       ownerID,
		Name:          name,
		ActivityLevel: ActivityModerate,
		CalorieGoal:   DefaultCalorieGoal,
		Language:      DefaultLanguage,
		Units:         UnitsMetric,
		Notifications: true,
	}
}

// PhotoUsage returns the usage count for month, treating a counter recorded
// for a different month as zero.
func (p *UserProfile) PhotoUsage(month string) int {
	if p.PhotoLookupsMonth != month {
		return 0
	}
	return p.PhotoLookupsUsed
}

// PhotoQuota reports usage against limit for month. A zero limit is
// unlimited and reports zero remaining.
func (p *UserProfile) PhotoQuota(month string, limit int) PhotoQuota {
	used := p.PhotoUsage(month)
	q := PhotoQuota{Month: month, Used: used, Limit: limit}
	if limit > 0 {
		q.Remaining = max(0, limit-used)
	}
	return q
}

// ProfilePatch describes a partial profile update. Nil fields are unchanged.
type ProfilePatch struct {
	Name          *string
	Age           *int
	Gender        *Gender
	Height        *float64
	Weight        *float64
	ActivityLevel *ActivityLevel
	CalorieGoal   *int
	DarkMode      *bool
	Language      *string
	Units         *Units
	Notifications *bool
}

// Apply returns a copy of p with the patch applied.
func (pp ProfilePatch) Apply(p UserProfile) UserProfile {
	out := p
	if pp.Name != nil {
		out.Name = *pp.Name
	}
	if pp.Age != nil {
		out.Age = pp.Age
	}
	if pp.Gender != nil {
		out.Gender = pp.Gender
	}
	if pp.Height != nil {
		out.Height = pp.Height
	}
	if pp.Weight != nil {
		out.Weight = pp.Weight
	}
	if pp.ActivityLevel != nil {
		out.ActivityLevel = *pp.ActivityLevel
	}
	if pp.CalorieGoal != nil {
		out.CalorieGoal = *pp.CalorieGoal
	}
	if pp.DarkMode != nil {
		out.DarkMode = *pp.DarkMode
	}
	if pp.Language != nil {
		out.Language = *pp.Language
	}
	if pp.Units != nil {
		out.Units = *pp.Units
	}
	if pp.Notifications != nil {
		out.Notifications = *pp.Notifications
	}
	return out
}

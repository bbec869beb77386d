package rest

import (
	"time"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"github.com/heartmarshall/scanplate-backend/internal/service/profile"
)

type nutrientsResponse struct {
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
}

func toNutrients(n domain.Nutrients) nutrientsResponse {
	n = n.Rounded()
	return nutrientsResponse{
		Calories: n.Calories,
		Proteins: n.Proteins,
		Carbs:    n.Carbs,
		Fats:     n.Fats,
		Fiber:    n.Fiber,
	}
}

type entryResponse struct {
	ID string `json:"id"`
	nutrientsResponse
	Name        string    `json:"name"`
	ServingSize float64   `json:"serving_size"`
	ServingUnit string    `json:"serving_unit"`
	MealType    *string   `json:"meal_type"`
	Source      string    `json:"source"`
	Barcode     *string   `json:"barcode,omitempty"`
	PhotoURL    *string   `json:"photo_url,omitempty"`
	Confidence  *float64  `json:"confidence,omitempty"`
	ConsumedAt  time.Time `json:"consumed_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toEntryResponse(e *domain.NutritionEntry) entryResponse {
	resp := entryResponse{
		ID:                e.ID.String(),
		nutrientsResponse: toNutrients(e.Nutrients),
		Name:              e.Name,
		ServingSize:       e.ServingSize,
		ServingUnit:       e.ServingUnit,
		Source:            e.Source.String(),
		Barcode:           e.Barcode,
		PhotoURL:          e.PhotoRef,
		Confidence:        e.Confidence,
		ConsumedAt:        e.ConsumedAt,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
	if e.MealType != nil {
		m := e.MealType.String()
		resp.MealType = &m
	}
	return resp
}

func toEntryResponses(entries []domain.NutritionEntry) []entryResponse {
	out := make([]entryResponse, len(entries))
	for i := range entries {
		out[i] = toEntryResponse(&entries[i])
	}
	return out
}

type dayTotalResponse struct {
	Date       string            `json:"date"`
	Totals     nutrientsResponse `json:"totals"`
	EntryCount int               `json:"entry_count"`
}

func toDayTotal(d domain.DayTotal) dayTotalResponse {
	return dayTotalResponse{
		Date:       d.Date.Format(domain.DateLayout),
		Totals:     toNutrients(d.Totals),
		EntryCount: d.EntryCount,
	}
}

type goalProgressResponse struct {
	Consumed   float64 `json:"consumed"`
	Goal       int     `json:"goal"`
	Remaining  float64 `json:"remaining"`
	Percentage int     `json:"percentage"`
	Exceeded   bool    `json:"exceeded"`
}

func toGoalProgress(p domain.GoalProgress) goalProgressResponse {
	return goalProgressResponse{
		Consumed:   p.Consumed,
		Goal:       p.Goal,
		Remaining:  p.Remaining,
		Percentage: p.Percentage,
		Exceeded:   p.Exceeded,
	}
}

type mealGroupResponse struct {
	MealType *string `json:"meal_type"`
	Calories float64 `json:"calories"`
	Count    int     `json:"count"`
}

func toMealGroups(groups []domain.MealGroup) []mealGroupResponse {
	out := make([]mealGroupResponse, len(groups))
	for i, g := range groups {
		out[i] = mealGroupResponse{Calories: g.Calories, Count: g.Count}
		if g.MealType != nil {
			m := g.MealType.String()
			out[i].MealType = &m
		}
	}
	return out
}

type dailyResponse struct {
	Date     string               `json:"date"`
	Totals   nutrientsResponse    `json:"totals"`
	Count    int                  `json:"count"`
	Progress goalProgressResponse `json:"progress"`
	ByMeal   []mealGroupResponse  `json:"by_meal"`
}

func toDaily(s *domain.DailySummary) dailyResponse {
	return dailyResponse{
		Date:     s.Date.Format(domain.DateLayout),
		Totals:   toNutrients(s.Totals),
		Count:    s.Count,
		Progress: toGoalProgress(s.Progress),
		ByMeal:   toMealGroups(s.ByMeal),
	}
}

type periodResponse struct {
	Start       string             `json:"start_date"`
	End         string             `json:"end_date"`
	Days        []dayTotalResponse `json:"days"`
	Totals      nutrientsResponse  `json:"totals"`
	Averages    nutrientsResponse  `json:"averages"`
	DaysLogged  int                `json:"days_logged"`
	EntryCount  int                `json:"entry_count"`
	AverageDays int                `json:"average_days"`
}

func toPeriod(p *domain.PeriodStats) periodResponse {
	days := make([]dayTotalResponse, len(p.Days))
	for i, d := range p.Days {
		days[i] = toDayTotal(d)
	}
	return periodResponse{
		Start:       p.Start.Format(domain.DateLayout),
		End:         p.End.Format(domain.DateLayout),
		Days:        days,
		Totals:      toNutrients(p.Totals),
		Averages:    toNutrients(p.Averages),
		DaysLogged:  p.DaysLogged,
		EntryCount:  p.EntryCount,
		AverageDays: p.AverageDays,
	}
}

type sourceCountResponse struct {
	Source     string `json:"source"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type methodsResponse struct {
	Total   int                   `json:"total"`
	Sources []sourceCountResponse `json:"sources"`
}

func toMethods(m *domain.MethodStats) methodsResponse {
	sources := make([]sourceCountResponse, len(m.Sources))
	for i, s := range m.Sources {
		sources[i] = sourceCountResponse{Source: s.Source.String(), Count: s.Count, Percentage: s.Percentage}
	}
	return methodsResponse{Total: m.Total, Sources: sources}
}

type frequentFoodResponse struct {
	Name            string  `json:"name"`
	Count           int     `json:"count"`
	TotalCalories   float64 `json:"total_calories"`
	AverageCalories int     `json:"avg_calories"`
}

func toFrequent(foods []domain.FrequentFood) []frequentFoodResponse {
	out := make([]frequentFoodResponse, len(foods))
	for i, f := range foods {
		out[i] = frequentFoodResponse{
			Name:            f.Name,
			Count:           f.Count,
			TotalCalories:   f.TotalCalories,
			AverageCalories: f.AverageCalories,
		}
	}
	return out
}

type macrosResponse struct {
	Date     string `json:"date"`
	Proteins int    `json:"proteins"`
	Carbs    int    `json:"carbs"`
	Fats     int    `json:"fats"`
}

type previewResponse struct {
	Consumed   float64 `json:"consumed"`
	Calories   float64 `json:"calories"`
	NewTotal   float64 `json:"new_total"`
	Goal       int     `json:"goal"`
	CanAdd     bool    `json:"can_add"`
	WillExceed bool    `json:"will_exceed"`
	Overage    float64 `json:"overage"`
}

func toPreview(p *domain.CaloriePreview) previewResponse {
	return previewResponse{
		Consumed:   p.Consumed,
		Calories:   p.Calories,
		NewTotal:   p.NewTotal,
		Goal:       p.Goal,
		CanAdd:     true,
		WillExceed: p.WillExceed,
		Overage:    p.Overage,
	}
}

type candidateResponse struct {
	nutrientsResponse
	Name        string   `json:"name"`
	Source      string   `json:"source"`
	Provider    string   `json:"provider"`
	Confidence  *float64 `json:"confidence,omitempty"`
	Barcode     *string  `json:"barcode,omitempty"`
	Brand       *string  `json:"brand,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	FdcID       *int     `json:"fdc_id,omitempty"`
	ServingSize float64  `json:"serving_size"`
	ServingUnit string   `json:"serving_unit"`
	Estimated   bool     `json:"estimated"`
}

func toCandidate(c *domain.FoodCandidate) candidateResponse {
	return candidateResponse{
		nutrientsResponse: toNutrients(c.Nutrients),
		Name:              c.Name,
		Source:            c.Source.String(),
		Provider:          string(c.Provider),
		Confidence:        c.Confidence,
		Barcode:           c.Barcode,
		Brand:             c.Brand,
		ImageURL:          c.ImageURL,
		FdcID:             c.FdcID,
		ServingSize:       c.ServingSize,
		ServingUnit:       c.ServingUnit,
		Estimated:         c.Estimated,
	}
}

func toCandidates(cs []domain.FoodCandidate) []candidateResponse {
	out := make([]candidateResponse, len(cs))
	for i := range cs {
		out[i] = toCandidate(&cs[i])
	}
	return out
}

type quotaResponse struct {
	Month     string `json:"month"`
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
}

func toQuota(q domain.PhotoQuota) quotaResponse {
	return quotaResponse{Month: q.Month, Used: q.Used, Limit: q.Limit, Remaining: q.Remaining}
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

type settingsResponse struct {
	Name          string   `json:"name"`
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	Height        *float64 `json:"height"`
	Weight        *float64 `json:"weight"`
	ActivityLevel string   `json:"activity_level"`
	CalorieGoal   int      `json:"calorie_goal"`
	DarkMode      bool     `json:"dark_mode"`
	Language      string   `json:"language"`
	Units         string   `json:"units"`
	Notifications bool     `json:"notifications"`
}

type profileResponse struct {
	User       *userResponse    `json:"user,omitempty"`
	Settings   settingsResponse `json:"settings"`
	PhotoQuota quotaResponse    `json:"photo_quota"`
}

func toProfileResponse(v *profile.View) profileResponse {
	p := v.Profile
	resp := profileResponse{
		Settings: settingsResponse{
			Name:          p.Name,
			Age:           p.Age,
			Height:        p.Height,
			Weight:        p.Weight,
			ActivityLevel: p.ActivityLevel.String(),
			CalorieGoal:   p.CalorieGoal,
			DarkMode:      p.DarkMode,
			Language:      p.Language,
			Units:         string(p.Units),
			Notifications: p.Notifications,
		},
		PhotoQuota: toQuota(v.Quota),
	}
	if p.Gender != nil {
		g := p.Gender.String()
		resp.Settings.Gender = &g
	}
	if v.User != nil {
		u := toUserResponse(v.User)
		resp.User = &u
	}
	return resp
}

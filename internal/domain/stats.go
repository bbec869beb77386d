package domain

import "time"

// DayTotal is the aggregate of one calendar day.
type DayTotal struct {
	Date       time.Time // midnight in the reference timezone
	Totals     Nutrients
	EntryCount int
}

// GoalProgress compares consumed calories against a daily goal.
type GoalProgress struct {
	Consumed   float64
	Goal       int
	Remaining  float64
	Percentage int
	Exceeded   bool
}

// MealGroup aggregates one meal type within a day. Key "" holds entries
// without a meal type.
type MealGroup struct {
	MealType *MealType
	Calories float64
	Count    int
}

// PeriodStats is a run of consecutive day buckets with totals and averages.
type PeriodStats struct {
	Start       time.Time
	End         time.Time
	Days        []DayTotal
	Totals      Nutrients
	Averages    Nutrients
	DaysLogged  int
	EntryCount  int
	AverageDays int // denominator used for Averages
}

// SourceCount is the number of entries captured via one source.
type SourceCount struct {
	Source     EntrySource
	Count      int
	Percentage int
}

// MethodStats breaks down all entries by source.
type MethodStats struct {
	Total   int
	Sources []SourceCount
}

// Count returns the count recorded for source.
func (m MethodStats) Count(source EntrySource) int {
	for _, s := range m.Sources {
		if s.Source == source {
			return s.Count
		}
	}
	return 0
}

// Percentage returns the percentage recorded for source.
func (m MethodStats) Percentage(source EntrySource) int {
	for _, s := range m.Sources {
		if s.Source == source {
			return s.Percentage
		}
	}
	return 0
}

// DailySummary is the full view of a single day.
type DailySummary struct {
	Date     time.Time
	Totals   Nutrients
	Count    int
	Progress GoalProgress
	ByMeal   []MealGroup
}

// FrequentFood is one food name with how often it was logged. Names are
// grouped case-insensitively; Name keeps the first spelling seen.
type FrequentFood struct {
	Name            string
	Count           int
	TotalCalories   float64
	AverageCalories int
}

// MacroSplit is the share of calories from each macronutrient, in percent,
// at 4 kcal/g for proteins and carbs and 9 kcal/g for fats.
type MacroSplit struct {
	Proteins int
	Carbs    int
	Fats     int
}

// CaloriePreview tells whether adding Calories to a day would exceed its goal.
// Adding is never refused; the preview only warns.
type CaloriePreview struct {
	Consumed   float64
	Calories   float64
	NewTotal   float64
	Goal       int
	WillExceed bool
	Overage    float64
}

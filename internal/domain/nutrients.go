package domain

import "math"

// Nutrients holds the tracked nutrition values. Grams for macros, kcal for calories.
type Nutrients struct {
	Calories float64
	Proteins float64
	Carbs    float64
	Fats     float64
	Fiber    float64
}

// Add returns the field-wise sum of n and o.
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Proteins: n.Proteins + o.Proteins,
		Carbs:    n.Carbs + o.Carbs,
		Fats:     n.Fats + o.Fats,
		Fiber:    n.Fiber + o.Fiber,
	}
}

// Div divides every field by d. A non-positive d yields zero values.
func (n Nutrients) Div(d float64) Nutrients {
	if d <= 0 {
		return Nutrients{}
	}
	return Nutrients{
		Calories: n.Calories / d,
		Proteins: n.Proteins / d,
		Carbs:    n.Carbs / d,
		Fats:     n.Fats / d,
		Fiber:    n.Fiber / d,
	}
}

// Rounded returns a copy with every field rounded to two decimals.
func (n Nutrients) Rounded() Nutrients {
	return Nutrients{
		Calories: Round2(n.Calories),
		Proteins: Round2(n.Proteins),
		Carbs:    Round2(n.Carbs),
		Fats:     Round2(n.Fats),
		Fiber:    Round2(n.Fiber),
	}
}

// IsZero reports whether all values are zero.
func (n Nutrients) IsZero() bool {
	return n == Nutrients{}
}

// Round2 rounds v to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

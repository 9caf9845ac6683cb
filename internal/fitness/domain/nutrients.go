package domain

// Nutrients per serving of a food, or summed over many.
type Nutrients struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fiber    float64
}

// Add returns the element-wise sum.
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fiber:    n.Fiber + o.Fiber,
	}
}

// Totals is an aggregate over meals. Unmatched counts food tokens that had no
// entry in the food table and so contributed nothing.
type Totals struct {
	Nutrients

	Unmatched int
}

package store

import "fittrack/internal/model"

// Seed data shown on first launch, before the user has stored anything.

func seedWorkouts() []model.Workout {
	return []model.Workout{
		{
			ID:         "1",
			Name:       "Full Body Blast",
			Category:   "strength",
			Duration:   45,
			Difficulty: "intermediate",
			Calories:   350,
			Exercises: []model.Exercise{
				{ID: "e1", Name: "Push-ups", Sets: 3, Reps: 15},
				{ID: "e2", Name: "Squats", Sets: 4, Reps: 12},
				{ID: "e3", Name: "Deadlifts", Sets: 3, Reps: 10, Weight: 50},
				{ID: "e4", Name: "Plank", Sets: 3, Duration: "45s"},
			},
		},
		{
			ID:         "2",
			Name:       "HIIT Cardio",
			Category:   "cardio",
			Duration:   30,
			Difficulty: "advanced",
			Calories:   400,
			Exercises: []model.Exercise{
				{ID: "e5", Name: "Burpees", Sets: 3, Reps: 15},
				{ID: "e6", Name: "Mountain Climbers", Sets: 3, Duration: "45s"},
				{ID: "e7", Name: "Jump Rope", Sets: 3, Duration: "1m"},
				{ID: "e8", Name: "High Knees", Sets: 3, Duration: "45s"},
			},
		},
		{
			ID:         "3",
			Name:       "Core Crusher",
			Category:   "core",
			Duration:   20,
			Difficulty: "beginner",
			Calories:   200,
			Exercises: []model.Exercise{
				{ID: "e9", Name: "Crunches", Sets: 3, Reps: 20},
				{ID: "e10", Name: "Russian Twists", Sets: 3, Reps: 16, Weight: 5},
				{ID: "e11", Name: "Leg Raises", Sets: 3, Reps: 12},
				{ID: "e12", Name: "Bicycle Crunches", Sets: 3, Reps: 20},
			},
		},
	}
}

func seedMeals() []model.Meal {
	return []model.Meal{
		{
			ID:       "1",
			Name:     "Protein Breakfast",
			Category: "breakfast",
			Calories: 450,
			Protein:  35,
			Carbs:    30,
			Fat:      15,
			Ingredients: []string{
				"3 egg whites",
				"1 whole egg",
				"1/2 cup oatmeal",
				"1 banana",
				"1 tbsp peanut butter",
			},
		},
		{
			ID:       "2",
			Name:     "Grilled Chicken Salad",
			Category: "lunch",
			Calories: 380,
			Protein:  40,
			Carbs:    15,
			Fat:      12,
			Ingredients: []string{
				"150g grilled chicken breast",
				"2 cups mixed greens",
				"1/4 avocado",
				"1 tbsp olive oil",
				"1 tbsp balsamic vinegar",
			},
		},
		{
			ID:       "3",
			Name:     "Post-Workout Shake",
			Category: "snack",
			Calories: 250,
			Protein:  30,
			Carbs:    25,
			Fat:      5,
			Ingredients: []string{
				"1 scoop whey protein",
				"1 banana",
				"1 cup almond milk",
				"1 tbsp honey",
			},
		},
	}
}

func seedHabits() []model.Habit {
	return []model.Habit{
		{ID: "1", Name: "Morning Workout", Target: 5, Completed: [7]bool{false, true, true, false, false, false, false}},
		{ID: "2", Name: "Drink 8 glasses of water", Target: 7, Completed: [7]bool{true, true, true, true, false, false, false}},
		{ID: "3", Name: "Take vitamins", Target: 7, Completed: [7]bool{true, true, true, true, true, false, false}},
	}
}

func seedUser() model.User {
	return model.User{
		Name:   "Alex",
		Goal:   "Build Muscle",
		Weight: 75,
		Height: 180,
		Age:    28,
	}
}

func emptyMeasurements() model.Measurements {
	m := make(model.Measurements, len(model.MeasurementTypes))
	for _, typ := range model.MeasurementTypes {
		m[typ] = []model.Measurement{}
	}
	return m
}

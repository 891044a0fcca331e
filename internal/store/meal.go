package store

import (
	"time"

	log "github.com/sirupsen/logrus"

	"fittrack/internal/model"
)

// AddMeal assigns a fresh id to the draft and appends it to the catalog.
// Returns the assigned id.
func (s *Store) AddMeal(draft model.Meal) string {
	draft.ID = s.nextID()
	s.meals = append(s.meals, draft)
	s.notify(KeyMeals)
	return draft.ID
}

// UpdateMeal replaces the catalog entry with a matching id; unknown ids
// are ignored.
func (s *Store) UpdateMeal(meal model.Meal) {
	for i := range s.meals {
		if s.meals[i].ID == meal.ID {
			s.meals[i] = meal
			s.notify(KeyMeals)
			return
		}
	}
	log.Debugf("update meal: id %s not found", meal.ID)
}

// DeleteMeal removes the catalog entry with the given id. Consumed log
// entries referencing it are untouched.
func (s *Store) DeleteMeal(id string) {
	for i := range s.meals {
		if s.meals[i].ID == id {
			s.meals = append(s.meals[:i], s.meals[i+1:]...)
			s.notify(KeyMeals)
			return
		}
	}
	log.Debugf("delete meal: id %s not found", id)
}

// MealByID looks up a catalog entry.
func (s *Store) MealByID(id string) (model.Meal, bool) {
	for _, m := range s.meals {
		if m.ID == id {
			return m, true
		}
	}
	return model.Meal{}, false
}

// ConsumeMeal appends a consumed-meal log entry with the meal's calories
// and macros scaled by quantity. A zero date means now. Quantity is taken
// as given (0 records a zero-valued entry); an unresolved meal id is
// ignored.
func (s *Store) ConsumeMeal(mealID string, date time.Time, quantity float64) {
	meal, ok := s.MealByID(mealID)
	if !ok {
		log.Debugf("consume meal: id %s not found", mealID)
		return
	}
	if date.IsZero() {
		date = time.Now()
	}
	s.consumed = append(s.consumed, model.ConsumedMeal{
		ID:       s.nextID(),
		MealID:   mealID,
		MealName: meal.Name,
		Date:     date,
		Calories: float64(meal.Calories) * quantity,
		Protein:  meal.Protein * quantity,
		Carbs:    meal.Carbs * quantity,
		Fat:      meal.Fat * quantity,
		Quantity: quantity,
	})
	s.notify(KeyConsumedMeals)
}

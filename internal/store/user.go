package store

import "fittrack/internal/model"

// UserUpdate carries the fields of a partial profile update; nil fields
// keep their current value.
type UserUpdate struct {
	Name   *string
	Goal   *string
	Weight *float64
	Height *float64
	Age    *int
}

// UpdateUser shallow-merges the set fields into the profile record.
func (s *Store) UpdateUser(update UserUpdate) {
	if update.Name != nil {
		s.user.Name = *update.Name
	}
	if update.Goal != nil {
		s.user.Goal = *update.Goal
	}
	if update.Weight != nil {
		s.user.Weight = *update.Weight
	}
	if update.Height != nil {
		s.user.Height = *update.Height
	}
	if update.Age != nil {
		s.user.Age = *update.Age
	}
	s.notify(KeyUser)
}

// UpdateDailyCalories sets the daily calorie target.
func (s *Store) UpdateDailyCalories(calories int) {
	s.dailyKcal = calories
	s.notify(KeyDailyCalories)
}

// Profile is a convenience read of user plus target for the profile view.
func (s *Store) Profile() (model.User, int) {
	return s.user, s.dailyKcal
}

package model

import "time"

type GoalType string

const (
	GoalWeightLoss  GoalType = "weight_loss"
	GoalMuscleGain  GoalType = "muscle_gain"
	GoalMaintenance GoalType = "maintenance"
	GoalEndurance   GoalType = "endurance"
)

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

type ExerciseType string

const (
	ExerciseCardio      ExerciseType = "cardio"
	ExerciseStrength    ExerciseType = "strength"
	ExerciseFlexibility ExerciseType = "flexibility"
	ExerciseSports      ExerciseType = "sports"
)

type UserProfile struct {
	ID            string        `json:"id"`
	Username      string        `json:"username"`
	Email         string        `json:"email"`
	FullName      string        `json:"full_name"`
	Age           int           `json:"age"`
	HeightCm      float64       `json:"height"`
	WeightKg      float64       `json:"weight"`
	GoalType      GoalType      `json:"goal_type"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	BMI           float64       `json:"bmi"`
	DailyCalories int           `json:"daily_calories"`
}

type FoodItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatPer100g      float64 `json:"fat_per_100g"`
	FiberPer100g    float64 `json:"fiber_per_100g"`
}

type Exercise struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Type              ExerciseType `json:"type"`
	MuscleGroups      []string     `json:"muscle_groups"`
	Description       string       `json:"description"`
	Instructions      []string     `json:"instructions"`
	CaloriesPerMinute float64      `json:"calories_per_minute"`
}

type MealLogEntry struct {
	ID            string    `json:"id"`
	FoodItemID    string    `json:"food_item_id"`
	FoodName      string    `json:"food_name"`
	QuantityGrams float64   `json:"quantity"`
	Calories      float64   `json:"calories"`
	ProteinG      float64   `json:"protein"`
	CarbsG        float64   `json:"carbs"`
	FatG          float64   `json:"fat"`
	MealType      string    `json:"meal_type"`
	LoggedAt      time.Time `json:"logged_at"`
}

type WorkoutLogEntry struct {
	ID             string    `json:"id"`
	ExerciseID     string    `json:"exercise_id"`
	ExerciseName   string    `json:"exercise_name"`
	DurationMin    int       `json:"duration"`
	CaloriesBurned float64   `json:"calories_burned"`
	Sets           *int      `json:"sets"`
	Reps           *int      `json:"reps"`
	WeightKg       *float64  `json:"weight"`
	Notes          *string   `json:"notes"`
	CompletedAt    time.Time `json:"completed_at"`
}

type NutritionTotals struct {
	TotalCalories float64 `json:"total_calories"`
	TotalProteinG float64 `json:"total_protein"`
	TotalCarbsG   float64 `json:"total_carbs"`
	TotalFatG     float64 `json:"total_fat"`
	MealCount     int     `json:"meal_count"`
}

type WorkoutTotals struct {
	TotalCaloriesBurned float64 `json:"total_calories_burned"`
	TotalMinutes        int     `json:"total_workout_time"`
	WorkoutCount        int     `json:"workout_count"`
}

type DashboardStats struct {
	Nutrition        NutritionTotals `json:"nutrition"`
	Workouts         WorkoutTotals   `json:"workouts"`
	ActiveGoalsCount int             `json:"active_goals_count"`
}

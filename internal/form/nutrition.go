package form

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/harssh120/AlphaFit/internal/api"
	"github.com/harssh120/AlphaFit/internal/model"
)

type MealSubmitter interface {
	LogMeal(ctx context.Context, draft api.MealDraft) (model.MealLogEntry, error)
}

// NutritionForm buffers meal-entry input. Phases run Editing -> Submitting ->
// (Success | Failed) -> Editing. A failed submission preserves the buffer so
// nothing has to be retyped; a successful one clears it.
type NutritionForm struct {
	submitter  MealSubmitter
	ClearAfter time.Duration

	mu         sync.Mutex
	phase      Phase
	foodItemID string
	quantity   string
	mealType   string
	message    string
	gen        int
}

func NewNutritionForm(submitter MealSubmitter) *NutritionForm {
	return &NutritionForm{submitter: submitter, ClearAfter: DefaultClearAfter}
}

func (f *NutritionForm) SetFoodItem(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.foodItemID = strings.TrimSpace(id)
}

func (f *NutritionForm) SetQuantity(quantity string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quantity = strings.TrimSpace(quantity)
}

func (f *NutritionForm) SetMealType(mealType string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mealType = strings.TrimSpace(strings.ToLower(mealType))
}

func (f *NutritionForm) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

func (f *NutritionForm) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

func (f *NutritionForm) Buffer() (foodItemID, quantity, mealType string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.foodItemID, f.quantity, f.mealType
}

// Submit validates required fields locally, coerces the quantity, and hands
// the draft to the submitter. Incomplete input is surfaced immediately with
// no network round-trip and the form stays in Editing.
func (f *NutritionForm) Submit(ctx context.Context) (model.MealLogEntry, error) {
	f.mu.Lock()
	if f.phase == PhaseSubmitting {
		f.mu.Unlock()
		return model.MealLogEntry{}, fmt.Errorf("submission already in progress")
	}
	if f.foodItemID == "" || f.quantity == "" {
		f.mu.Unlock()
		return model.MealLogEntry{}, fmt.Errorf("select a food item and enter a quantity")
	}
	quantity, err := strconv.ParseFloat(f.quantity, 64)
	if err != nil || quantity <= 0 {
		f.mu.Unlock()
		return model.MealLogEntry{}, fmt.Errorf("quantity must be a positive number")
	}
	draft := api.MealDraft{
		FoodItemID:    f.foodItemID,
		QuantityGrams: quantity,
		MealType:      f.mealType,
	}
	f.phase = PhaseSubmitting
	f.message = ""
	f.mu.Unlock()

	entry, err := f.submitter.LogMeal(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.phase = PhaseFailed
		f.message = api.Message(err, "Could not log meal")
		f.scheduleClearLocked()
		return model.MealLogEntry{}, err
	}
	f.phase = PhaseSuccess
	f.message = fmt.Sprintf("Logged %s", entry.FoodName)
	f.foodItemID = ""
	f.quantity = ""
	f.mealType = ""
	f.scheduleClearLocked()
	return entry, nil
}

// scheduleClearLocked arms the transient-message timer. The generation
// counter keeps a timer from an earlier submission from clobbering a newer
// phase.
func (f *NutritionForm) scheduleClearLocked() {
	f.gen++
	gen := f.gen
	time.AfterFunc(f.ClearAfter, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.gen != gen {
			return
		}
		if f.phase == PhaseSuccess || f.phase == PhaseFailed {
			f.phase = PhaseEditing
			f.message = ""
		}
	})
}

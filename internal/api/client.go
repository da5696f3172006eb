package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/harssh120/AlphaFit/internal/model"
)

const defaultBaseURL = "http://localhost:8000"

// Credential is the authorization capability for a single session. The
// session manager owns it and hands it to callers per request; the client
// never holds a default.
type Credential string

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Error is a service-side rejection decoded from the API's error payload.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if strings.TrimSpace(e.Detail) != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsUnauthorized reports whether err is a 401 rejection, the invalid-session
// signal that forces fail-closed teardown.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// Message returns the service-provided detail for a rejected call, or
// fallback for transport-level failures that carry no payload.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Detail) != "" {
		return apiErr.Detail
	}
	return fallback
}

type Registration struct {
	Username      string              `json:"username"`
	Email         string              `json:"email"`
	Password      string              `json:"password"`
	FullName      string              `json:"full_name"`
	Age           int                 `json:"age"`
	HeightCm      float64             `json:"height"`
	WeightKg      float64             `json:"weight"`
	GoalType      model.GoalType      `json:"goal_type"`
	ActivityLevel model.ActivityLevel `json:"activity_level"`
}

type AuthResponse struct {
	Token string            `json:"token"`
	User  model.UserProfile `json:"user"`
}

type MealDraft struct {
	FoodItemID    string  `json:"food_item_id"`
	QuantityGrams float64 `json:"quantity"`
	MealType      string  `json:"meal_type"`
}

// WorkoutDraft carries optional fields as pointers so an absent value never
// serializes as zero.
type WorkoutDraft struct {
	ExerciseID  string   `json:"exercise_id"`
	DurationMin int      `json:"duration"`
	Sets        *int     `json:"sets,omitempty"`
	Reps        *int     `json:"reps,omitempty"`
	WeightKg    *float64 `json:"weight,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

func (c *Client) Login(ctx context.Context, username, password string) (AuthResponse, error) {
	body := map[string]string{"username": username, "password": password}
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, &out); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, reg Registration) (AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", reg, &out); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

func (c *Client) Profile(ctx context.Context, cred Credential) (model.UserProfile, error) {
	var out model.UserProfile
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", cred, nil, &out); err != nil {
		return model.UserProfile{}, err
	}
	return out, nil
}

func (c *Client) DashboardStats(ctx context.Context, cred Credential) (model.DashboardStats, error) {
	var out model.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/stats", cred, nil, &out); err != nil {
		return model.DashboardStats{}, err
	}
	return out, nil
}

func (c *Client) FoodItems(ctx context.Context, cred Credential) ([]model.FoodItem, error) {
	var out []model.FoodItem
	if err := c.do(ctx, http.MethodGet, "/api/food/items", cred, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Exercises(ctx context.Context, cred Credential) ([]model.Exercise, error) {
	var out []model.Exercise
	if err := c.do(ctx, http.MethodGet, "/api/exercises", cred, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MealLog(ctx context.Context, cred Credential) ([]model.MealLogEntry, error) {
	var out []model.MealLogEntry
	if err := c.do(ctx, http.MethodGet, "/api/food/log", cred, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) LogMeal(ctx context.Context, cred Credential, draft MealDraft) (model.MealLogEntry, error) {
	var out model.MealLogEntry
	if err := c.do(ctx, http.MethodPost, "/api/food/log", cred, draft, &out); err != nil {
		return model.MealLogEntry{}, err
	}
	return out, nil
}

func (c *Client) WorkoutLog(ctx context.Context, cred Credential) ([]model.WorkoutLogEntry, error) {
	var out []model.WorkoutLogEntry
	if err := c.do(ctx, http.MethodGet, "/api/workouts/log", cred, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) LogWorkout(ctx context.Context, cred Credential, draft WorkoutDraft) (model.WorkoutLogEntry, error) {
	var out model.WorkoutLogEntry
	if err := c.do(ctx, http.MethodPost, "/api/workouts/log", cred, draft, &out); err != nil {
		return model.WorkoutLogEntry{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, cred Credential, in, out any) error {
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal %s payload: %w", path, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create %s request: %w", path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cred != "" {
		req.Header.Set("Authorization", "Bearer "+string(cred))
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute %s request: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{StatusCode: resp.StatusCode, Detail: decodeDetail(body)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func decodeDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Detail)
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"mealweek/internal/models/request_models"
	"mealweek/internal/models/response_models"
	"mealweek/pkg/utils"
)

type GenerationServiceInterface interface {
	GeneratePlan(ctx context.Context, req request_models.GeneratePlanRequest) (*response_models.WeeklyPlanDraft, error)
	GenerateSwapOptions(ctx context.Context, req request_models.SwapOptionsRequest) ([]response_models.MealOption, error)
}

type GenerationService struct {
	client utils.GenerationClientInterface
}

func NewGenerationService(client utils.GenerationClientInterface) GenerationServiceInterface {
	return &GenerationService{client: client}
}

// GeneratePlan asks the model for a full 7-day plan and grocery list.
// Pure request/response; nothing is persisted here. Day totals are
// recomputed server-side so the stored aggregates never depend on the
// model's own arithmetic.
func (g *GenerationService) GeneratePlan(ctx context.Context, req request_models.GeneratePlanRequest) (*response_models.WeeklyPlanDraft, error) {
	if _, ok := utils.GoalMacroRatios[req.Goal]; !ok {
		return nil, utils.ErrInvalidInput
	}
	if req.CaloriesTarget <= 0 {
		return nil, utils.ErrInvalidInput
	}

	prompt := BuildWeeklyPlanPrompt(req)

	raw, err := g.client.GenerateJSON(ctx, prompt)
	if err != nil {
		log.Printf("Plan generation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	var draft response_models.WeeklyPlanDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		log.Printf("Plan generation returned unparsable JSON: %v", err)
		return nil, fmt.Errorf("%w: unparsable reply: %v", utils.ErrGenerationFailed, err)
	}

	if len(draft.Days) != 7 {
		return nil, fmt.Errorf("%w: expected 7 days, got %d", utils.ErrGenerationFailed, len(draft.Days))
	}

	draft.RecomputeTotals()
	return &draft, nil
}

// GenerateSwapOptions asks for exactly three alternatives for one slot
// within ±15% of the slot's calorie/macro envelope.
func (g *GenerationService) GenerateSwapOptions(ctx context.Context, req request_models.SwapOptionsRequest) ([]response_models.MealOption, error) {
	if strings.TrimSpace(req.Preference) == "" || req.DailyCalories <= 0 {
		return nil, utils.ErrInvalidInput
	}

	envelope, ok := utils.ComputeSlotEnvelope(req.Goal, req.DailyCalories, req.MealType)
	if !ok {
		return nil, utils.ErrInvalidInput
	}

	prompt := BuildSwapOptionsPrompt(req, envelope)

	raw, err := g.client.GenerateJSON(ctx, prompt)
	if err != nil {
		log.Printf("Swap option generation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	var parsed struct {
		MealOptions []response_models.MealOption `json:"meal_options"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Printf("Swap option generation returned unparsable JSON: %v", err)
		return nil, fmt.Errorf("%w: unparsable reply: %v", utils.ErrGenerationFailed, err)
	}

	if len(parsed.MealOptions) < 3 {
		return nil, fmt.Errorf("%w: expected 3 meal options, got %d", utils.ErrGenerationFailed, len(parsed.MealOptions))
	}

	return parsed.MealOptions[:3], nil
}

func BuildWeeklyPlanPrompt(req request_models.GeneratePlanRequest) string {
	ratio := utils.GoalMacroRatios[req.Goal]

	var prompt strings.Builder

	prompt.WriteString("Generate a 7-day meal plan with the following parameters:\n")
	fmt.Fprintf(&prompt, "Goal: %s\n", req.Goal)
	fmt.Fprintf(&prompt, "Daily Calories: %d kcal\n", req.CaloriesTarget)
	fmt.Fprintf(&prompt, "Diet Type: %s\n", orDefault(req.DietType, "Standard"))
	fmt.Fprintf(&prompt, "Allergies: %s\n", joinOrNone(req.Allergies))
	fmt.Fprintf(&prompt, "Cuisine Preference: %s\n", joinOrNone(req.CuisinePreferences))
	fmt.Fprintf(&prompt, "Foods to Avoid: %s\n", joinOrNone(req.Dislikes))

	if len(req.CuisinePreferences) > 0 {
		fmt.Fprintf(&prompt, `
CRITICAL CUISINE REQUIREMENT:
Every meal MUST be authentically from the "%s" cuisine(s): traditional
cooking methods, local ingredients, authentic recipe names. Do not
suggest generic Western dishes when a specific cuisine is requested.
`, strings.Join(req.CuisinePreferences, ", "))
	}

	prompt.WriteString(`
For each day provide:
- Breakfast (~25% of daily calories)
- Lunch (~35% of daily calories)
- Dinner (~30% of daily calories)
- Snacks (~10% of daily calories)

Each meal must include:
- recipe_name (appealing, specific, matching the cuisine preference)
- description (short)
- calories (kcal), protein, carbs, fats (grams)
- image_url: a publicly accessible https photo URL for the recipe. No data URIs.

Requirements:
- No recipe name repeated across the 7 days
`)
	fmt.Fprintf(&prompt, "- Macro split for this goal: %.0f%% protein, %.0f%% carbs, %.0f%% fat\n",
		ratio.Protein*100, ratio.Carbs*100, ratio.Fat*100)
	prompt.WriteString(`- Realistic meals, not overly complicated
- Avoid listed allergens and dislikes

Also produce a consolidated grocery_list aggregated across all 7 days.
Each grocery item must include:
- ingredient_name: string
- quantity: string with the unit embedded (e.g. "200gr", "2 pcs", "250ml")
- category: string (e.g. "Produce", "Dairy", "Protein", "Pantry")
- estimated_price: number (currency-agnostic integer units)
- recipe_ref: the exact recipe_name of the meal this item belongs to

Return strictly valid JSON with this exact top-level shape:
{
  "days": [
    {
      "day": 1,
      "meals": {
        "breakfast": {"recipe_name": string, "description": string, "calories": number, "protein": number, "carbs": number, "fats": number, "image_url": string},
        "lunch": {...},
        "dinner": {...},
        "snacks": [{...}]
      },
      "totals": {"calories": number, "protein": number, "carbs": number, "fats": number}
    }
  ],
  "grocery_list": [
    {"ingredient_name": string, "quantity": string, "category": string, "estimated_price": number, "recipe_ref": string}
  ]
}

Do not include any explanatory text outside the JSON.
`)

	return prompt.String()
}

func BuildSwapOptionsPrompt(req request_models.SwapOptionsRequest, envelope utils.SlotEnvelope) string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "Generate 3 alternative %s meal options based on the user's preference.\n\n", req.MealType)
	fmt.Fprintf(&prompt, "User's Request/Preference: %q\n\n", req.Preference)

	prompt.WriteString("Meal Plan Context:\n")
	fmt.Fprintf(&prompt, "Goal: %s\n", req.Goal)
	fmt.Fprintf(&prompt, "Daily Calories: %d kcal\n", req.DailyCalories)
	fmt.Fprintf(&prompt, "Target %s Calories: %d kcal\n", req.MealType, envelope.Calories)
	fmt.Fprintf(&prompt, "Target Macros: Protein %dg, Carbs %dg, Fats %dg\n", envelope.Protein, envelope.Carbs, envelope.Fat)
	fmt.Fprintf(&prompt, "Diet Type: %s\n", orDefault(req.DietType, "Standard"))
	fmt.Fprintf(&prompt, "Allergies: %s\n", joinOrNone(req.Allergies))
	fmt.Fprintf(&prompt, "Cuisine Preference: %s\n", joinOrNone(req.CuisinePreferences))
	fmt.Fprintf(&prompt, "Foods to Avoid: %s\n", joinOrNone(req.Dislikes))

	if len(req.CuisinePreferences) > 0 {
		fmt.Fprintf(&prompt, `
ABSOLUTE CUISINE REQUIREMENT:
Only %s meals that are authentically from the "%s" cuisine(s).
Traditional cooking methods and authentic recipe names; no fusion, no
generic Western techniques.
`, req.MealType, strings.Join(req.CuisinePreferences, ", "))
	}

	prompt.WriteString(`
For each meal option provide:
- recipe_name (appealing, specific, authentic to the cuisine preference)
- description (short, 1-2 sentences)
- calories (kcal), protein, carbs, fats (grams)
- image_url: a publicly accessible https photo URL. No data URIs.
- grocery_items: the ingredients needed for this meal, each with
  ingredient_name (string), quantity (string), category (string),
  estimated_price (number)

Requirements:
- Each option within ±15% of the target calories and macros above
- No repetition between the 3 options
- Realistic, easy to prepare with locally available ingredients
- Avoid listed allergens and dislikes

Return strictly valid JSON with this exact top-level shape:
{
  "meal_options": [
    {
      "recipe_name": string,
      "description": string,
      "calories": number,
      "protein": number,
      "carbs": number,
      "fats": number,
      "image_url": string,
      "grocery_items": [
        {"ingredient_name": string, "quantity": string, "category": string, "estimated_price": number}
      ]
    }
  ]
}
The meal_options array must contain exactly 3 entries.
Do not include any explanatory text outside the JSON.
`)

	return prompt.String()
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

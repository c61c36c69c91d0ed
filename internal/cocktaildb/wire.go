package cocktaildb

import (
	"bytes"
	"encoding/json"

	"github.com/hammamikhairi/cocktailbox/internal/domain"
)

// ── Wire types ───────────────────────────────────────────────────

// envelope is the top-level response. Drinks is kept raw because the API
// answers a miss with null and, on some endpoints, a bare string.
type envelope struct {
	Drinks json.RawMessage `json:"drinks"`
}

// wireDrink mirrors one drink object. Every field is nullable upstream.
type wireDrink struct {
	ID           *string `json:"idDrink"`
	Name         *string `json:"strDrink"`
	Instructions *string `json:"strInstructions"`
	Thumb        *string `json:"strDrinkThumb"`
	Glass        *string `json:"strGlass"`
	Category     *string `json:"strCategory"`
	Alcoholic    *string `json:"strAlcoholic"`

	Ingredient1  *string `json:"strIngredient1"`
	Ingredient2  *string `json:"strIngredient2"`
	Ingredient3  *string `json:"strIngredient3"`
	Ingredient4  *string `json:"strIngredient4"`
	Ingredient5  *string `json:"strIngredient5"`
	Ingredient6  *string `json:"strIngredient6"`
	Ingredient7  *string `json:"strIngredient7"`
	Ingredient8  *string `json:"strIngredient8"`
	Ingredient9  *string `json:"strIngredient9"`
	Ingredient10 *string `json:"strIngredient10"`
	Ingredient11 *string `json:"strIngredient11"`
	Ingredient12 *string `json:"strIngredient12"`
	Ingredient13 *string `json:"strIngredient13"`
	Ingredient14 *string `json:"strIngredient14"`
	Ingredient15 *string `json:"strIngredient15"`

	Measure1  *string `json:"strMeasure1"`
	Measure2  *string `json:"strMeasure2"`
	Measure3  *string `json:"strMeasure3"`
	Measure4  *string `json:"strMeasure4"`
	Measure5  *string `json:"strMeasure5"`
	Measure6  *string `json:"strMeasure6"`
	Measure7  *string `json:"strMeasure7"`
	Measure8  *string `json:"strMeasure8"`
	Measure9  *string `json:"strMeasure9"`
	Measure10 *string `json:"strMeasure10"`
	Measure11 *string `json:"strMeasure11"`
	Measure12 *string `json:"strMeasure12"`
	Measure13 *string `json:"strMeasure13"`
	Measure14 *string `json:"strMeasure14"`
	Measure15 *string `json:"strMeasure15"`
}

func (w *wireDrink) toDomain() domain.Drink {
	ingredients := [domain.SlotCount]*string{
		w.Ingredient1, w.Ingredient2, w.Ingredient3, w.Ingredient4, w.Ingredient5,
		w.Ingredient6, w.Ingredient7, w.Ingredient8, w.Ingredient9, w.Ingredient10,
		w.Ingredient11, w.Ingredient12, w.Ingredient13, w.Ingredient14, w.Ingredient15,
	}
	measures := [domain.SlotCount]*string{
		w.Measure1, w.Measure2, w.Measure3, w.Measure4, w.Measure5,
		w.Measure6, w.Measure7, w.Measure8, w.Measure9, w.Measure10,
		w.Measure11, w.Measure12, w.Measure13, w.Measure14, w.Measure15,
	}

	d := domain.Drink{
		ID:           deref(w.ID),
		Name:         deref(w.Name),
		Instructions: deref(w.Instructions),
		Thumb:        deref(w.Thumb),
		Glass:        deref(w.Glass),
		Category:     deref(w.Category),
		Alcoholic:    deref(w.Alcoholic),
	}
	for i := range d.Slots {
		d.Slots[i] = domain.Slot{
			Ingredient: deref(ingredients[i]),
			Measure:    deref(measures[i]),
		}
	}
	return d
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// decodeDrinks parses a response body into drink records. A missing, null
// or non-array "drinks" value is an empty result, not an error.
func decodeDrinks(body []byte) ([]domain.Drink, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}

	raw := bytes.TrimSpace(env.Drinks)
	if len(raw) == 0 || raw[0] != '[' {
		return []domain.Drink{}, nil
	}

	var wire []*wireDrink
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, err
	}

	out := make([]domain.Drink, 0, len(wire))
	for _, w := range wire {
		if w == nil {
			continue
		}
		out = append(out, w.toDomain())
	}
	return out, nil
}

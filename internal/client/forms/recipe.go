package forms

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cookbook/internal/client/models"
)

type IngredientDraft struct {
	Name   string `form:"name" validate:"required"`
	Amount string `form:"amount" validate:"required,positive_amount"`
	Unit   string `form:"unit" validate:"omitempty,unit"`
}

type StepDraft struct {
	Description string `form:"description" validate:"required"`
	// ImagePath is a newly selected image; ImageURL an image already stored
	// on the server.
	ImagePath string `form:"-"`
	ImageURL  string `form:"-"`
}

// RecipeDraft is the local state of the recipe create and edit forms.
type RecipeDraft struct {
	Title       string            `form:"title" validate:"required,max=100"`
	Category    string            `form:"category" validate:"required"`
	Difficulty  string            `form:"difficulty" validate:"required,difficulty"`
	CookingTime string            `form:"cooking_time" validate:"required,minutes"`
	Servings    string            `form:"servings" validate:"omitempty,servings"`
	Ingredients []IngredientDraft `form:"ingredients" validate:"min=1,dive"`
	Steps       []StepDraft       `form:"steps" validate:"min=1,dive"`

	MainImagePath   string `form:"-"`
	MainImageURL    string `form:"-"`
	RemoveMainImage bool   `form:"-"`

	// RecipeID is set for edit drafts.
	RecipeID int64 `form:"-"`

	editing bool
	touched touchSet
}

// NewRecipeDraft returns an empty creation draft with one blank ingredient
// and one blank step.
func NewRecipeDraft() *RecipeDraft {
	return &RecipeDraft{
		Difficulty:  models.DifficultyEasy,
		Servings:    fmt.Sprint(models.DefaultServings),
		Ingredients: []IngredientDraft{{Unit: models.DefaultUnit}},
		Steps:       []StepDraft{{}},
	}
}

// NewEditDraft pre-fills a draft from an existing recipe. Edit drafts accept
// any non-empty category.
func NewEditDraft(r models.Recipe) *RecipeDraft {
	d := &RecipeDraft{
		RecipeID:     r.ID,
		Title:        r.Title,
		Category:     r.Category,
		Difficulty:   r.Difficulty,
		MainImageURL: r.ImageURL,
		editing:      true,
	}
	if d.Difficulty == "" {
		d.Difficulty = models.DifficultyEasy
	}
	if r.CookingTime > 0 {
		d.CookingTime = fmt.Sprint(r.CookingTime)
	}
	servings := r.Servings
	if servings <= 0 {
		servings = models.DefaultServings
	}
	d.Servings = fmt.Sprint(servings)

	for _, ing := range r.Ingredients {
		unit := ing.Unit
		if unit == "" {
			unit = models.DefaultUnit
		}
		d.Ingredients = append(d.Ingredients, IngredientDraft{Name: ing.Name, Amount: ing.Amount, Unit: unit})
	}
	if len(d.Ingredients) == 0 {
		d.Ingredients = []IngredientDraft{{Unit: models.DefaultUnit}}
	}
	for _, st := range r.Instructions {
		d.Steps = append(d.Steps, StepDraft{Description: st.Description, ImageURL: st.ImageURL})
	}
	if len(d.Steps) == 0 {
		d.Steps = []StepDraft{{}}
	}
	return d
}

func (d *RecipeDraft) Editing() bool { return d.editing }

func (d *RecipeDraft) AddIngredient() {
	d.Ingredients = append(d.Ingredients, IngredientDraft{Unit: models.DefaultUnit})
}

// RemoveIngredient drops the i-th ingredient; the last one cannot be removed.
func (d *RecipeDraft) RemoveIngredient(i int) bool {
	if len(d.Ingredients) <= 1 || i < 0 || i >= len(d.Ingredients) {
		return false
	}
	d.Ingredients = append(d.Ingredients[:i], d.Ingredients[i+1:]...)
	return true
}

func (d *RecipeDraft) AddStep() {
	d.Steps = append(d.Steps, StepDraft{})
}

// RemoveStep drops the i-th step; the last one cannot be removed.
func (d *RecipeDraft) RemoveStep(i int) bool {
	if len(d.Steps) <= 1 || i < 0 || i >= len(d.Steps) {
		return false
	}
	d.Steps = append(d.Steps[:i], d.Steps[i+1:]...)
	return true
}

// SetMainImage selects the dish photo. Non-images are rejected and the
// previous selection is kept.
func (d *RecipeDraft) SetMainImage(path string) error {
	if err := checkImage(path); err != nil {
		return err
	}
	d.MainImagePath = path
	d.RemoveMainImage = false
	return nil
}

func (d *RecipeDraft) SetStepImage(i int, path string) error {
	if i < 0 || i >= len(d.Steps) {
		return fmt.Errorf("no step %d", i+1)
	}
	if err := checkImage(path); err != nil {
		return err
	}
	d.Steps[i].ImagePath = path
	return nil
}

func (d *RecipeDraft) Touch(field string) { d.touched.touch(field) }

// Validate returns every invalid field, touched or not.
func (d *RecipeDraft) Validate() ValidationErrors {
	d.trim()
	errs := check(d)
	if !d.editing && d.Category != "" && validate.Var(d.Category, "category") != nil {
		if errs == nil {
			errs = ValidationErrors{}
		}
		errs["category"] = oneOf(models.Categories)
	}
	return errs
}

// Errors returns the errors of touched fields only, for inline display.
func (d *RecipeDraft) Errors() ValidationErrors { return visible(d.Validate(), &d.touched) }

func (d *RecipeDraft) State(field string) FieldState {
	return stateOf(d.Validate(), &d.touched, field)
}

func (d *RecipeDraft) CanSubmit() bool { return len(d.Validate()) == 0 }

// Submit touches every field and encodes the draft, or returns the
// validation errors.
func (d *RecipeDraft) Submit() (models.Payload, error) {
	d.touched.touchAll()
	if errs := d.Validate(); len(errs) > 0 {
		return models.Payload{}, errs
	}
	return d.payload()
}

type ingredientJSON struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

type instructionJSON struct {
	Description string `json:"description"`
	HasImage    bool   `json:"hasImage"`
}

func (d *RecipeDraft) payload() (models.Payload, error) {
	var p models.Payload
	p.Add("title", d.Title)
	p.Add("cooking_time", d.CookingTime)
	p.Add("category", d.Category)
	p.Add("difficulty", d.Difficulty)

	servings := d.Servings
	if servings == "" {
		servings = fmt.Sprint(models.DefaultServings)
	}
	p.Add("servings", servings)

	ings := make([]ingredientJSON, 0, len(d.Ingredients))
	for _, ing := range d.Ingredients {
		unit := ing.Unit
		if unit == "" {
			unit = models.DefaultUnit
		}
		ings = append(ings, ingredientJSON{Name: ing.Name, Amount: ing.Amount, Unit: unit})
	}
	b, err := json.Marshal(ings)
	if err != nil {
		return models.Payload{}, err
	}
	p.Add("ingredients", string(b))

	steps := make([]instructionJSON, 0, len(d.Steps))
	for _, st := range d.Steps {
		steps = append(steps, instructionJSON{Description: st.Description, HasImage: st.ImagePath != "" || st.ImageURL != ""})
	}
	b, err = json.Marshal(steps)
	if err != nil {
		return models.Payload{}, err
	}
	p.Add("instructions", string(b))

	if d.RemoveMainImage && d.MainImagePath == "" {
		p.Add("remove_main_image", "true")
	}
	if d.MainImagePath != "" {
		p.AddFile("main_image", d.MainImagePath)
	}
	for i, st := range d.Steps {
		if st.ImagePath != "" {
			p.AddFile(fmt.Sprintf("step_images_%d", i), st.ImagePath)
		}
	}
	return p, nil
}

func (d *RecipeDraft) trim() {
	d.Title = strings.TrimSpace(d.Title)
	d.Category = strings.TrimSpace(d.Category)
	d.CookingTime = strings.TrimSpace(d.CookingTime)
	d.Servings = strings.TrimSpace(d.Servings)
	for i := range d.Ingredients {
		d.Ingredients[i].Name = strings.TrimSpace(d.Ingredients[i].Name)
		d.Ingredients[i].Amount = strings.TrimSpace(d.Ingredients[i].Amount)
		d.Ingredients[i].Unit = strings.TrimSpace(d.Ingredients[i].Unit)
	}
	for i := range d.Steps {
		d.Steps[i].Description = strings.TrimSpace(d.Steps[i].Description)
	}
}

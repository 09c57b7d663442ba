package feedback

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/profileform/internal/logging"
	"github.com/muurk/profileform/internal/validation"
)

// Defaults
const (
	DefaultHighlightDelay = 2 * time.Second
	DefaultPlaceholder    = "Your result will appear here..."
)

// Notification text for successful input
const (
	MsgNameLooksGood = "Name looks good!"
	MsgAgeLooksGood  = "Age looks good!"
	MsgSubmitted     = "Information submitted successfully!"
)

// State is the submission state
type State int

const (
	StateIdle State = iota
	StateSubmitted
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSubmitted:
		return "Submitted"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// FormState holds the raw text of both fields
type FormState struct {
	Name string
	Age  string
}

// Get returns the text of field
func (f FormState) Get(field validation.FieldKind) string {
	if field == validation.FieldAge {
		return f.Age
	}
	return f.Name
}

func (f *FormState) set(field validation.FieldKind, text string) {
	if field == validation.FieldAge {
		f.Age = text
		return
	}
	f.Name = text
}

// Options configures a Controller
type Options struct {
	HighlightDelay time.Duration // How long a submit error highlight stays visible
	Placeholder    string        // Result text shown when there is no valid submission
}

// DefaultOptions returns the standard options
func DefaultOptions() Options {
	return Options{
		HighlightDelay: DefaultHighlightDelay,
		Placeholder:    DefaultPlaceholder,
	}
}

// highlight tracks the pending reset for one field
type highlight struct {
	id    uint64
	timer Timer
}

// Controller owns the form state and turns input events into Surface calls
type Controller struct {
	surface Surface
	opts    Options

	form       FormState
	state      State
	highlights map[validation.FieldKind]*highlight
	nextID     uint64
	last       *Outcome
}

// NewController creates a controller that renders to surface.
// Zero-valued options fall back to DefaultOptions.
func NewController(surface Surface, opts Options) *Controller {
	defaults := DefaultOptions()
	if opts.HighlightDelay <= 0 {
		opts.HighlightDelay = defaults.HighlightDelay
	}
	if opts.Placeholder == "" {
		opts.Placeholder = defaults.Placeholder
	}
	return &Controller{
		surface:    surface,
		opts:       opts,
		highlights: make(map[validation.FieldKind]*highlight),
	}
}

// Start renders the initial screen state: normal fields and the placeholder.
func (c *Controller) Start() {
	for _, field := range validation.Fields {
		c.surface.RenderFieldStyle(field, StyleNormal, OpacityNormal)
	}
	c.surface.RenderResult(c.opts.Placeholder, ResultNeutral)
}

// Form returns a copy of the current field text
func (c *Controller) Form() FormState {
	return c.form
}

// State returns the submission state
func (c *Controller) State() State {
	return c.state
}

// Options returns the options in effect
func (c *Controller) Options() Options {
	return c.opts
}

// LastOutcome returns the most recent submit outcome, or nil before the first submit.
func (c *Controller) LastOutcome() *Outcome {
	return c.last
}

// HasPendingHighlight reports whether field has a highlight waiting to revert
func (c *Controller) HasPendingHighlight(field validation.FieldKind) bool {
	_, ok := c.highlights[field]
	return ok
}

// SetName updates the name field
func (c *Controller) SetName(text string) validation.Result {
	return c.SetField(validation.FieldName, text)
}

// SetAge updates the age field
func (c *Controller) SetAge(text string) validation.Result {
	return c.SetField(validation.FieldAge, text)
}

// SetField stores text for field and renders live feedback for it.
func (c *Controller) SetField(field validation.FieldKind, text string) validation.Result {
	c.form.set(field, text)

	c.cancelHighlight(field)
	c.surface.RenderFieldStyle(field, StyleNormal, OpacityNormal)

	res := validation.Validate(field, text)
	switch res.Status {
	case validation.StatusInvalid:
		c.surface.RenderFieldStyle(field, StyleErrorTint, OpacityError)
		c.surface.Notify(res.Reason(), true)
	case validation.StatusValid:
		c.surface.RenderFieldStyle(field, StyleSuccessTint, OpacitySuccess)
		c.surface.Notify(looksGoodMessage(field), false)
	}

	logging.LogFieldChange(field.String(), res.Status.String(), res.Reason())
	return res
}

func looksGoodMessage(field validation.FieldKind) string {
	if field == validation.FieldAge {
		return MsgAgeLooksGood
	}
	return MsgNameLooksGood
}

// Submit validates the trimmed form and renders either the summary or the
// failure feedback. A Submit issued while another is in progress (for example
// from inside a Surface callback) is ignored.
func (c *Controller) Submit() Outcome {
	if c.state == StateSubmitted {
		logging.Debug("Submit ignored while another submission is in progress")
		return Outcome{Ignored: true}
	}
	c.state = StateSubmitted
	defer func() { c.state = StateIdle }()

	name := strings.TrimSpace(c.form.Name)
	ageText := strings.TrimSpace(c.form.Age)

	c.clearHighlights()

	outcome := Outcome{Name: name, AgeText: ageText}
	outcome.Errors = collectErrors(name, ageText)

	if len(outcome.Errors) > 0 {
		c.reject(outcome.Errors)
	} else {
		age, _ := validation.ParseAge(ageText)
		outcome.Accepted = true
		outcome.Age = age
		outcome.Category = validation.Categorize(age)
		outcome.Summary = FormatSummary(name, age, outcome.Category)

		c.surface.RenderResult(outcome.Summary, ResultSuccess)
		c.surface.Notify(MsgSubmitted, false)
	}

	c.last = &outcome
	logging.LogSubmission(outcome.Accepted, outcome.FirstReason(), zap.String("category", outcome.CategoryLabel()))
	return outcome
}

// collectErrors returns every failure for a trimmed form. Blank fields are
// reported on their own; the remaining rules only run once both fields have text.
func collectErrors(name, ageText string) []*validation.ValidationError {
	var errs []*validation.ValidationError

	if name == "" {
		errs = append(errs, validation.NewEmptyFieldError(validation.FieldName))
	}
	if ageText == "" {
		errs = append(errs, validation.NewEmptyFieldError(validation.FieldAge))
	}
	if len(errs) > 0 {
		return errs
	}

	if res := validation.ValidateName(name); res.IsInvalid() {
		errs = append(errs, res.Err)
	}
	if res := validation.ValidateAge(ageText); res.IsInvalid() {
		errs = append(errs, res.Err)
	}
	return errs
}

func (c *Controller) reject(errs []*validation.ValidationError) {
	c.surface.Notify(errs[0].Message, true)
	c.surface.RenderResult(c.opts.Placeholder, ResultNeutral)
	for _, err := range errs {
		c.highlightError(err.Field)
	}
}

// FormatSummary builds the multi-line result text for an accepted submission
func FormatSummary(name string, age int, category validation.AgeCategory) string {
	return fmt.Sprintf("Hello %s!\n\nYou are %d years old.\n\nAge Category: %s\n\nInformation validated successfully!",
		name, age, category)
}

// highlightError tints field and schedules the revert. Any earlier pending
// revert for the field is stopped first.
func (c *Controller) highlightError(field validation.FieldKind) {
	c.cancelHighlight(field)
	c.surface.RenderFieldStyle(field, StyleErrorTint, OpacityError)

	c.nextID++
	h := &highlight{id: c.nextID}
	c.highlights[field] = h

	id := h.id
	h.timer = c.surface.ScheduleDelayed(c.opts.HighlightDelay, func() {
		c.expireHighlight(field, id)
	})
}

func (c *Controller) expireHighlight(field validation.FieldKind, id uint64) {
	h, ok := c.highlights[field]
	if !ok || h.id != id {
		logging.Debug("Stale highlight callback dropped",
			zap.String("field", field.String()),
			zap.Uint64("highlight_id", id),
		)
		return
	}
	delete(c.highlights, field)
	c.surface.RenderFieldStyle(field, StyleNormal, OpacityNormal)
}

func (c *Controller) cancelHighlight(field validation.FieldKind) {
	h, ok := c.highlights[field]
	if !ok {
		return
	}
	delete(c.highlights, field)
	if h.timer != nil {
		h.timer.Stop()
	}
}

// clearHighlights resets both fields to normal and stops pending reverts
func (c *Controller) clearHighlights() {
	for _, field := range validation.Fields {
		c.cancelHighlight(field)
		c.surface.RenderFieldStyle(field, StyleNormal, OpacityNormal)
	}
}

// Close stops every pending highlight timer. Call it when the screen goes away.
func (c *Controller) Close() {
	for _, field := range validation.Fields {
		c.cancelHighlight(field)
	}
}

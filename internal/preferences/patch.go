package preferences

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"reading-prefs-go/internal/common"
	"reading-prefs-go/internal/models"
)

//go:embed schema.json
var schemaText string

var schema = mustSchema(schemaText)

func mustSchema(text string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(text))
	if err != nil {
		panic(fmt.Sprintf("preference schema: %v", err))
	}
	return s
}

// Patch is a partial set of settings. A nil field was not supplied (or was
// sent as JSON null) and must not touch the stored value.
type Patch struct {
	FontFamily      *string  `json:"fontFamily,omitempty"`
	FontSize        *float64 `json:"fontSize,omitempty"`
	LineHeight      *float64 `json:"lineHeight,omitempty"`
	LetterSpacing   *float64 `json:"letterSpacing,omitempty"`
	Bold            *bool    `json:"bold,omitempty"`
	Italic          *bool    `json:"italic,omitempty"`
	Underline       *bool    `json:"underline,omitempty"`
	TextColor       *string  `json:"textColor,omitempty"`
	BackgroundColor *string  `json:"backgroundColor,omitempty"`
	HighlightColor  *string  `json:"highlightColor,omitempty"`
	Theme           *string  `json:"theme,omitempty"`

	OverlayEnabled *bool    `json:"overlayEnabled,omitempty"`
	OverlayColor   *string  `json:"overlayColor,omitempty"`
	OverlayOpacity *float64 `json:"overlayOpacity,omitempty"`

	PointerShape *string  `json:"pointerShape,omitempty"`
	PointerSize  *float64 `json:"pointerSize,omitempty"`
	PointerColor *string  `json:"pointerColor,omitempty"`

	RulerEnabled *bool    `json:"rulerEnabled,omitempty"`
	RulerHeight  *float64 `json:"rulerHeight,omitempty"`
	RulerOpacity *float64 `json:"rulerOpacity,omitempty"`
	RulerColor   *string  `json:"rulerColor,omitempty"`

	Voice       *string  `json:"voice,omitempty"`
	SpeechRate  *float64 `json:"speechRate,omitempty"`
	SpeechPitch *float64 `json:"speechPitch,omitempty"`

	Enabled *bool `json:"enabled,omitempty"`
}

// ParsePatch validates a JSON document against the preference schema and
// decodes it. Values of the wrong type or out of range are rejected, never
// coerced. Keys the schema does not know are ignored.
func ParsePatch(data []byte) (Patch, error) {
	var p Patch
	if err := validate(gojsonschema.NewBytesLoader(data)); err != nil {
		return p, err
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, common.NewValidationError("invalid JSON: " + err.Error())
	}
	return p, nil
}

// Validate runs p through the same schema ParsePatch uses.
func (p Patch) Validate() error {
	return validate(gojsonschema.NewGoLoader(p))
}

func validate(doc gojsonschema.JSONLoader) error {
	res, err := schema.Validate(doc)
	if err != nil {
		return common.NewValidationError("invalid JSON: " + err.Error())
	}
	if res.Valid() {
		return nil
	}
	d := []string{}
	for _, e := range res.Errors() {
		d = append(d, e.String())
	}
	return common.NewValidationError(d...)
}

// applyTo overwrites the fields of pref that p supplies and returns their
// column names in declaration order.
func (p Patch) applyTo(pref *models.Preference) []string {
	var cols []string
	setString := func(v *string, dst *string, col string) {
		if v != nil {
			*dst = *v
			cols = append(cols, col)
		}
	}
	setFloat := func(v *float64, dst *float64, col string) {
		if v != nil {
			*dst = *v
			cols = append(cols, col)
		}
	}
	setBool := func(v *bool, dst *bool, col string) {
		if v != nil {
			*dst = *v
			cols = append(cols, col)
		}
	}

	setString(p.FontFamily, &pref.FontFamily, "font_family")
	setFloat(p.FontSize, &pref.FontSize, "font_size")
	setFloat(p.LineHeight, &pref.LineHeight, "line_height")
	setFloat(p.LetterSpacing, &pref.LetterSpacing, "letter_spacing")
	setBool(p.Bold, &pref.Bold, "bold")
	setBool(p.Italic, &pref.Italic, "italic")
	setBool(p.Underline, &pref.Underline, "underline")
	setString(p.TextColor, &pref.TextColor, "text_color")
	setString(p.BackgroundColor, &pref.BackgroundColor, "background_color")
	setString(p.HighlightColor, &pref.HighlightColor, "highlight_color")
	setString(p.Theme, &pref.Theme, "theme")

	setBool(p.OverlayEnabled, &pref.OverlayEnabled, "overlay_enabled")
	setString(p.OverlayColor, &pref.OverlayColor, "overlay_color")
	setFloat(p.OverlayOpacity, &pref.OverlayOpacity, "overlay_opacity")

	setString(p.PointerShape, &pref.PointerShape, "pointer_shape")
	setFloat(p.PointerSize, &pref.PointerSize, "pointer_size")
	setString(p.PointerColor, &pref.PointerColor, "pointer_color")

	setBool(p.RulerEnabled, &pref.RulerEnabled, "ruler_enabled")
	setFloat(p.RulerHeight, &pref.RulerHeight, "ruler_height")
	setFloat(p.RulerOpacity, &pref.RulerOpacity, "ruler_opacity")
	setString(p.RulerColor, &pref.RulerColor, "ruler_color")

	setString(p.Voice, &pref.Voice, "voice")
	setFloat(p.SpeechRate, &pref.SpeechRate, "speech_rate")
	setFloat(p.SpeechPitch, &pref.SpeechPitch, "speech_pitch")

	setBool(p.Enabled, &pref.Enabled, "enabled")
	return cols
}

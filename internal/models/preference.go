package models

import (
	"time"
)

// Preference is the single settings record kept per user. Defaults live in
// the preferences package and are applied in Go, so no column carries a
// database default: gorm would otherwise skip zero values such as false.
type Preference struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID string `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	// text rendering
	FontFamily      string  `gorm:"column:font_family" json:"fontFamily"`
	FontSize        float64 `gorm:"column:font_size" json:"fontSize"`
	LineHeight      float64 `gorm:"column:line_height" json:"lineHeight"`
	LetterSpacing   float64 `gorm:"column:letter_spacing" json:"letterSpacing"`
	Bold            bool    `gorm:"column:bold" json:"bold"`
	Italic          bool    `gorm:"column:italic" json:"italic"`
	Underline       bool    `gorm:"column:underline" json:"underline"`
	TextColor       string  `gorm:"column:text_color" json:"textColor"`
	BackgroundColor string  `gorm:"column:background_color" json:"backgroundColor"`
	HighlightColor  string  `gorm:"column:highlight_color" json:"highlightColor"`
	Theme           string  `gorm:"column:theme" json:"theme"`

	// overlay
	OverlayEnabled bool    `gorm:"column:overlay_enabled" json:"overlayEnabled"`
	OverlayColor   string  `gorm:"column:overlay_color" json:"overlayColor"`
	OverlayOpacity float64 `gorm:"column:overlay_opacity" json:"overlayOpacity"`

	// pointer
	PointerShape string  `gorm:"column:pointer_shape" json:"pointerShape"`
	PointerSize  float64 `gorm:"column:pointer_size" json:"pointerSize"`
	PointerColor string  `gorm:"column:pointer_color" json:"pointerColor"`

	// reading ruler
	RulerEnabled bool    `gorm:"column:ruler_enabled" json:"rulerEnabled"`
	RulerHeight  float64 `gorm:"column:ruler_height" json:"rulerHeight"`
	RulerOpacity float64 `gorm:"column:ruler_opacity" json:"rulerOpacity"`
	RulerColor   string  `gorm:"column:ruler_color" json:"rulerColor"`

	// speech
	Voice       string  `gorm:"column:voice" json:"voice"`
	SpeechRate  float64 `gorm:"column:speech_rate" json:"speechRate"`
	SpeechPitch float64 `gorm:"column:speech_pitch" json:"speechPitch"`

	Enabled bool `gorm:"column:enabled" json:"enabled"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

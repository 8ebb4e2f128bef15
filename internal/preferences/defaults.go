package preferences

import "reading-prefs-go/internal/models"

// Defaults returns the seed values used when a user's preference record is
// first created. They match what the extension popup shows out of the box.
func Defaults() models.Preference {
	return models.Preference{
		FontFamily:      "OpenDyslexic",
		FontSize:        16,
		LineHeight:      1.4,
		LetterSpacing:   0,
		Bold:            false,
		Italic:          false,
		Underline:       false,
		TextColor:       "#000000",
		BackgroundColor: "#fffee3",
		HighlightColor:  "#ffff00",
		Theme:           "Light",

		OverlayEnabled: false,
		OverlayColor:   "#fffee3",
		OverlayOpacity: 0.15,

		PointerShape: "default",
		PointerSize:  24,
		PointerColor: "#000000",

		RulerEnabled: false,
		RulerHeight:  40,
		RulerOpacity: 0.3,
		RulerColor:   "#ffff00",

		Voice:       "",
		SpeechRate:  1,
		SpeechPitch: 1,

		Enabled: true,
	}
}

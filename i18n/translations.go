package i18n

var germanTranslations = map[string]string{
	"deck.created":     "✓ Präsentation erfolgreich erstellt: %s",
	"deck.slide_count": "✓ Anzahl Folien: %d",
	"deck.also_wrote":  "✓ Zusätzlich erstellt: %s",
	"deck.structure":   "Struktur nach CRISP-DM:",

	"inspect.slide":    "Folie %d: %s",
	"inspect.no_title": "(ohne Titel)",
	"inspect.total":    "%d Folien in %s",
}

var englishTranslations = map[string]string{
	"deck.created":     "✓ Presentation created: %s",
	"deck.slide_count": "✓ Number of slides: %d",
	"deck.also_wrote":  "✓ Also written: %s",
	"deck.structure":   "Structure following CRISP-DM:",

	"inspect.slide":    "Slide %d: %s",
	"inspect.no_title": "(untitled)",
	"inspect.total":    "%d slides in %s",
}

package core

import (
	"fmt"
	"strings"
)

// summaryContent renders the localized symptom summary shown to the
// patient on request. Symptoms should already be merged for
// near-duplicates.
func summaryContent(symptoms []string, lang string) string {
	texts := summaryTextsFor(lang)
	if len(symptoms) == 0 {
		return fmt.Sprintf("## %s\n\n_%s_", texts.Title, texts.None)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n", texts.Title)
	for i, s := range symptoms {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, s)
	}
	b.WriteString("---\n")
	fmt.Fprintf(&b, "**%s:** %d symptom(s)", texts.Total, len(symptoms))
	return b.String()
}

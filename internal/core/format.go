package core

import (
	"fmt"
	"strings"

	"doctor-assistant/pkg"
)

// formatReport assembles the human-readable assessment report. Section
// order is fixed; the warning-signs and self-care sections are omitted
// when empty, and the emergency banner appears only when immediate care
// is required. Headers are localized with an English fallback.
func formatReport(assessment *pkg.TriageAssessment, advice *pkg.MedicalAdvice, name, lang string) string {
	texts := textsFor(lang)
	emoji := emojiFor(assessment.UrgencyLevel)

	var b strings.Builder
	fmt.Fprintf(&b, "**📋 %s - %s**\n", texts.ReportTitle, name)
	fmt.Fprintf(&b, "%s **%s:** %s (%s: %d/10)\n\n",
		emoji, texts.UrgencyLevel, strings.ToUpper(string(assessment.UrgencyLevel)), texts.Score, assessment.UrgencyScore)

	fmt.Fprintf(&b, "**🤔 %s:**\n%s\n\n", texts.Assessment, assessment.Reasoning)

	fmt.Fprintf(&b, "**💊 %s:**\n", texts.Recommendations)
	for _, rec := range advice.Recommendations {
		fmt.Fprintf(&b, "• %s\n", rec)
	}

	fmt.Fprintf(&b, "**⏰ %s:** %s\n", texts.DoctorConsultation, advice.FollowUpTimeframe)

	b.WriteString(listSection("⚠️ "+texts.WarningSigns, advice.WarningSigns))
	b.WriteString(listSection("🏠 "+texts.SelfCare, advice.SelfCareTips))

	if assessment.RequiresImmediateCare {
		b.WriteString("\n" + texts.Emergency)
	}
	return b.String()
}

// listSection renders a bulleted section, or nothing when items is empty.
func listSection(title string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\n**%s:**\n", title)
	for _, item := range items {
		fmt.Fprintf(&b, "• %s\n", item)
	}
	return b.String()
}

// dedupeStrings removes repeated entries preserving first appearance.
func dedupeStrings(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

package core

import (
	"regexp"
	"strings"
	"testing"

	"doctor-assistant/internal/language"
	"doctor-assistant/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAssessment() (*pkg.TriageAssessment, *pkg.MedicalAdvice) {
	return &pkg.TriageAssessment{
			UrgencyScore:          4,
			UrgencyLevel:          pkg.UrgencyMedium,
			RequiresImmediateCare: false,
			Reasoning:             "Symptoms suggest a common viral infection.",
		}, &pkg.MedicalAdvice{
			Recommendations:   []string{"rest well", "drink fluids"},
			WarningSigns:      []string{"fever above 39C"},
			FollowUpTimeframe: "within 3 days",
			SelfCareTips:      []string{"use a cold compress"},
		}
}

func TestFormatReportRoundTrip(t *testing.T) {
	assessment, advice := sampleAssessment()
	report := formatReport(assessment, advice, "Ayse", language.English)

	// Re-parse the section markers and recover level and score.
	urgencyRe := regexp.MustCompile(`\*\*Urgency Level:\*\* (\w+) \(Score: (\d+)/10\)`)
	m := urgencyRe.FindStringSubmatch(report)
	require.NotNil(t, m, "urgency line missing in:\n%s", report)
	assert.Equal(t, "MEDIUM", m[1])
	assert.Equal(t, "4", m[2])

	for _, item := range append(append(advice.Recommendations, advice.WarningSigns...), advice.SelfCareTips...) {
		assert.Contains(t, report, "• "+item)
	}
	assert.Contains(t, report, "Ayse")
	assert.Contains(t, report, assessment.Reasoning)
	assert.Contains(t, report, advice.FollowUpTimeframe)
	assert.NotContains(t, report, "EMERGENCY:")
}

func TestFormatReportOmitsEmptySections(t *testing.T) {
	assessment, advice := sampleAssessment()
	advice.WarningSigns = nil
	advice.SelfCareTips = nil
	report := formatReport(assessment, advice, "Ayse", language.English)

	assert.NotContains(t, report, "Warning Signs")
	assert.NotContains(t, report, "Self-Care Tips")
	assert.Contains(t, report, "Recommendations")
}

func TestFormatReportEmergencyBanner(t *testing.T) {
	assessment, advice := sampleAssessment()
	assessment.UrgencyLevel = pkg.UrgencyEmergency
	assessment.UrgencyScore = 10
	assessment.RequiresImmediateCare = true
	report := formatReport(assessment, advice, "Ayse", language.English)

	assert.Contains(t, report, "🔴")
	assert.Contains(t, report, "EMERGENCY (Score: 10/10)")
	assert.True(t, strings.HasSuffix(report, textsFor(language.English).Emergency))
}

func TestFormatReportLocalization(t *testing.T) {
	assessment, advice := sampleAssessment()

	tr := formatReport(assessment, advice, "Ayse", language.Turkish)
	assert.Contains(t, tr, "Değerlendirme Raporu")
	assert.Contains(t, tr, "Aciliyet Seviyesi")

	// Unrecognized language codes fall back to English headers.
	de := formatReport(assessment, advice, "Ayse", "de")
	assert.Contains(t, de, "Assessment Report")
}

func TestSummaryContent(t *testing.T) {
	empty := summaryContent(nil, language.English)
	assert.Contains(t, empty, "No symptoms recorded yet")

	content := summaryContent([]string{"headache", "fever"}, language.English)
	assert.Contains(t, content, "1. **headache**")
	assert.Contains(t, content, "2. **fever**")
	assert.Contains(t, content, "**Total:** 2 symptom(s)")

	tr := summaryContent([]string{"baş ağrısı"}, language.Turkish)
	assert.Contains(t, tr, "Semptom Özeti")
	assert.Contains(t, tr, "**Toplam:** 1 symptom(s)")
}

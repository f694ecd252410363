package core

// texts.go holds the localized strings and keyword lists the router and
// formatter select from at runtime. English is the fallback for any
// unrecognized language code.

import (
	"doctor-assistant/internal/language"
	"doctor-assistant/pkg"
)

// clearKeywords reset a conversation when a message matches one exactly
// after trimming and lowercasing.
var clearKeywords = map[string]struct{}{
	"clear": {}, "temizle": {}, "sil": {}, "delete": {},
}

// assessmentTriggers fire the assessment branch on a case-insensitive
// substring match.
var assessmentTriggers = []string{
	"değerlendir", "analiz", "acil mi", "durumum ne", "rapor", "sonuç", "teşhis",
	"evaluate", "analyze", "is it urgent", "what is my situation", "assessment", "diagnose", "report", "result",
}

// urgencyEmoji marks the report's urgency line.
var urgencyEmoji = map[pkg.UrgencyLevel]string{
	pkg.UrgencyLow:       "🟢",
	pkg.UrgencyMedium:    "🟡",
	pkg.UrgencyHigh:      "🟠",
	pkg.UrgencyEmergency: "🔴",
}

// reportTexts are the section headers of the formatted assessment report.
type reportTexts struct {
	ReportTitle        string
	UrgencyLevel       string
	Score              string
	Assessment         string
	Recommendations    string
	DoctorConsultation string
	WarningSigns       string
	SelfCare           string
	Emergency          string
}

var reportTextsByLang = map[string]reportTexts{
	language.English: {
		ReportTitle:        "Assessment Report",
		UrgencyLevel:       "Urgency Level",
		Score:              "Score",
		Assessment:         "Assessment",
		Recommendations:    "Recommendations",
		DoctorConsultation: "Doctor Consultation",
		WarningSigns:       "Warning Signs",
		SelfCare:           "Self-Care Tips",
		Emergency:          "🚨 **EMERGENCY: Seek immediate medical attention!**",
	},
	language.Turkish: {
		ReportTitle:        "Değerlendirme Raporu",
		UrgencyLevel:       "Aciliyet Seviyesi",
		Score:              "Skor",
		Assessment:         "Değerlendirme",
		Recommendations:    "Öneriler",
		DoctorConsultation: "Doktor Görüşmesi",
		WarningSigns:       "Dikkat Edilmesi Gerekenler",
		SelfCare:           "Evde Yapabilecekleriniz",
		Emergency:          "🚨 **ACİL DURUM: En yakın sağlık kuruluşuna başvurun!**",
	},
}

// clearConfirmations acknowledge a clear request.
var clearConfirmations = map[string]string{
	language.English: "Symptoms cleared.",
	language.Turkish: "Semptomlar temizlendi.",
}

// summaryTexts label the symptom summary view.
type summaryTexts struct {
	Title string
	None  string
	Total string
}

var summaryTextsByLang = map[string]summaryTexts{
	language.English: {
		Title: "📋 Symptom Summary",
		None:  "No symptoms recorded yet",
		Total: "Total",
	},
	language.Turkish: {
		Title: "📋 Semptom Özeti",
		None:  "Henüz semptom kaydedilmedi",
		Total: "Toplam",
	},
}

func textsFor(lang string) reportTexts {
	if t, ok := reportTextsByLang[lang]; ok {
		return t
	}
	return reportTextsByLang[language.English]
}

func clearConfirmationFor(lang string) string {
	if msg, ok := clearConfirmations[lang]; ok {
		return msg
	}
	return clearConfirmations[language.English]
}

func summaryTextsFor(lang string) summaryTexts {
	if t, ok := summaryTextsByLang[lang]; ok {
		return t
	}
	return summaryTextsByLang[language.English]
}

func emojiFor(level pkg.UrgencyLevel) string {
	if e, ok := urgencyEmoji[level]; ok {
		return e
	}
	return "⚪"
}

package scam

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"scamcheck/backend/internal/scam/contract"
)

// scamThreshold is the score at or above which a message is flagged.
const scamThreshold = 30

type indicatorGroup int

const (
	groupLinks indicatorGroup = iota
	groupCrypto
	groupNumbers
	groupPressure
	groupFormatting
)

type indicator struct {
	name    string
	group   indicatorGroup
	pattern *regexp.Regexp
}

// Each rule flags one category of scam signal and contributes at most once to
// the score no matter how often it matches.
var indicators = []indicator{
	{"shortened link", groupLinks, regexp.MustCompile(`(?i)\b(bit\.ly|tinyurl\.com|goo\.gl|t\.co|ow\.ly|is\.gd|cutt\.ly|rb\.gy)\b`)},
	{"crypto vocabulary", groupCrypto, regexp.MustCompile(`(?i)\b(bitcoin|btc|ethereum|crypto(currency)?|forex|wallet address|binary option)\b`)},
	{"long digit sequence", groupNumbers, regexp.MustCompile(`\d{9,}`)},
	{"urgency or suspension threat", groupPressure, regexp.MustCompile(`(?i)(account (is |has been |will be )?(suspend|lock|clos|deactivat|restrict)|urgent|immediate action)`)},
	{"time pressure", groupPressure, regexp.MustCompile(`(?i)\b(act now|expires? (today|soon|tonight)|limited time|last chance|today only|within \d+ (hours?|minutes?)|hurry)\b`)},
	{"too good to be true", groupPressure, regexp.MustCompile(`(?i)\b(congratulations|you('ve| have)? won|winner|free (prize|gift|money|iphone)|claim your|lottery|jackpot|guaranteed (return|profit|income))\b`)},
	{"personal identifier request", groupNumbers, regexp.MustCompile(`(?i)\b(ssn|social security|date of birth|passport number|driver'?s licen[cs]e|national id)\b`)},
	{"credential request", groupNumbers, regexp.MustCompile(`(?i)\b(password|pin code|cvv|card number|bank account|routing number|security code|one.?time (code|password)|otp)\b`)},
	{"large money amount", groupNumbers, regexp.MustCompile(`(?i)([$€£]\s?\d{3,}|\b\d+([.,]\d+)? ?(million|thousand|[kK]) (dollars|euros|pounds)\b)`)},
	{"verification request", groupPressure, regexp.MustCompile(`(?i)\b(verify|confirm|validate|re-?activate|update) (your )?(account|identity|information|details|payment)\b`)},
	{"wire transfer service", groupPressure, regexp.MustCompile(`(?i)\b(western union|moneygram|wire transfer|zelle|cash ?app|venmo|paypal)\b`)},
	{"repeated punctuation", groupFormatting, regexp.MustCompile(`[!?]{2,}`)},
	{"capitalized word run", groupFormatting, regexp.MustCompile(`\b[A-Z]{2,}(?: +[A-Z]{2,})+\b`)},
	{"separated thousands", groupFormatting, regexp.MustCompile(`\b\d{1,3}(?:,\d{3})+\b`)},
}

type scoreBreakdown struct {
	matched     []indicator
	lengthScore float64
	urls        int
	capsScore   float64
	total       float64
}

func scoreText(text string) scoreBreakdown {
	var s scoreBreakdown
	for _, ind := range indicators {
		if ind.pattern.MatchString(text) {
			s.matched = append(s.matched, ind)
		}
	}

	runes := []rune(text)
	s.lengthScore = float64(len(runes)) / 20
	if s.lengthScore > 5 {
		s.lengthScore = 5
	}

	lower := strings.ToLower(text)
	s.urls = strings.Count(lower, "http://") + strings.Count(lower, "https://")

	// Uppercase share is computed against the full text length, so short
	// shouty fragments in a long message do not trip the caps penalty.
	upper := 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if len(runes) > 0 && float64(upper)/float64(len(runes)) > 0.3 {
		s.capsScore = 10
	}

	s.total = 10*float64(len(s.matched)) + s.lengthScore + 10*float64(s.urls) + s.capsScore
	return s
}

// Classify scores a message against the static rule set and returns a verdict.
// It is pure: no I/O, no shared state, identical input gives identical output.
func Classify(text string) *contract.AnalysisResult {
	s := scoreText(text)

	confidenceScore := s.total
	if confidenceScore > 100 {
		confidenceScore = 100
	}
	isScam := confidenceScore >= scamThreshold

	// Confidence always describes the verdict that was reached: the raw
	// score when flagged, its complement when the message is considered safe.
	confidence := confidenceScore
	if !isScam {
		confidence = 100 - confidenceScore
	}

	result := &contract.AnalysisResult{
		IsScam:      isScam,
		Confidence:  confidence,
		Explanation: buildExplanation(s, confidenceScore, isScam),
	}
	result.ClampConfidence()
	return result
}

func buildExplanation(s scoreBreakdown, confidenceScore float64, isScam bool) string {
	var b strings.Builder
	if isScam {
		fmt.Fprintf(&b, "Flagged %d scam indicator(s) with a score of %.1f.", len(s.matched), confidenceScore)
		groups := map[indicatorGroup]bool{}
		for _, ind := range s.matched {
			groups[ind.group] = true
		}
		var categories []string
		if groups[groupLinks] {
			categories = append(categories, "shortened or obfuscated links")
		}
		if groups[groupCrypto] {
			categories = append(categories, "cryptocurrency or investment terms")
		}
		if groups[groupNumbers] {
			categories = append(categories, "requests for sensitive numbers")
		}
		if groups[groupPressure] {
			categories = append(categories, "urgency and pressure tactics")
		}
		if groups[groupFormatting] {
			categories = append(categories, "suspicious formatting")
		}
		if len(categories) > 0 {
			b.WriteString(" Matched categories: " + strings.Join(categories, ", ") + ".")
		}
		if s.urls > 0 {
			fmt.Fprintf(&b, " The message contains %d direct link(s).", s.urls)
		}
		if s.capsScore > 0 {
			b.WriteString(" Heavy use of capital letters is a common pressure tactic.")
		}
	} else {
		fmt.Fprintf(&b, "Scam score %.1f is below the alert threshold.", confidenceScore)
		if len(s.matched) > 0 {
			b.WriteString(" Some concerning elements were found, but not enough to flag the message.")
		} else {
			b.WriteString(" No known scam indicators were detected.")
		}
	}
	b.WriteString(" This verdict comes from rule-based analysis, not an AI review.")
	return b.String()
}

package guardrail

import "regexp"

// Fast-path lexical tiers. The expensive model assessment only runs when none
// of these settle the verdict first.

var simpleGreetings = map[string]bool{
	"hello": true, "hi": true, "hey": true,
	"good morning": true, "good afternoon": true, "good evening": true,
	"thanks": true, "thank you": true,
	"yes": true, "no": true, "ok": true, "okay": true,
}

var highThreatPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(ignore\s+previous\s+instructions|forget\s+instructions)`),
	regexp.MustCompile(`(?i)(admin|root)\s+(password|token|key)`),
	regexp.MustCompile(`(?i)(sql\s+injection|xss\s+attack|exploit)`),
	regexp.MustCompile(`(?i)(hack|crack|bypass)\s+(system|security)`),
}

var homeworkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)solve\s+for\s+x\s*[:=]`),
	regexp.MustCompile(`(?i)calculate\s+\d+\s*[\+\-\*\/]\s*\d+`),
	regexp.MustCompile(`(?i)(homework|assignment)\s+(help|due)`),
	regexp.MustCompile(`(?i)what\s+is\s+\d+\s*[\+\-\*\/]\s*\d+\s*[\=\?]`),
}

var businessKeywords = []string{
	"website", "web", "app", "portfolio", "business", "service", "help",
	"ai", "automation", "development", "cybersecurity", "design",
	"company", "team", "project", "consultation", "quote", "price",
}

var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(api[_\s]?key|secret|token|password)`),
	regexp.MustCompile(`(?i)(internal|confidential|private)`),
	regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),                          // SSN
	regexp.MustCompile(`\b\d{4}[\s\-]?\d{4}[\s\-]?\d{4}[\s\-]?\d{4}\b`), // card number
}

var unprofessionalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(lol|omg|wtf|lmao)\b`),
	regexp.MustCompile(`(?i)\b(dude|bro)\b`),
	regexp.MustCompile(`(?i)hey\s+there\s+buddy`),
	regexp.MustCompile(`[!]{2,}`),
}

func anyMatch(patterns []*regexp.Regexp, text string) (string, bool) {
	for _, p := range patterns {
		if p.MatchString(text) {
			return p.String(), true
		}
	}
	return "", false
}

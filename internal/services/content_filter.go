package services

import (
	"fmt"
	"regexp"
	"sync"
)

var bannedWords = []string{
	"fuck", "fucking", "fucker", "shit", "shitty", "bullshit",
	"asshole", "bastard", "bitch",
	"spam", "scam", "scammer", "phishing", "malware",
}

// ContentFilter screens complaint text before it is stored: profanity,
// contact info, link drops and obvious spam are rejected at the boundary.
type ContentFilter struct {
	bannedWordRegexps   []*regexp.Regexp
	emailPattern        *regexp.Regexp
	phonePattern        *regexp.Regexp
	repeatedCharPattern *regexp.Regexp
	compiled            bool
	mu                  sync.RWMutex
}

func NewContentFilter() *ContentFilter {
	f := &ContentFilter{}
	f.compilePatterns()
	return f
}

func (f *ContentFilter) compilePatterns() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.compiled {
		return
	}

	f.bannedWordRegexps = make([]*regexp.Regexp, 0, len(bannedWords))
	for _, word := range bannedWords {
		pattern := `(?i)\b` + regexp.QuoteMeta(word) + `\b`
		re, err := regexp.Compile(pattern)
		if err == nil {
			f.bannedWordRegexps = append(f.bannedWordRegexps, re)
		}
	}

	f.emailPattern = regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	f.phonePattern = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}|\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`)
	f.repeatedCharPattern = regexp.MustCompile(`(?i)([a-z!?.])\1{5,}`)
	f.compiled = true
}

// Check returns whether the text is acceptable and, when it is not, a reason
// code.
func (f *ContentFilter) Check(text string) (bool, string) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if text == "" {
		return true, ""
	}
	for _, re := range f.bannedWordRegexps {
		if re.MatchString(text) {
			return false, "inappropriate_language"
		}
	}
	if f.emailPattern.MatchString(text) {
		return false, "contact_info_not_allowed"
	}
	if f.phonePattern.MatchString(text) {
		return false, "contact_info_not_allowed"
	}
	if f.repeatedCharPattern.MatchString(text) {
		return false, "spam_detected"
	}
	return true, ""
}

// Validate wraps Check into the service error taxonomy.
func (f *ContentFilter) Validate(text string) error {
	ok, reason := f.Check(text)
	if ok {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrValidation, f.RejectionMessage(reason))
}

func (f *ContentFilter) RejectionMessage(reason string) string {
	messages := map[string]string{
		"inappropriate_language":   "Your complaint contains inappropriate language.",
		"contact_info_not_allowed": "Please do not include contact information in the complaint text.",
		"spam_detected":            "Your complaint appears to be spam.",
	}
	if msg, ok := messages[reason]; ok {
		return msg
	}
	return "Your complaint does not meet the content guidelines."
}

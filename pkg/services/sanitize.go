package services

import (
	"regexp"
	"strings"
)

type substitution struct {
	re   *regexp.Regexp
	with string
}

// subtree removes every element whose opening tag matches open, together
// with everything up to its balanced closing tag.
type subtree struct {
	open *regexp.Regexp
	tag  string
}

var (
	scriptRules = []substitution{
		{regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`), ""},
		{regexp.MustCompile(`(?i)</?script\b[^>]*>`), ""},
	}

	embedContainer = subtree{regexp.MustCompile(`(?i)<div\b[^>]*\bid\s*=\s*["']mc_embed_signup["'][^>]*>`), "div"}
	subscribeForm  = subtree{regexp.MustCompile(`(?i)<form\b[^>]*\bid\s*=\s*["']mc-embedded-subscribe-form["'][^>]*>`), "form"}

	inputRules = []substitution{
		{regexp.MustCompile(`(?i)<input\b[^>]*\bid\s*=\s*["']mc-embedded-subscribe["'][^>]*>`), ""},
		{regexp.MustCompile(`(?i)<input\b[^>]*\bvalue\s*=\s*["']Subscribe["'][^>]*>`), ""},
		{regexp.MustCompile(`(?i)<input\b[^>]*\bname\s*=\s*["']b_[^"']*["'][^>]*>`), ""},
	}

	linkRules = []substitution{
		{regexp.MustCompile(`(?i)<link\b[^>]*mailchimp[^>]*>`), ""},
	}

	embedMarker = subtree{regexp.MustCompile(`(?i)<div\b[^>]*(?:\bdata-embed\b|\bclass\s*=\s*["'][^"']*\bembed\b)[^>]*>`), "div"}

	leftoverRules = []substitution{
		{regexp.MustCompile(`(?i)</?form\b[^>]*>`), ""},
		{regexp.MustCompile(`(?i)<div\b[^>]*>[^<]*(?:email address|e-posta adresi|e-mail adresi)[^<]*</div\s*>`), ""},
	}

	emptyRules = []substitution{
		{regexp.MustCompile(`(?i)<p\b[^>]*>(?:\s|&nbsp;|<br\s*/?>)*</p\s*>`), ""},
		{regexp.MustCompile(`(?i)<div\b[^>]*>\s*</div\s*>`), ""},
	}

	whitespaceRules = []substitution{
		{regexp.MustCompile(`\r\n?`), "\n"},
		{regexp.MustCompile(`[ \t]+`), " "},
		{regexp.MustCompile(`\n[ \t]*(?:\n[ \t]*)+`), "\n\n"},
	}

	tagRE = map[string]*regexp.Regexp{
		"div":  regexp.MustCompile(`(?i)<(/?)div\b[^>]*>`),
		"form": regexp.MustCompile(`(?i)<(/?)form\b[^>]*>`),
	}
)

// SanitizeContent strips third-party embed markup (newsletter widgets,
// scripts) from an article body and normalizes whitespace. The result is
// stable: sanitizing it again returns the same string. Removing a tag can
// join the text around it into a new tag, so passes repeat until nothing
// changes. Every rule either shortens the string or swaps a tab or carriage
// return for a space or newline, so the loop ends.
func SanitizeContent(content string) string {
	out := content
	for {
		next := sanitizePass(out)
		if next == out {
			return out
		}
		out = next
	}
}

// sanitizePass applies the rules in a fixed order: named widgets go before
// the generic form and div sweeps, whitespace is normalized last.
func sanitizePass(s string) string {
	s = apply(s, scriptRules)
	s = embedContainer.remove(s)
	s = subscribeForm.remove(s)
	s = apply(s, inputRules)
	s = apply(s, linkRules)
	s = embedMarker.remove(s)
	s = apply(s, leftoverRules)
	for {
		next := apply(s, emptyRules)
		if next == s {
			break
		}
		s = next
	}
	s = apply(s, whitespaceRules)
	return strings.TrimSpace(s)
}

func apply(s string, rules []substitution) string {
	for _, r := range rules {
		s = r.re.ReplaceAllString(s, r.with)
	}
	return s
}

func (st subtree) remove(s string) string {
	for {
		loc := st.open.FindStringIndex(s)
		if loc == nil {
			return s
		}
		end := closingTagEnd(s, loc[1], tagRE[st.tag])
		if end < 0 {
			// Unbalanced markup: drop just the opening tag.
			s = s[:loc[0]] + s[loc[1]:]
			continue
		}
		s = s[:loc[0]] + s[end:]
	}
}

// closingTagEnd returns the offset just past the tag that closes an
// element opened right before from, or -1.
func closingTagEnd(s string, from int, tags *regexp.Regexp) int {
	depth := 1
	for _, m := range tags.FindAllStringSubmatchIndex(s[from:], -1) {
		if m[3] > m[2] {
			depth--
		} else if !strings.HasSuffix(s[from+m[0]:from+m[1]], "/>") {
			depth++
		}
		if depth == 0 {
			return from + m[1]
		}
	}
	return -1
}

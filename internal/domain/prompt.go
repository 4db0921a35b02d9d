package domain

import "strings"

// DefaultPrompt is used when no prompt override is configured.
const DefaultPrompt = "Generate one bizarre, hilariously impractical life advice for today. " +
	"Make it weird, funny, and completely absurd. Keep it to 1-2 sentences. Keep it modern and relatable."

const extraVibeLabel = "Extra vibe: "

// ComposePrompt appends the trimmed extra text to base on its own line.
// Blank extra leaves base untouched.
func ComposePrompt(base, extra string) string {
	extra = strings.TrimSpace(extra)
	if extra == "" {
		return base
	}
	return base + "\n" + extraVibeLabel + extra
}

package format

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// ObfuscateEmails masks email addresses so notifications can be pasted
// into less trusted channels. The local part keeps its first three and
// last characters ("john.doe@example.com" becomes "joh...e@example.com");
// local parts of three characters or fewer are too short to mask usefully
// and are left alone. Domains stay intact.
func ObfuscateEmails(text string) string {
	return emailRe.ReplaceAllStringFunc(text, func(email string) string {
		local, domain, ok := strings.Cut(email, "@")
		if !ok || len(local) <= 3 {
			return email
		}
		return local[:3] + "..." + local[len(local)-1:] + "@" + domain
	})
}

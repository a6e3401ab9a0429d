package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/shandysiswandi/mailbite/internal/relay/entity"
)

const timestampLayout = "Monday, January 2, 2006 at 15:04:05 MST"

var htmlBodyTpl = template.Must(template.New("phrase_email").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px;">
  <h2 style="color: #333;">New Phrase Submission</h2>
  <div style="background: #f5f5f5; border-left: 4px solid #4a90d9; padding: 16px; margin: 16px 0;">
    <p style="font-size: 16px; white-space: pre-wrap;">{{.Phrase}}</p>
  </div>
  <table style="color: #666; font-size: 13px;">
    <tr><td style="padding-right: 8px;"><strong>Submitted at</strong></td><td>{{.Timestamp}}</td></tr>
    <tr><td style="padding-right: 8px;"><strong>IP address</strong></td><td>{{.IP}}</td></tr>
    <tr><td style="padding-right: 8px;"><strong>User agent</strong></td><td>{{.UserAgent}}</td></tr>
  </table>
</div>`))

// renderBodies produces the HTML and plain-text email bodies for a phrase
// submission. It is a pure function: the phrase is embedded verbatim (HTML
// escaping only, as the surrounding markup requires) and missing request
// attributes have already been replaced with a placeholder by the caller.
func renderBodies(phrase string, ts time.Time, meta entity.RequestMeta) (htmlBody, textBody string, err error) {
	stamp := ts.Format(timestampLayout)

	var buf bytes.Buffer
	if err := htmlBodyTpl.Execute(&buf, map[string]string{
		"Phrase":    phrase,
		"Timestamp": stamp,
		"IP":        meta.IP,
		"UserAgent": meta.UserAgent,
	}); err != nil {
		return "", "", err
	}

	text := fmt.Sprintf(
		"New Phrase Submission\n\n%s\n\nSubmitted at: %s\nIP address: %s\nUser agent: %s\n",
		phrase, stamp, meta.IP, meta.UserAgent,
	)

	return buf.String(), text, nil
}

package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// Button is a call to action rendered below the email body
type Button struct {
	URL   string
	Label string
}

type emailData struct {
	Subject string
	Lines   []string
	Button  *Button
}

var layout = template.Must(template.New("email").Parse(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Subject}}</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #f3f7f2; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
    .header { background-color: #2e7d32; padding: 32px 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 22px; }
    .content { padding: 32px 30px; color: #263238; line-height: 1.6; font-size: 15px; }
    .content a.button { display: inline-block; margin-top: 16px; padding: 12px 24px; background: #43a047; color: #fff; border-radius: 4px; text-decoration: none; }
    .footer { padding: 24px; text-align: center; color: #78909c; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>{{.Subject}}</h1></div>
    <div class="content">
      {{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}
      {{with .Button}}<p><a class="button" href="{{.URL}}">{{.Label}}</a></p>{{end}}
    </div>
    <div class="footer"><p>&copy; YouPower</p></div>
  </div>
</body>
</html>`))

// RenderEmail renders a YouPower email. body is plain text, escaped and
// split into lines. button may be nil.
func RenderEmail(subject, body string, button *Button) string {
	var buf bytes.Buffer
	data := emailData{Subject: subject, Lines: strings.Split(body, "\n"), Button: button}
	if err := layout.Execute(&buf, data); err != nil {
		// the layout is static, only a writer failure can end up here
		return template.HTMLEscapeString(body)
	}
	return buf.String()
}

// HouseholdInviteSubject is the subject line of household invitations
const HouseholdInviteSubject = "You have been invited to a household"

// RenderHouseholdInvite renders the plain text and HTML bodies of a
// household invitation. link is where the invitee accepts or declines.
func RenderHouseholdInvite(inviterName, householdAddress, link string) (string, string) {
	where := "their household"
	if householdAddress != "" {
		where = "the household at " + householdAddress
	}
	intro := fmt.Sprintf("%s has invited you to join %s on YouPower.", inviterName, where)
	text := fmt.Sprintf("%s\n\nOpen the link below to respond. The invitation expires in 7 days.\n%s", intro, link)
	html := RenderEmail(HouseholdInviteSubject, intro+"\nThe invitation expires in 7 days.", &Button{URL: link, Label: "Respond to invitation"})
	return text, html
}

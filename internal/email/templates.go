package email

import (
	"bytes"
	"fmt"
	"html/template"
)

type messageTemplate struct {
	Subject string
	Body    *template.Template
}

var templates = map[string]messageTemplate{
	"magic_link": {
		Subject: "Your secure sign-in link",
		Body: template.Must(template.New("magic_link").Parse(`
<p>Hi {{if .first_name}}{{.first_name}}{{else}}there{{end}},</p>
<p>Click the secure link below to sign in. This link will expire in {{.minutes}} minutes and can be used once.</p>
<p><a href="{{.url}}">Sign in now</a></p>
<p>If you didn't request this, you can ignore it.</p>
`)),
	},
	"otp_code": {
		Subject: "Your verification code",
		Body: template.Must(template.New("otp_code").Parse(`
<p>Hi {{if .first_name}}{{.first_name}}{{else}}there{{end}},</p>
<p>Your verification code is:</p>
<p style="font-size:22px;font-weight:700;letter-spacing:3px">{{.code}}</p>
<p>This code expires in {{.minutes}} minutes.</p>
<p>After entering the code, you will be signed in to {{if .host}}{{.host}}{{else}}the site{{end}}.</p>
`)),
	},
	"welcome": {
		Subject: "Welcome — Your access details",
		Body: template.Must(template.New("welcome").Parse(`
<p>Hi {{if .first_name}}{{.first_name}}{{else}}there{{end}},</p>
<p>Thanks for your purchase. Use the links below to get started:</p>
<ul>
  <li><a href="https://{{.book_domain}}">Open the Book</a></li>
  {{if .lab_domain}}<li><a href="https://{{.lab_domain}}">Open JupyterLab</a></li>{{end}}
  {{if .app_domain}}<li><a href="https://{{.app_domain}}">Open the App</a></li>{{end}}
</ul>
<p>If you need help, reply to this email.</p>
<p>— Team</p>
`)),
	},
	"abandoned_cart": {
		Subject: "You left something in your cart",
		Body: template.Must(template.New("abandoned_cart").Parse(`
<p>Hi {{if .first_name}}{{.first_name}}{{else}}there{{end}},</p>
<p>You started checking out {{.tier}} but didn&rsquo;t finish. Pick up where you left off:</p>
<p><a href="{{.resume_url}}">Resume checkout</a></p>
<p>Questions? Just reply.</p>
`)),
	},
}

// Render produces the subject and HTML body for a named template.
func Render(name string, vars Vars) (subject, body string, err error) {
	tmpl, ok := templates[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Body.Execute(&buf, map[string]interface{}(vars)); err != nil {
		return "", "", fmt.Errorf("render template %s: %w", name, err)
	}

	return tmpl.Subject, buf.String(), nil
}

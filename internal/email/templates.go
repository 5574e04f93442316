package email

import (
	"bytes"
	"html/template"
)

// Шаблоны компилируются один раз при загрузке пакета;
// битый шаблон должен валить приложение на старте, а не в рантайме.
var (
	otpTemplate = template.Must(template.New("otp").Parse(`
<h2>Confirm your email</h2>
<p>Your HiringBooth verification code:</p>
<p style="font-size:24px;letter-spacing:4px;"><b>{{.Code}}</b></p>
<p>The code expires in {{.TTLMinutes}} minutes. If you did not register, ignore this message.</p>
`))

	approvedTemplate = template.Must(template.New("approved").Parse(`
<h2>Your employer account is approved</h2>
<p>You can now post jobs on HiringBooth.</p>
`))

	rejectedTemplate = template.Must(template.New("rejected").Parse(`
<h2>Your employer account was not approved</h2>
{{if .Reason}}<p>Reason: {{.Reason}}</p>{{end}}
<p>You can update your company profile and contact support for a re-review.</p>
`))
)

func renderTemplate(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

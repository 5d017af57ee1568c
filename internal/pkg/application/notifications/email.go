package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/diwise/iot-landslide-monitor/pkg/types"
)

var emailTemplate = template.Must(template.New("alert").Funcs(template.FuncMap{
	"upper": strings.ToUpper,
	"ts": func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04:05 UTC")
	},
	"value": func(v *float64, unit string) string {
		if v == nil {
			return "-"
		}
		return strings.TrimSpace(fmt.Sprintf("%g %s", *v, unit))
	},
}).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Alert.Title}}</title></head>
<body style="font-family: sans-serif">
<h2 style="color: {{.Color}}">{{.Alert.Title}}</h2>
<p>{{.Alert.Message}}</p>
<table cellpadding="4">
<tr><th align="left">Severity</th><td>{{upper (print .Alert.Severity)}}</td></tr>
<tr><th align="left">Category</th><td>{{.Alert.Category}}</td></tr>
<tr><th align="left">Status</th><td>{{.Alert.Status}}</td></tr>
<tr><th align="left">Device</th><td>{{.Alert.DeviceName}} ({{.Alert.DeviceCode}})</td></tr>
{{- if .Alert.SensorCode}}
<tr><th align="left">Sensor</th><td>{{.Alert.SensorName}} ({{.Alert.SensorCode}}, {{.Alert.SensorType}})</td></tr>
{{- end}}
{{- if .Alert.ProvinceName}}
<tr><th align="left">Province</th><td>{{.Alert.ProvinceName}}</td></tr>
{{- end}}
<tr><th align="left">Triggered value</th><td>{{value .Alert.TriggeredValue .Alert.SensorUnit}}</td></tr>
<tr><th align="left">Created</th><td>{{ts .Alert.CreatedAt}}</td></tr>
<tr><th align="left">Updated</th><td>{{ts .Alert.UpdatedAt}}</td></tr>
</table>
{{- if .Evidence}}
<h3>Evidence</h3>
<pre>{{.Evidence}}</pre>
{{- end}}
</body>
</html>
`))

func subject(alert types.Alert) string {
	return "⚠️ " + alert.Title
}

func renderEmail(alert types.Alert) (string, error) {
	data := struct {
		Alert    types.Alert
		Color    string
		Evidence string
	}{
		Alert: alert,
		Color: severityColor(alert.Severity),
	}

	if len(alert.EvidenceData) > 0 {
		var buf bytes.Buffer
		if err := json.Indent(&buf, alert.EvidenceData, "", "  "); err == nil {
			data.Evidence = buf.String()
		} else {
			data.Evidence = string(alert.EvidenceData)
		}
	}

	var out bytes.Buffer
	if err := emailTemplate.Execute(&out, data); err != nil {
		return "", err
	}

	return out.String(), nil
}

func severityColor(s types.Severity) string {
	switch s {
	case types.SeverityCritical:
		return "#c0392b"
	case types.SeverityWarning:
		return "#e67e22"
	default:
		return "#2980b9"
	}
}

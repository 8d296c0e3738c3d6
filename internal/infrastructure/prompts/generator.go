// Package prompts renders the system prompt that teaches the model the
// ReAct wire format. The action list is generated from the executor's
// dispatch table so prompt and implementation cannot drift apart.
package prompts

import (
	"bytes"
	"strings"
	"text/template"

	"react-browser-agent/internal/application/port/output"
)

type systemPromptData struct {
	Actions []output.ActionInfo
}

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	"actionList": func(actions []output.ActionInfo) string {
		names := make([]string, 0, len(actions))
		for _, a := range actions {
			names = append(names, a.Name)
		}
		if len(names) > 1 {
			return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
		}
		return strings.Join(names, "")
	},
}

// GenerateSystemPrompt renders the embedded template for the given actions.
func GenerateSystemPrompt(actions []output.ActionInfo) (string, error) {
	tmpl, err := template.New("system").Funcs(funcs).Parse(systemTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, systemPromptData{Actions: actions}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

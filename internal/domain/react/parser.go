// Package react parses the line-oriented ReAct protocol the model speaks:
//
//	Thought: <reasoning>
//	Action: <action name>
//	Action Input: <JSON object, possibly spanning several lines>
//	Final Answer: <completion summary>
//
// The input is free-form model output, so parsing is best effort. Malformed
// input degrades to an empty-but-valid Directive, never an error.
package react

import (
	"encoding/json"
	"strings"

	"react-browser-agent/internal/domain/entity"
)

const (
	markerThought     = "Thought:"
	markerAction      = "Action:"
	markerActionInput = "Action Input:"
	markerFinalAnswer = "Final Answer:"
)

// Parse converts one block of model output into a Directive. A single
// top-to-bottom pass over the lines; the only lookahead is the bounded
// accumulation of a multi-line Action Input block.
func Parse(text string) entity.Directive {
	directive := entity.Directive{Params: map[string]any{}}

	lines := strings.Split(strings.TrimSpace(text), "\n")

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		switch {
		case strings.HasPrefix(line, markerThought):
			// A later Thought overwrites an earlier one; only the last
			// thought before the action survives.
			directive.Thought = strings.TrimSpace(strings.TrimPrefix(line, markerThought))

		case strings.HasPrefix(line, markerActionInput):
			fragment := strings.TrimSpace(strings.TrimPrefix(line, markerActionInput))
			i++
			for i < len(lines) && !startsNewSection(strings.TrimSpace(lines[i])) {
				fragment += "\n" + strings.TrimSpace(lines[i])
				i++
			}
			i-- // step back so the outer loop sees the marker line
			directive.Params = parseParams(fragment)

		case strings.HasPrefix(line, markerAction):
			directive.Action = entity.ActionName(strings.TrimSpace(strings.TrimPrefix(line, markerAction)))

		case strings.HasPrefix(line, markerFinalAnswer):
			directive.Action = entity.ActionFinish
			directive.Thought = strings.TrimSpace(strings.TrimPrefix(line, markerFinalAnswer))
			return directive
		}
	}

	return directive
}

func startsNewSection(line string) bool {
	return strings.HasPrefix(line, markerThought) ||
		strings.HasPrefix(line, markerAction) ||
		strings.HasPrefix(line, markerFinalAnswer)
}

// parseParams decodes the accumulated Action Input fragment. On strict JSON
// failure it retries with the substring between the first '{' and the last
// '}'; if that fails too the params stay empty.
func parseParams(fragment string) map[string]any {
	params := map[string]any{}

	if err := json.Unmarshal([]byte(fragment), &params); err == nil {
		return params
	}

	start := strings.Index(fragment, "{")
	end := strings.LastIndex(fragment, "}")
	if start >= 0 && end > start {
		recovered := map[string]any{}
		if err := json.Unmarshal([]byte(fragment[start:end+1]), &recovered); err == nil {
			return recovered
		}
	}

	return map[string]any{}
}

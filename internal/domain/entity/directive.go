package entity

type ActionName string

const (
	ActionNavigate   ActionName = "navigate"
	ActionClick      ActionName = "click"
	ActionType       ActionName = "type"
	ActionGetText    ActionName = "get_text"
	ActionScreenshot ActionName = "screenshot"

	// ActionFinish is the terminal sentinel set when the model emits
	// a "Final Answer:" line instead of another action.
	ActionFinish ActionName = "FINISH"
)

func (a ActionName) String() string {
	return string(a)
}

// Directive is the parsed intent of one model response: a reasoning note,
// an action (or the terminal sentinel, or empty when nothing actionable was
// found) and the raw action parameters. Parameters stay an opaque JSON
// mapping here; typed validation happens at the executor boundary.
type Directive struct {
	Thought string
	Action  ActionName
	Params  map[string]any
}

func (d Directive) IsFinish() bool {
	return d.Action == ActionFinish
}

func (d Directive) HasAction() bool {
	return d.Action != "" && d.Action != ActionFinish
}

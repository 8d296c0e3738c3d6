package entity

import (
	"encoding/json"
	"fmt"
)

// ActionOutcome is the structured result of one executed browser action.
// Exactly one of Result/Error is populated, except for trivial successes.
type ActionOutcome struct {
	Success bool   `json:"success"`
	Result  string `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

func OutcomeSuccess(result string) ActionOutcome {
	return ActionOutcome{Success: true, Result: result}
}

func OutcomeFailure(err error) ActionOutcome {
	return ActionOutcome{Success: false, Error: err.Error()}
}

func OutcomeFailuref(format string, args ...any) ActionOutcome {
	return ActionOutcome{Success: false, Error: fmt.Sprintf(format, args...)}
}

// Observation serializes the outcome the way it is fed back to the model.
func (o ActionOutcome) Observation() string {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Sprintf(`Observation: {"success":false,"error":%q}`, err.Error())
	}
	return "Observation: " + string(data)
}

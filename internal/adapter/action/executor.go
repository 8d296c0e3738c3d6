// Package action maps parsed directives onto concrete browser operations.
// Parameters arrive as the opaque JSON mapping the parser produced; each
// action decodes them into its own typed struct and validates required
// fields before the browser is touched.
package action

import (
	"context"
	"encoding/json"
	"fmt"

	"react-browser-agent/internal/application/port/output"
	"react-browser-agent/internal/domain/entity"
)

const defaultScreenshotPath = "screenshot.png"

var _ output.ActionExecutorPort = (*Executor)(nil)

type Executor struct {
	browser output.BrowserPort
	logger  output.LoggerPort
}

func NewExecutor(browser output.BrowserPort, logger output.LoggerPort) *Executor {
	return &Executor{browser: browser, logger: logger}
}

type navigateParams struct {
	URL string `json:"url"`
}

type clickParams struct {
	Selector string `json:"selector"`
}

type typeParams struct {
	Selector string `json:"selector"`
	Text     string `json:"text"`
}

type getTextParams struct {
	Selector string `json:"selector"`
}

type screenshotParams struct {
	Path string `json:"path"`
}

// Execute runs one action and converts every failure into an outcome.
// It never panics and never returns an error to the caller; the model is
// the one that has to react to failures.
func (e *Executor) Execute(ctx context.Context, action entity.ActionName, params map[string]any) entity.ActionOutcome {
	e.logger.Info("Executing action", "action", action.String(), "params", params)

	outcome := e.dispatch(ctx, action, params)

	if outcome.Success {
		e.logger.Debug("Action completed", "action", action.String(), "resultLen", len(outcome.Result))
	} else {
		e.logger.Warn("Action failed", "action", action.String(), "error", outcome.Error)
	}

	return outcome
}

func (e *Executor) dispatch(ctx context.Context, action entity.ActionName, params map[string]any) entity.ActionOutcome {
	switch action {
	case entity.ActionNavigate:
		var p navigateParams
		if err := decodeParams(params, &p); err != nil {
			return entity.OutcomeFailure(err)
		}
		if p.URL == "" {
			return entity.OutcomeFailuref("navigate: missing required parameter 'url'")
		}
		if err := e.browser.Navigate(ctx, p.URL); err != nil {
			return entity.OutcomeFailure(err)
		}
		return entity.OutcomeSuccess(fmt.Sprintf("Navigated to %s", p.URL))

	case entity.ActionClick:
		var p clickParams
		if err := decodeParams(params, &p); err != nil {
			return entity.OutcomeFailure(err)
		}
		if p.Selector == "" {
			return entity.OutcomeFailuref("click: missing required parameter 'selector'")
		}
		if err := e.browser.Click(ctx, p.Selector); err != nil {
			return entity.OutcomeFailure(err)
		}
		return entity.OutcomeSuccess(fmt.Sprintf("Clicked on %s", p.Selector))

	case entity.ActionType:
		var p typeParams
		if err := decodeParams(params, &p); err != nil {
			return entity.OutcomeFailure(err)
		}
		if p.Selector == "" {
			return entity.OutcomeFailuref("type: missing required parameter 'selector'")
		}
		if err := e.browser.Type(ctx, p.Selector, p.Text); err != nil {
			return entity.OutcomeFailure(err)
		}
		return entity.OutcomeSuccess(fmt.Sprintf("Typed '%s' into %s", p.Text, p.Selector))

	case entity.ActionGetText:
		var p getTextParams
		if err := decodeParams(params, &p); err != nil {
			return entity.OutcomeFailure(err)
		}
		if p.Selector == "" {
			return entity.OutcomeFailuref("get_text: missing required parameter 'selector'")
		}
		text, err := e.browser.GetText(ctx, p.Selector)
		if err != nil {
			return entity.OutcomeFailure(err)
		}
		return entity.OutcomeSuccess(text)

	case entity.ActionScreenshot:
		var p screenshotParams
		if err := decodeParams(params, &p); err != nil {
			return entity.OutcomeFailure(err)
		}
		if p.Path == "" {
			p.Path = defaultScreenshotPath
		}
		if err := e.browser.Screenshot(ctx, p.Path); err != nil {
			return entity.OutcomeFailure(err)
		}
		return entity.OutcomeSuccess(fmt.Sprintf("Screenshot saved to %s", p.Path))

	default:
		return entity.OutcomeFailuref("Unknown action: %s", action)
	}
}

// Actions lists the supported actions for system prompt generation.
func (e *Executor) Actions() []output.ActionInfo {
	return []output.ActionInfo{
		{
			Name:         entity.ActionNavigate.String(),
			Description:  "Navigate to a URL",
			InputExample: `{"url": "https://example.com"}`,
		},
		{
			Name:         entity.ActionClick.String(),
			Description:  "Click on an element",
			InputExample: `{"selector": "button#submit"}`,
		},
		{
			Name:         entity.ActionType.String(),
			Description:  "Type text into an element",
			InputExample: `{"selector": "input#search", "text": "search query"}`,
		},
		{
			Name:         entity.ActionGetText.String(),
			Description:  "Get text from an element",
			InputExample: `{"selector": "h1"}`,
		},
		{
			Name:         entity.ActionScreenshot.String(),
			Description:  "Take a screenshot",
			InputExample: `{"path": "screenshot.png"}`,
		},
	}
}

// decodeParams round-trips the parser's generic mapping through JSON into
// the action's typed parameter struct. Unknown keys are ignored; type
// mismatches surface as a failed outcome.
func decodeParams(params map[string]any, dst any) error {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}

// Package eventfilter decides which webhook events are processed using CEL expressions.
package eventfilter

import (
	"errors"
	"fmt"

	"github.com/DIMO-Network/line-blog-webhook/internal/lineevent"
	"github.com/google/cel-go/cel"
	celtypes "github.com/google/cel-go/common/types"
)

// DefaultExpression accepts text message events only.
const DefaultExpression = `eventType == "message" && messageType == "text"`

func newEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("eventType", cel.StringType),
		cel.Variable("messageType", cel.StringType),
		cel.Variable("text", cel.StringType),
		cel.Variable("sourceType", cel.StringType),
	)
}

// Prepare compiles expr and checks that it yields a bool. An empty expr uses DefaultExpression.
func Prepare(expr string) (cel.Program, error) {
	if expr == "" {
		expr = DefaultExpression
	}
	env, err := newEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("output type is not bool: %s", ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to program CEL expression: %w", err)
	}
	return prg, nil
}

// Matches evaluates prg against event.
func Matches(prg cel.Program, event *lineevent.Event) (bool, error) {
	if event == nil {
		return false, errors.New("event is nil")
	}
	vars := map[string]any{
		"eventType":   event.Type,
		"messageType": event.MessageType(),
		"text":        event.Text(),
		"sourceType":  event.SourceType(),
	}
	out, _, err := prg.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate CEL filter: %w", err)
	}
	return out == celtypes.True, nil
}

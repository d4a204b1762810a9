package rest

import (
	"fmt"
	"net/http"

	calc "github.com/Sams101/calculator-app"
	"github.com/Sams101/calculator-app/display"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// EvaluateParams contains all the bound parameters for the /evaluate
// endpoint.
type EvaluateParams struct {
	Expression string `form:"expression" json:"expression" binding:"required"`

	// Preview marks a live-preview call, e.g. issued on every keystroke.
	// Failures are still reported, but the result is never written to the
	// history log.
	Preview bool `form:"preview" json:"preview,omitempty"`
}

// EvaluateResult is the /evaluate response.
type EvaluateResult struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
	Display    string  `json:"display"`
}

// DoEvaluate handles the /evaluate endpoint: computes an expression and,
// unless previewing, records it in the history log.
func (server *Server) DoEvaluate(ctx *gin.Context) {
	defer RecoverFromPanic(ctx)

	params := EvaluateParams{}
	b := binding.Default(ctx.Request.Method, ctx.ContentType())
	if err := ctx.ShouldBindWith(&params, b); err != nil {
		panic(NewError(http.StatusBadRequest, err.Error()).
			WithDetails("failed to parse request parameters"))
	}

	if max := server.Config.MaxExpressionLength; max > 0 && len(params.Expression) > max {
		panic(NewError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("expression longer than %d characters", max)))
	}

	expression := display.Normalize(params.Expression)
	result, err := calc.Evaluate(expression)
	if err != nil {
		panic(NewError(http.StatusBadRequest, err.Error()).
			WithKind(errorKind(err)).
			WithDetails("failed to evaluate expression"))
	}

	if !params.Preview {
		// History is best-effort: the result is still valid without it.
		if err := server.history.Add(expression, result); err != nil {
			log.WithError(err).Warnf("failed to record history entry")
		}
	}

	ctx.IndentedJSON(http.StatusOK, EvaluateResult{
		Expression: expression,
		Result:     result,
		Display:    display.Format(result),
	})
}

// errorKind names an evaluator failure for API clients.
func errorKind(err error) string {
	switch err.(type) {
	case *calc.NumberError:
		return "invalid-number"
	case *calc.OverflowError:
		return "number-too-large"
	case *calc.CharError:
		return "unexpected-character"
	case *calc.ParenError:
		return "mismatched-parentheses"
	case *calc.ExprError:
		return "invalid-expression"
	case *calc.DivZeroError:
		return "division-by-zero"
	case *calc.NotFiniteError:
		return "result-not-finite"
	}
	return "internal"
}

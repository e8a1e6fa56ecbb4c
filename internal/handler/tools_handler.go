package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"airquote/internal/btu"
	"airquote/internal/calc"
)

// ToolsHandler handles the sizing estimator and keypad calculator endpoints.
type ToolsHandler struct{}

// NewToolsHandler creates a new ToolsHandler.
func NewToolsHandler() *ToolsHandler {
	return &ToolsHandler{}
}

// EstimateCapacity handles POST /api/v1/tools/capacity
func (h *ToolsHandler) EstimateCapacity(c *gin.Context) {
	var input btu.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	RespondOK(c, btu.Estimate(input))
}

// Calculate handles POST /api/v1/tools/calculate. The request replays a
// keypad sequence; the response is the final display. This keeps the keypad
// semantics in one place instead of re-implementing them per client.
func (h *ToolsHandler) Calculate(c *gin.Context) {
	var body struct {
		Keys []string `json:"keys" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	machine := calc.New()
	for _, key := range body.Keys {
		switch key {
		case "=":
			machine.Equals()
		case "C":
			machine.Clear()
		case ".":
			machine.Decimal()
		case string(calc.OpAdd), string(calc.OpSubtract), string(calc.OpMultiply), string(calc.OpDivide):
			machine.Operation(calc.Op(key))
		default:
			if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
				machine.Digit(key[0])
				continue
			}
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "unrecognized key: "+key)
			return
		}
	}
	RespondOK(c, gin.H{"display": machine.Display()})
}

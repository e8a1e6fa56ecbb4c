// Package calc implements the quick four-function calculator that sits
// beside the quotation editor. It is a small keypad state machine: a display
// string, a pending operand, a pending operator, and a flag marking whether
// the next digit starts a fresh number.
package calc

import (
	"math"
	"strconv"
	"strings"
)

// Op is a pending arithmetic operator.
type Op string

const (
	OpAdd      Op = "+"
	OpSubtract Op = "-"
	OpMultiply Op = "×"
	OpDivide   Op = "÷"
)

// ValidOps guards operator input from the keypad API.
var ValidOps = map[Op]bool{
	OpAdd:      true,
	OpSubtract: true,
	OpMultiply: true,
	OpDivide:   true,
}

// Calculator holds keypad state. The zero value is not ready; use New.
type Calculator struct {
	display   string
	prevValue string
	operation Op
	hasPrev   bool
	newNumber bool
}

// New returns a cleared calculator showing "0".
func New() *Calculator {
	c := &Calculator{}
	c.Clear()
	return c
}

// Display returns the current readout.
func (c *Calculator) Display() string {
	return c.display
}

// Digit appends a digit key (0-9). Starting a fresh number replaces the
// display; otherwise digits append, except that a lone "0" is replaced
// rather than extended.
func (c *Calculator) Digit(d byte) {
	if d < '0' || d > '9' {
		return
	}
	if c.newNumber {
		c.display = string(d)
		c.newNumber = false
		return
	}
	if c.display == "0" {
		c.display = string(d)
		return
	}
	c.display += string(d)
}

// Decimal appends the decimal point, at most once per number.
func (c *Calculator) Decimal() {
	if strings.Contains(c.display, ".") {
		return
	}
	c.display += "."
	c.newNumber = false
}

// Operation stages op. If an operator is already pending with a stored
// operand, the pending work is evaluated first, so chains like 2+3+4
// accumulate left to right.
func (c *Calculator) Operation(op Op) {
	if !ValidOps[op] {
		return
	}
	if !c.hasPrev {
		c.prevValue = c.display
		c.hasPrev = true
	} else if c.operation != "" {
		result := c.evaluate()
		c.display = result
		c.prevValue = result
	}
	c.operation = op
	c.newNumber = true
}

// Equals evaluates the pending operation. Without one it is a no-op.
func (c *Calculator) Equals() {
	if c.operation == "" || !c.hasPrev {
		return
	}
	c.display = c.evaluate()
	c.prevValue = ""
	c.hasPrev = false
	c.operation = ""
	c.newNumber = true
}

// Clear resets the keypad to its initial state.
func (c *Calculator) Clear() {
	c.display = "0"
	c.prevValue = ""
	c.hasPrev = false
	c.operation = ""
	c.newNumber = true
}

func (c *Calculator) evaluate() string {
	prev := parseOperand(c.prevValue)
	current := parseOperand(c.display)
	var result float64
	switch c.operation {
	case OpAdd:
		result = prev + current
	case OpSubtract:
		result = prev - current
	case OpMultiply:
		result = prev * current
	case OpDivide:
		result = prev / current
	}
	return formatResult(result)
}

func parseOperand(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func formatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

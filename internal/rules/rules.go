package rules

import "fmt"

// Rule represents a lowering diagnostic code.
type Rule int

const (
	ruleInvalid Rule = iota

	JSL000UnsupportedStatement
	JSL001SyntaxError
	JSL010UnsupportedExpression
	JSL020UnsupportedDeclaration
	JSL030MultiValueAssignment
	JSL040UnsupportedLoop
)

// String returns the canonical code and short name of the rule.
func (r Rule) String() string {
	switch r {
	case JSL000UnsupportedStatement:
		return "JSL000: UnsupportedStatement"
	case JSL001SyntaxError:
		return "JSL001: SyntaxError"
	case JSL010UnsupportedExpression:
		return "JSL010: UnsupportedExpression"
	case JSL020UnsupportedDeclaration:
		return "JSL020: UnsupportedDeclaration"
	case JSL030MultiValueAssignment:
		return "JSL030: MultiValueAssignment"
	case JSL040UnsupportedLoop:
		return "JSL040: UnsupportedLoop"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case JSL000UnsupportedStatement:
		return "Statement has no JS counterpart and was dropped."
	case JSL001SyntaxError:
		return "Source cannot be parsed."
	case JSL010UnsupportedExpression:
		return "Expression has no JS counterpart and was replaced with undefined."
	case JSL020UnsupportedDeclaration:
		return "Only variable declarations are lowered inside functions."
	case JSL030MultiValueAssignment:
		return "Assignments from multi-value calls are not lowered."
	case JSL040UnsupportedLoop:
		return "Only three-clause, conditional and infinite for loops are lowered."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

func UnsupportedStatement() Rule   { return JSL000UnsupportedStatement }
func SyntaxError() Rule            { return JSL001SyntaxError }
func UnsupportedExpression() Rule  { return JSL010UnsupportedExpression }
func UnsupportedDeclaration() Rule { return JSL020UnsupportedDeclaration }
func MultiValueAssignment() Rule   { return JSL030MultiValueAssignment }
func UnsupportedLoop() Rule        { return JSL040UnsupportedLoop }

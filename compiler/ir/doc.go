/*
Package ir is the instruction node of the optimizing compiler.

Where instructions come from

	operators.yaml, formats.yaml ->
		irkit gen ->
	op.Operator table, format views ->
		Create / Mutate ->
	ir.Instr ->
		passes (through op trait predicates and format views)

An Instr is untyped: it holds an operator and a list of operand slots.
Operators tell which format applies, formats name the slots.
*/
package ir

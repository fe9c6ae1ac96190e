// Package fc converts the textual function-call expressions emitted by
// language models into a strongly typed, ordered, serializable value
// model.
//
// # Pipeline
//
// Input text is tokenized and parsed (fc/lexer, fc/parser) into a concrete
// syntax tree with a bail-on-first-error strategy. The tree is then walked
// top to bottom: every function-call construct contributes one ToolCall,
// whose argument object is converted leaf-first into the closed value
// model (string, number, boolean, null, object, array). The first failure
// anywhere wins; the sole non-fatal anomaly is a duplicate object key,
// which is dropped with a diagnostic while the first occurrence is kept.
//
// # Grammar
//
// Informal EBNF:
//
//	Start   → Call (","? Call)* EOF
//	Call    → ident Args? | Args
//	Args    → "(" Pairs? ")"
//	Pairs   → Pair ("," Pair)*
//	Pair    → (ident | string) ":" Value
//	Value   → string | number | boolean | null | Object | Array
//	Object  → "{" Pairs? "}"
//	Array   → "[" (Value ("," Value)*)? "]"
//
// String literals are double-quoted, or wrapped in the fixed "<escape>"
// sentinel for long-form text; the sentinel is stripped from the literal's
// boundaries during conversion, never from its interior.
//
// # Example
//
//	calls, err := fc.ParseString(ctx,
//		`get_weather(location: "Boston", units: "metric")`)
//	if err != nil {
//		// syntax or conversion failure; no partial result
//	}
//	data, err := fc.Serialize(calls)
//
// # Concurrency
//
// A conversion is synchronous, single-threaded, and owns everything it
// allocates; no state survives the call, so concurrent invocations need
// no coordination.
package fc

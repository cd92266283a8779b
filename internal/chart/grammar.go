package chart

// Grammar returns the Lark grammar for chord charts
//
//	chord(symbol="Cmin7", tick=0)
//	rhythm(grid="x-b_", step=240)
//	rhythm(name="bossa")
//	end(tick=3840)
func Grammar() string {
	return `
// Chord chart DSL - chord symbols placed at absolute ticks
// SYNTAX:
//   chord(symbol="Cmin7", tick=0); chord(symbol="F7", tick=1920); end(tick=3840)
//   rhythm(grid="x-n-b_n-", step=240)
//   rhythm(name="bossa", entire=1)
//
// GRID NOTATION (each char = 1 step):
//   "x" = whole chord, "b" = bass only, "n" = without bass, "-" = rest, "_" = hold

// ---------- Start rule ----------
start: statement (";" statement)*

statement: chord_call
         | rhythm_call
         | end_call

// ---------- Chord ----------
chord_call: "chord" "(" chord_named_params ")"

chord_named_params: chord_named_param ("," SP chord_named_param)*
chord_named_param: "symbol" "=" STRING
                 | "tick" "=" NUMBER

// ---------- Rhythm ----------
rhythm_call: "rhythm" "(" rhythm_named_params ")"

rhythm_named_params: rhythm_named_param ("," SP rhythm_named_param)*
rhythm_named_param: "grid" "=" STRING
                  | "name" "=" STRING
                  | "step" "=" NUMBER
                  | "entire" "=" NUMBER

// ---------- Score end ----------
end_call: "end" "(" "tick" "=" NUMBER ")"

// ---------- Terminals ----------
SP: " "+
STRING: /"[^"]*"/
NUMBER: /-?\d+(\.\d+)?/
`
}

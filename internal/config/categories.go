package config

// CategoryWeights orders command categories in help output, lowest first.
var CategoryWeights = map[string]int{
	"🤖 Monday":      0,
	"🎭 Persona":     10,
	"🕯️ Information": 20,
}

// Package scramble builds random scramble sequences in face-turn notation.
package scramble

import (
	"math/rand"
	"strings"
	"time"
)

var (
	faces = []string{"R", "L", "U", "D", "F", "B"}
	turns = []string{"", "'", "2"}
)

// Generator produces randomized scramble lines.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Generate returns a scramble of count moves. The same face never appears
// twice in a row; a repeated face would collapse into a single turn.
func (g *Generator) Generate(count int) string {
	if count <= 0 {
		return ""
	}
	moves := make([]string, 0, count)
	prev := -1
	for i := 0; i < count; i++ {
		face := g.rnd.Intn(len(faces))
		for face == prev {
			face = g.rnd.Intn(len(faces))
		}
		prev = face
		moves = append(moves, faces[face]+turns[g.rnd.Intn(len(turns))])
	}
	return strings.Join(moves, " ")
}

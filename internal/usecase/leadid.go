package usecase

import (
	"fmt"
	"math/rand"
	"time"
)

const leadIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateLeadID produces LEAD-<epoch-millis>-<9 uppercase base36 chars>.
// The timestamp gives rough chronological sortability; the random suffix
// makes same-millisecond collisions astronomically unlikely. Uniqueness is
// not checked here: the unique constraint on lead_id is the backstop.
func GenerateLeadID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = leadIDAlphabet[rand.Intn(len(leadIDAlphabet))]
	}
	return fmt.Sprintf("LEAD-%d-%s", time.Now().UnixMilli(), suffix)
}

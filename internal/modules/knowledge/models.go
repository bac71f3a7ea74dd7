// Package knowledge stores the latest learning result per concept.
//
// The "knowledge graph" is a flat last-write-wins table: at most one record
// per concept string at any time. Records live only for the lifetime of the
// process (in-memory database) and are cleared by an explicit reset.
package knowledge

import (
	"github.com/swordenkisk/quantum-matrix/internal/modules/quantum"
)

// Record is the stored result of one learning cycle for a concept.
// MasteryLevel is the entropy-derived score as a 0-100 percentage;
// LearningScore is the same score as a 0-1 fraction.
type Record struct {
	Concept       string         `json:"concept"`
	MasteryLevel  float64        `json:"mastery_level"`
	LearningScore float64        `json:"learning_score"`
	Counts        quantum.Counts `json:"counts"`
}

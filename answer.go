package advent

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Answer is one solved part of a puzzle, as stored in the history table.
type Answer struct {
	ID          uint
	Puzzle      string `gorm:"index:idx_answer_lookup"`
	Day         uint
	Part        uint   `gorm:"index:idx_answer_lookup"`
	InputDigest string `gorm:"index:idx_answer_lookup;size:64"`
	Value       int64
	Duration    time.Duration
	CreatedAt   time.Time
}

func NewAnswer(p *Puzzle, part uint, value int64, digest string, elapsed time.Duration) *Answer {
	return &Answer{
		Puzzle:      p.Name,
		Day:         p.Day,
		Part:        part,
		InputDigest: digest,
		Value:       value,
		Duration:    elapsed,
	}
}

func InputDigest(input []byte) string {
	sum := sha256.Sum256(input)
	return hex.EncodeToString(sum[:])
}

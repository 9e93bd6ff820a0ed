package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/cpu"
)

// GenerateUniqueHash returns a random hex identifier for component metadata.
func GenerateUniqueHash() string {
	currentTime := time.Now().UnixNano()
	randomBytes := make([]byte, 16)
	if _, err := rand.Read(randomBytes); err != nil {
		panic("random number generator failed")
	}

	hashInput := append([]byte(fmt.Sprintf("%d", currentTime)), randomBytes...)
	hash := sha256.Sum256(hashInput)
	return hex.EncodeToString(hash[:])
}

// DefaultWorkers sizes a CPU-bound worker pool: the physical core count,
// capped by GOMAXPROCS. Falls back to GOMAXPROCS when the core count is unknown.
func DefaultWorkers() int {
	procs := runtime.GOMAXPROCS(0)
	cores, err := cpu.Counts(false)
	if err != nil || cores < 1 {
		return max(procs, 1)
	}
	return max(min(cores, procs), 1)
}

// CeilDiv returns ⌈a/b⌉ for positive b.
func CeilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

package logic

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
)

func sol(amount float64) uint64 {
	return uint64(amount * float64(solana.LAMPORTS_PER_SOL))
}

func TestFundingPercentage(t *testing.T) {
	cases := []struct {
		name     string
		balance  uint64
		goal     float64
		expected float64
	}{
		{"zero balance", 0, 10, 0},
		{"half funded", sol(5), 10, 50},
		{"exactly funded", sol(10), 10, 100},
		{"over funded is capped", sol(25), 10, 100},
		{"small goal", sol(1), 0.5, 100},
		{"non-positive goal", sol(1), 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, FundingPercentage(tc.balance, tc.goal), 1e-9)
		})
	}
}

func TestLamportsToSol(t *testing.T) {
	assert.Equal(t, 0.0, LamportsToSol(0))
	assert.Equal(t, 1.0, LamportsToSol(uint64(solana.LAMPORTS_PER_SOL)))
	assert.InDelta(t, 2.5, LamportsToSol(sol(2.5)), 1e-9)
}

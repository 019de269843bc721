package logic

import "github.com/gagliardetto/solana-go"

// LamportsToSol lamports转换为SOL
func LamportsToSol(lamports uint64) float64 {
	return float64(lamports) / float64(solana.LAMPORTS_PER_SOL)
}

// FundingPercentage 计算募资进度百分比，封顶100。
// 余额为0时返回0；目标金额非正时返回0（入库前已校验为正，这里只是兜底）。
func FundingPercentage(balanceLamports uint64, goalSol float64) float64 {
	if goalSol <= 0 {
		return 0
	}
	percentage := LamportsToSol(balanceLamports) / goalSol * 100
	if percentage > 100 {
		return 100
	}
	return percentage
}

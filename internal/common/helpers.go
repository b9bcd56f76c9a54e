package common

import (
	"math/big"
	"strings"
)

const (
	SOLDecimals = 9  // SOL has 9 decimals (lamports)
	ETHDecimals = 18 // ETH has 18 decimals (wei)
)

// LamportsToSOL converts lamports to SOL string without float precision loss
func LamportsToSOL(lamports uint64) string {
	return formatWithDecimals(new(big.Int).SetUint64(lamports).String(), SOLDecimals)
}

// WeiToETH converts wei to ETH string without float precision loss.
// Balances can exceed uint64, so the value is a big.Int.
func WeiToETH(wei *big.Int) string {
	if wei == nil {
		wei = new(big.Int)
	}
	if wei.Sign() < 0 {
		return "-" + formatWithDecimals(new(big.Int).Neg(wei).String(), ETHDecimals)
	}
	return formatWithDecimals(wei.String(), ETHDecimals)
}

// formatWithDecimals converts an integer digit string to a decimal string by inserting a decimal point
// Example: formatWithDecimals("24981836", 9) = "0.024981836"
func formatWithDecimals(digits string, decimals int) string {
	// Pad with leading zeros if needed
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}

	// Insert decimal point
	pos := len(digits) - decimals
	return digits[:pos] + "." + digits[pos:]
}

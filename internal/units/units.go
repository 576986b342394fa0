// Package units formats NEAR token and gas amounts the way the new CLI expects
// them on its command line.
package units

import "strconv"

// GasPerTgas is the number of gas units in one Tgas.
const GasPerTgas uint64 = 1_000_000_000_000

// TgasFromGas converts raw gas to whole Tgas, truncating any remainder.
func TgasFromGas(gas uint64) uint64 {
	return gas / GasPerTgas
}

// FormatTgas renders gas as a "<n> Tgas" argument.
func FormatTgas(gas uint64) string {
	return strconv.FormatUint(TgasFromGas(gas), 10) + " Tgas"
}

// FormatNear renders a NEAR amount as a "<amount> NEAR" argument. The amount
// text is passed through untouched.
func FormatNear(amount string) string {
	return amount + " NEAR"
}

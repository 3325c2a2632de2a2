package fritztools

import (
	"fmt"
	"math"
)

// Unit selects the label family used by FormatAmount and FormatRate.
type Unit int

const (
	// Bytes renders byte-oriented labels: B, KB, MB, GB, TB, PB.
	Bytes Unit = iota
	// Bits renders bit-oriented labels: Bit, KBit, MBit, GBit, TBit, PBit.
	Bits
)

var magnitudes = [...]string{"B", "KB", "MB", "GB", "TB"}

// overflowMagnitude labels values scaled beyond the magnitude table.
const overflowMagnitude = "PB"

// ScaleMagnitude converts a raw byte or bit count into a value scaled by
// powers of 1000 and the matching magnitude label, i.e.
//
//	ScaleMagnitude(242981246)
//
// returns (242.981246, "MB"). Negative values are treated as their absolute
// value, values below 1 collapse to (0, "B"). Scaling is decimal (base-1000),
// not binary (base-1024), following the convention of vendor documentation.
// Once the scaled value passes the table ("TB"), the label stays "PB" and the
// returned value may be 1000 or larger.
func ScaleMagnitude(value int64) (float64, string) {
	v := math.Abs(float64(value))
	if v < 1 {
		return 0, magnitudes[0]
	}
	k := 0
	for v >= 1000 && k < len(magnitudes) {
		v /= 1000
		k++
	}
	if k >= len(magnitudes) {
		return v, overflowMagnitude
	}
	return v, magnitudes[k]
}

// FormatAmount returns a human-readable string for a byte count with one
// decimal digit, i.e. "243.0 MB". For counts of bits, pass Bits to get
// bit-oriented labels instead: "243.0 MBit".
func FormatAmount(value int64, unit Unit) string {
	amount, magnitude := ScaleMagnitude(value)
	if unit == Bits {
		magnitude += "it"
	}
	return fmt.Sprintf("%.1f %s", amount, magnitude)
}

// FormatRate returns a human-readable string for a byte or bit count per
// second, i.e. "1.0 KB/s".
func FormatRate(value int64, unit Unit) string {
	return FormatAmount(value, unit) + "/s"
}

// FormatDecibel returns a human-readable string for a decibel value reported
// in tenths of a dB, as routers do: FormatDecibel(125) is "12.5 dB".
func FormatDecibel(value float64) string {
	return fmt.Sprintf("%.1f dB", value/10)
}

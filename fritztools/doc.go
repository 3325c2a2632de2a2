// Package fritztools provides helper utilities for working with router
// action responses: human-readable unit formatting and the Namespace
// adapter for vendor-style argument names.
//
// # Features
//
//   - Base-1000 magnitude scaling for byte and bit counts (B/KB/MB/GB/TB/PB)
//   - One-decimal formatting for amounts, transfer rates and decibel values
//   - Namespace: a map-backed view over action responses with automatic
//     MixedCase to snake_case key normalization
//   - Explicit key mappings for extracting a named subset of a response
//   - Typed accessors converting the loosely typed values a response carries
//
// # Example Usage
//
// Formatting raw counters:
//
//	fritztools.FormatAmount(242981246, fritztools.Bytes) // "243.0 MB"
//	fritztools.FormatRate(8_200_000, fritztools.Bits)    // "8.2 MBit/s"
//	fritztools.FormatDecibel(125)                        // "12.5 dB"
//
// Wrapping an action response:
//
//	result, err := conn.CallAction("DeviceInfo1", "GetInfo")
//	if err != nil {
//		return err
//	}
//	info := fritztools.NewNamespace(result)
//	name, err := info.String("model_name") // from "NewModelName"
//
// Extracting a named subset with an explicit mapping:
//
//	info := fritztools.NewNamespace(result, fritztools.WithMapping(map[string]string{
//		"modelname":     "NewModelName",
//		"serial_number": "NewSerialNumber",
//	}))
package fritztools

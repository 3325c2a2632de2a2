// Package wifiqr renders the credentials of a WLAN network as a WIFI QR
// code, the payload syntax phone cameras understand for joining a
// network. It is a separate capability on top of fritzwlan, so the facade
// itself stays free of image rendering.
package wifiqr

import (
	"strings"

	"github.com/skip2/go-qrcode"
	"github.com/valyala/fasttemplate"

	"github.com/tbeier/fritzkit/fritzwlan"
)

const (
	// WPASecurity and NoPass are the two security markers of the WIFI
	// payload syntax.
	WPASecurity = "WPA"
	NoPass      = "nopass"

	// DefaultScale is the width of one QR module in pixels when the
	// caller passes no usable scale.
	DefaultScale = 4
)

const (
	payloadTmplSecurity = "security"
	payloadTmplSSID     = "ssid"
	payloadTmplPassword = "password"
)

var payloadEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	`:`, `\:`,
	`"`, `\"`,
)

// Payload builds the WIFI payload string, as in
// "WIFI:T:WPA;S:HomeNet;P:secret;;". The T: field is omitted for an
// empty security marker, P: for an empty password, and "H:true;" is
// appended for hidden networks. Backslashes, semicolons, commas, colons
// and double quotes in the substituted values are escaped.
func Payload(ssid, password, security string, hidden bool) string {
	template := "WIFI:"
	if security != "" {
		template += "T:{{security}};"
	}
	template += "S:{{ssid}};"
	if password != "" {
		template += "P:{{password}};"
	}
	if hidden {
		template += "H:true;"
	}
	template += ";"

	t := fasttemplate.New(template, "{{", "}}")
	return t.ExecuteString(map[string]interface{}{
		payloadTmplSecurity: payloadEscaper.Replace(security),
		payloadTmplSSID:     payloadEscaper.Replace(ssid),
		payloadTmplPassword: payloadEscaper.Replace(password),
	})
}

// Code renders the WIFI QR code of one WLAN network.
type Code struct {
	wlan *fritzwlan.WLAN
}

// New returns a Code for the given network.
func New(wlan *fritzwlan.WLAN) *Code {
	return &Code{wlan: wlan}
}

// Security returns the security marker for the payload. A non-empty
// override is returned as-is. Otherwise the beacon types the router can
// use, minus "None" and "OWETrans", form the WPA-capable set: an active
// beacon type inside that set yields WPASecurity, anything else NoPass.
func (c *Code) Security(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	info, err := c.wlan.Info()
	if err != nil {
		return "", err
	}

	active, _ := info["NewBeaconType"].(string)
	possible, _ := info["NewX_AVM-DE_PossibleBeaconTypes"].(string)

	for _, beacontype := range strings.Split(possible, ",") {
		if beacontype == "None" || beacontype == "OWETrans" {
			continue
		}
		if beacontype == active {
			return WPASecurity, nil
		}
	}
	return NoPass, nil
}

// Payload builds the WIFI payload of the network, reading SSID and
// passphrase from the router. An empty security marker is detected via
// Security.
func (c *Code) Payload(security string, hidden bool) (string, error) {
	security, err := c.Security(security)
	if err != nil {
		return "", err
	}

	ssid, err := c.wlan.SSID()
	if err != nil {
		return "", err
	}

	password, err := c.wlan.Password()
	if err != nil {
		return "", err
	}

	return Payload(ssid, password, security, hidden), nil
}

// PNG renders the QR code as a PNG image with medium error correction.
// scale is the width of one QR module in pixels, values of 0 or less fall
// back to DefaultScale.
func (c *Code) PNG(security string, hidden bool, scale int) ([]byte, error) {
	payload, err := c.Payload(security, hidden)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(payload, qrcode.Medium, -moduleScale(scale))
}

// WriteFile renders the QR code like PNG and writes it to path.
func (c *Code) WriteFile(path, security string, hidden bool, scale int) error {
	payload, err := c.Payload(security, hidden)
	if err != nil {
		return err
	}
	return qrcode.WriteFile(payload, qrcode.Medium, -moduleScale(scale), path)
}

// go-qrcode reads a negative size as pixels per module.
func moduleScale(scale int) int {
	if scale <= 0 {
		return DefaultScale
	}
	return scale
}

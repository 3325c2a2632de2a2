// Package fritzwlan is a facade over the WLANConfiguration services of
// FRITZ!Box routers.
//
// # Features
//
//   - Read and change SSID, channel, beacon type and enabled state
//   - List associated devices with IP, MAC, signal strength and speed
//   - Read the WLAN passphrase and set or generate new credentials
//   - Guest network discovery via NewGuest
//
// # Example Usage
//
// A WLAN operates through any tr064.Caller, so it serves real connections
// and the scripted routers of package tr064test alike:
//
//	router, err := tr064test.NewFromScript("fritzbox.example.toml")
//	if err != nil {
//		log.Fatalf("Failed to load script: %v", err)
//	}
//
//	wlan := fritzwlan.New(router, 1)
//	ssid, err := wlan.SSID()
//	if err != nil {
//		log.Fatalf("Failed to read SSID: %v", err)
//	}
//	log.Infof("Network %s", ssid)
//
//	hosts, err := wlan.HostsInfo()
//	if err != nil {
//		log.Fatalf("Failed to list hosts: %v", err)
//	}
//	for _, host := range hosts {
//		log.Infof("%s %s", host.MAC, fritztools.FormatRate(int64(host.Speed)*1_000_000, fritztools.Bits))
//	}
package fritzwlan

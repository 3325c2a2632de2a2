package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/tbeier/fritzkit/fritztools"
	"github.com/tbeier/fritzkit/fritzwlan"
	"github.com/tbeier/fritzkit/log"
	"github.com/tbeier/fritzkit/tr064/tr064test"
	"github.com/tbeier/fritzkit/wifiqr"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

type options struct {
	scriptPath string
	service    int
	guest      bool
	qrPath     string
	qrScale    int
	hidden     bool
	verbose    bool
}

func main() {
	var opts options

	flag.StringVar(&opts.scriptPath, "script", "fritzbox.example.toml", "Path to the router script file")
	flag.IntVar(&opts.service, "service", 1, "WLANConfiguration instance to inspect")
	flag.BoolVar(&opts.guest, "guest", false, "Inspect the guest network instead of -service")
	flag.StringVar(&opts.qrPath, "qr", "", "Write a WIFI QR code PNG to this path")
	flag.IntVar(&opts.qrScale, "scale", wifiqr.DefaultScale, "QR module size in pixels")
	flag.BoolVar(&opts.hidden, "hidden", false, "Mark the network as hidden in the QR payload")
	flag.BoolVar(&opts.verbose, "v", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "WLAN overview for a scripted FRITZ!Box\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if opts.verbose {
		log.SetVerbose(true)
	}

	router, err := tr064test.NewFromScript(opts.scriptPath)
	if err != nil {
		log.Fatalf("Failed to load router script: %v", err)
	}

	wlan := fritzwlan.New(router, opts.service)
	if opts.guest {
		if wlan, err = fritzwlan.NewGuest(router); err != nil {
			log.Fatalf("Failed to find the guest network: %v", err)
		}
	}

	if err := printReport(router, wlan, opts); err != nil {
		log.Fatalf("Failed to query the router: %v", err)
	}
}

func printReport(router *tr064test.Router, wlan *fritzwlan.WLAN, opts options) error {
	ssid, err := wlan.SSID()
	if err != nil {
		return err
	}
	enabled, err := wlan.IsEnabled()
	if err != nil {
		return err
	}
	beacontype, err := wlan.BeaconType()
	if err != nil {
		return err
	}
	channel, err := wlan.Channel()
	if err != nil {
		return err
	}
	alternatives, err := wlan.AlternativeChannels()
	if err != nil {
		return err
	}

	code := wifiqr.New(wlan)
	security, err := code.Security("")
	if err != nil {
		return err
	}

	hostNumber, err := wlan.HostNumber()
	if err != nil {
		return err
	}
	totalHostNumber, err := wlan.TotalHostNumber()
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s%d)\n", router.Model(), fritzwlan.ServiceType, wlan.Service())
	fmt.Printf("  SSID:      %s\n", ssid)
	fmt.Printf("  State:     %s\n", upDown(enabled))
	fmt.Printf("  Security:  %s (beacon type %s)\n", security, beacontype)
	fmt.Printf("  Channel:   %d (alternatives: %s)\n", channel, alternatives)
	fmt.Printf("  Hosts:     %d associated, %d on all networks\n", hostNumber, totalHostNumber)

	if hostNumber > 0 {
		if err := printHosts(wlan); err != nil {
			return err
		}
	}

	if opts.qrPath != "" {
		payload, err := code.Payload("", opts.hidden)
		if err != nil {
			return err
		}
		if err := code.WriteFile(opts.qrPath, "", opts.hidden, opts.qrScale); err != nil {
			return err
		}

		fmt.Printf("\nQR payload: %s\n", payload)
		log.Infof("QR code written to %s", opts.qrPath)
	}

	return nil
}

func printHosts(wlan *fritzwlan.WLAN) error {
	hosts, err := wlan.HostsInfo()
	if err != nil {
		return err
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  MAC\tIP\tSTATE\tSIGNAL\tSPEED")
	for _, host := range hosts {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%d\t%s\n",
			host.MAC, host.IP, upDown(host.Status), host.Signal,
			fritztools.FormatRate(int64(host.Speed)*1_000_000, fritztools.Bits))
	}
	return w.Flush()
}

func upDown(enabled bool) string {
	if enabled {
		return "up"
	}
	return "down"
}

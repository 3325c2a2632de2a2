package fritzwlan

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/tbeier/fritzkit/fritzerr"
	"github.com/tbeier/fritzkit/fritztools"
	"github.com/tbeier/fritzkit/log"
	"github.com/tbeier/fritzkit/tr064"
)

const (
	// ServiceType is the TR-064 service family all methods address. The
	// per-call service name carries the instance number, as in
	// "WLANConfiguration1".
	ServiceType = "WLANConfiguration"

	// DefaultPasswordLength is the length of generated passwords when
	// SetPassword is called without one.
	DefaultPasswordLength = 12

	passwordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789@#"
)

// WLAN drives one WLANConfiguration service instance of a router.
type WLAN struct {
	conn    tr064.Caller
	service int
}

// New returns a WLAN bound to the given service instance. Instance
// numbers start at 1; typically 1 is the 2.4 GHz network, 2 the 5 GHz
// network and the last instance the guest network. Values below 1 are
// treated as 1.
func New(conn tr064.Caller, service int) *WLAN {
	if service < 1 {
		service = 1
	}
	return &WLAN{conn: conn, service: service}
}

// NewGuest returns a WLAN bound to the guest network, the highest
// contiguous WLANConfiguration instance the router offers. A router
// without any WLANConfiguration service yields an error carrying
// fritzerr.ErrCodeService.
func NewGuest(conn tr064.Connection) (*WLAN, error) {
	available := make(map[string]bool)
	for _, service := range conn.Services() {
		available[service] = true
	}

	last := 0
	for available[fmt.Sprintf("%s%d", ServiceType, last+1)] {
		last++
	}
	if last == 0 {
		return nil, fritzerr.NewServiceError("no WLANConfiguration service available", nil)
	}

	log.Debugf("Guest network probe selected %s%d", ServiceType, last)

	return &WLAN{conn: conn, service: last}, nil
}

// Service returns the bound service instance number.
func (w *WLAN) Service() int {
	return w.service
}

func (w *WLAN) serviceName() string {
	return fmt.Sprintf("%s%d", ServiceType, w.service)
}

func (w *WLAN) callAction(action string, args ...tr064.Arg) (map[string]any, error) {
	return w.conn.CallAction(w.serviceName(), action, args...)
}

func (w *WLAN) callNamespace(action string, args ...tr064.Arg) (*fritztools.Namespace, error) {
	response, err := w.callAction(action, args...)
	if err != nil {
		return nil, err
	}
	return fritztools.NewNamespace(response), nil
}

// HostNumber returns the number of devices associated with this network.
func (w *WLAN) HostNumber() (int, error) {
	ns, err := w.callNamespace("GetTotalAssociations")
	if err != nil {
		return 0, err
	}
	return ns.Int("total_associations")
}

// TotalHostNumber returns the summed host number over all
// WLANConfiguration instances of the router, regardless of the instance
// this WLAN is bound to.
func (w *WLAN) TotalHostNumber() (int, error) {
	total := 0
	for service := 1; ; service++ {
		n, err := New(w.conn, service).HostNumber()
		if err != nil {
			if fritzerr.IsCode(err, fritzerr.ErrCodeService) {
				break
			}
			return 0, err
		}
		total += n
	}
	return total, nil
}

// SSID returns the network name.
func (w *WLAN) SSID() (string, error) {
	ns, err := w.callNamespace("GetSSID")
	if err != nil {
		return "", err
	}
	return ns.String("ssid")
}

// SetSSID sets the network name.
func (w *WLAN) SetSSID(ssid string) error {
	_, err := w.callAction("SetSSID", tr064.Arg{Name: "NewSSID", Value: ssid})
	return err
}

// BeaconType returns the beacon type currently in use.
func (w *WLAN) BeaconType() (string, error) {
	ns, err := w.callNamespace("GetInfo")
	if err != nil {
		return "", err
	}
	return ns.String("beacon_type")
}

// ChannelInfo returns the raw GetChannelInfo response carrying the
// current channel and the channels the radio can use.
func (w *WLAN) ChannelInfo() (map[string]any, error) {
	return w.callAction("GetChannelInfo")
}

// Channel returns the channel currently in use.
func (w *WLAN) Channel() (int, error) {
	ns, err := w.callNamespace("GetChannelInfo")
	if err != nil {
		return 0, err
	}
	return ns.Int("channel")
}

// AlternativeChannels returns the channels the radio can use, as the
// comma-separated list reported by the router.
func (w *WLAN) AlternativeChannels() (string, error) {
	ns, err := w.callNamespace("GetChannelInfo")
	if err != nil {
		return "", err
	}
	return ns.String("possible_channels")
}

// SetChannel sets the channel.
func (w *WLAN) SetChannel(channel int) error {
	_, err := w.callAction("SetChannel", tr064.Arg{Name: "NewChannel", Value: channel})
	return err
}

// Info returns the raw GetInfo response.
func (w *WLAN) Info() (map[string]any, error) {
	return w.callAction("GetInfo")
}

// IsEnabled reports whether the network is up.
func (w *WLAN) IsEnabled() (bool, error) {
	ns, err := w.callNamespace("GetInfo")
	if err != nil {
		return false, err
	}
	return ns.Bool("enable")
}

// Enable switches the network on.
func (w *WLAN) Enable() error {
	return w.setEnable(true)
}

// Disable switches the network off.
func (w *WLAN) Disable() error {
	return w.setEnable(false)
}

func (w *WLAN) setEnable(status bool) error {
	_, err := w.callAction("SetEnable", tr064.Arg{Name: "NewEnable", Value: status})
	return err
}

// GenericHostEntry returns the association entry at the given zero-based
// index.
func (w *WLAN) GenericHostEntry(index int) (map[string]any, error) {
	return w.callAction("GetGenericAssociatedDeviceInfo",
		tr064.Arg{Name: "NewAssociatedDeviceIndex", Value: index})
}

// SpecificHostEntry returns the association entry of the device with the
// given MAC address.
func (w *WLAN) SpecificHostEntry(mac string) (map[string]any, error) {
	return w.callAction("GetSpecificAssociatedDeviceInfo",
		tr064.Arg{Name: "NewAssociatedDeviceMACAddress", Value: mac})
}

// HostInfo describes one device associated with a WLAN service. Signal is
// the signal strength the router reports, Speed the transmission rate in
// Mbit/s.
type HostInfo struct {
	Service int
	Index   int
	Status  bool
	MAC     string
	IP      string
	Signal  int
	Speed   int
}

// HostsInfo returns one HostInfo per associated device, querying entries
// until the router reports the end of the association array.
func (w *WLAN) HostsInfo() ([]HostInfo, error) {
	hosts := make([]HostInfo, 0)
	for index := 0; ; index++ {
		entry, err := w.GenericHostEntry(index)
		if err != nil {
			if fritzerr.IsCode(err, fritzerr.ErrCodeArrayIndex) {
				break
			}
			return nil, err
		}

		ns := fritztools.NewNamespace(entry)
		status, _ := ns.Bool("associated_device_auth_state")
		mac, _ := ns.String("associated_device_mac_address")
		ip, _ := ns.String("associated_device_ip_address")

		// The vendor extension keys keep their raw names.
		hosts = append(hosts, HostInfo{
			Service: w.service,
			Index:   index,
			Status:  status,
			MAC:     mac,
			IP:      ip,
			Signal:  toInt(entry["NewX_AVM-DE_SignalStrength"]),
			Speed:   toInt(entry["NewX_AVM-DE_Speed"]),
		})
	}
	return hosts, nil
}

// Password returns the current WLAN passphrase.
func (w *WLAN) Password() (string, error) {
	ns, err := w.callNamespace("GetSecurityKeys")
	if err != nil {
		return "", err
	}
	return ns.String("key_passphrase")
}

// SetPassword sets the WLAN passphrase. An empty password is replaced by
// a generated one of the given length, or of DefaultPasswordLength when
// length is not positive. The pre-shared key is always renewed with a
// fresh key built from the character set and length the router reports.
// All randomness comes from crypto/rand.
func (w *WLAN) SetPassword(password string, length int) error {
	presharedKey, err := w.newPresharedKey()
	if err != nil {
		return err
	}

	if password == "" {
		if length <= 0 {
			length = DefaultPasswordLength
		}
		password, err = randomString(passwordChars, length)
		if err != nil {
			return err
		}
		log.Infof("Generated a new WLAN password of length %d", length)
	}

	_, err = w.callAction("SetSecurityKeys",
		tr064.Arg{Name: "NewKeyPassphrase", Value: password},
		tr064.Arg{Name: "NewPreSharedKey", Value: presharedKey},
		tr064.Arg{Name: "NewWEPKey0", Value: ""},
		tr064.Arg{Name: "NewWEPKey1", Value: ""},
		tr064.Arg{Name: "NewWEPKey2", Value: ""},
		tr064.Arg{Name: "NewWEPKey3", Value: ""})
	return err
}

func (w *WLAN) newPresharedKey() (string, error) {
	ns, err := w.callNamespace("GetInfo")
	if err != nil {
		return "", err
	}

	chars, err := ns.String("allowed_chars_psk")
	if err != nil {
		return "", err
	}
	length, err := ns.Int("max_chars_psk")
	if err != nil {
		return "", err
	}

	key, err := randomString(chars, length)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(key), nil
}

func randomString(chars string, length int) (string, error) {
	limit := big.NewInt(int64(len(chars)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b[i] = chars[n.Int64()]
	}
	return string(b), nil
}

func toInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	default:
		return 0
	}
}

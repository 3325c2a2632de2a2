package tr064test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tbeier/fritzkit/fritzerr"
	"github.com/tbeier/fritzkit/log"
	"github.com/tbeier/fritzkit/tr064"
)

func tr064Arg(name string, value any) tr064.Arg {
	return tr064.Arg{Name: name, Value: value}
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	scriptFile := filepath.Join(t.TempDir(), "router.toml")
	if err := os.WriteFile(scriptFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write script file: %v", err)
	}
	return scriptFile
}

func TestLoadScript(t *testing.T) {
	scriptFile := writeScript(t, `
[device]
model   = "FRITZ!Box 7590"
version = "154.07.29"

[services."WLANConfiguration1".actions.GetSSID]
NewSSID = "HomeNet"
`)

	script, err := LoadScript(scriptFile)
	if err != nil {
		t.Fatalf("LoadScript() failed: %v", err)
	}

	if script.Device.Model != "FRITZ!Box 7590" {
		t.Errorf("Device.Model = %q, want FRITZ!Box 7590", script.Device.Model)
	}
	if script.Device.Version != "154.07.29" {
		t.Errorf("Device.Version = %q, want 154.07.29", script.Device.Version)
	}

	service, ok := script.Services["WLANConfiguration1"]
	if !ok {
		t.Fatalf("Services = %v, want WLANConfiguration1", script.Services)
	}
	if service.Actions["GetSSID"]["NewSSID"] != "HomeNet" {
		t.Errorf("GetSSID response = %v, want NewSSID-HomeNet", service.Actions["GetSSID"])
	}
}

func TestLoadScript_MissingFile(t *testing.T) {
	_, err := LoadScript(filepath.Join(t.TempDir(), "missing.toml"))
	if !fritzerr.IsCode(err, fritzerr.ErrCodeResource) {
		t.Errorf("LoadScript() error = %v, want RESOURCE_ERROR", err)
	}
}

func TestLoadScript_InvalidTOML(t *testing.T) {
	log.DisableLogs()
	defer log.Reset()

	_, err := LoadScript(writeScript(t, "[device\nmodel = 1"))
	if !fritzerr.IsCode(err, fritzerr.ErrCodeResource) {
		t.Errorf("LoadScript() error = %v, want RESOURCE_ERROR", err)
	}
}

func TestScriptRouter_StaticActions(t *testing.T) {
	router, err := NewFromScript(writeScript(t, `
[services."WLANConfiguration1".actions.GetChannelInfo]
NewChannel = 6
NewPossibleChannels = "1,2,3,4,5,6"
`))
	if err != nil {
		t.Fatalf("NewFromScript() failed: %v", err)
	}

	response, err := router.CallAction("WLANConfiguration1", "GetChannelInfo")
	if err != nil {
		t.Fatalf("CallAction() failed: %v", err)
	}

	// TOML integers decode as int64.
	if response["NewChannel"] != int64(6) {
		t.Errorf("NewChannel = %v (%T), want 6", response["NewChannel"], response["NewChannel"])
	}
	if response["NewPossibleChannels"] != "1,2,3,4,5,6" {
		t.Errorf("NewPossibleChannels = %v, want 1,2,3,4,5,6", response["NewPossibleChannels"])
	}
}

const twoHostScript = `
[[services."WLANConfiguration1".hosts]]
mac        = "C6:11:EA:A8:26:31"
ip         = "192.168.178.20"
auth_state = true
signal     = 54
speed      = 144

[[services."WLANConfiguration1".hosts]]
mac        = "32:F1:55:7B:C9:8D"
ip         = "192.168.178.21"
auth_state = false
signal     = 47
speed      = 72
`

func TestScriptRouter_SynthesizedHostActions(t *testing.T) {
	router, err := NewFromScript(writeScript(t, twoHostScript))
	if err != nil {
		t.Fatalf("NewFromScript() failed: %v", err)
	}

	response, err := router.CallAction("WLANConfiguration1", "GetTotalAssociations")
	if err != nil {
		t.Fatalf("GetTotalAssociations failed: %v", err)
	}
	if response["NewTotalAssociations"] != 2 {
		t.Errorf("NewTotalAssociations = %v, want 2", response["NewTotalAssociations"])
	}

	response, err = router.CallAction("WLANConfiguration1", "GetGenericAssociatedDeviceInfo",
		tr064Arg("NewAssociatedDeviceIndex", 1))
	if err != nil {
		t.Fatalf("GetGenericAssociatedDeviceInfo failed: %v", err)
	}
	want := map[string]any{
		"NewAssociatedDeviceMACAddress": "32:F1:55:7B:C9:8D",
		"NewAssociatedDeviceIPAddress":  "192.168.178.21",
		"NewAssociatedDeviceAuthState":  false,
		"NewX_AVM-DE_SignalStrength":    47,
		"NewX_AVM-DE_Speed":             72,
	}
	if !reflect.DeepEqual(response, want) {
		t.Errorf("GetGenericAssociatedDeviceInfo = %v, want %v", response, want)
	}

	response, err = router.CallAction("WLANConfiguration1", "GetSpecificAssociatedDeviceInfo",
		tr064Arg("NewAssociatedDeviceMACAddress", "C6:11:EA:A8:26:31"))
	if err != nil {
		t.Fatalf("GetSpecificAssociatedDeviceInfo failed: %v", err)
	}
	if response["NewAssociatedDeviceIPAddress"] != "192.168.178.20" {
		t.Errorf("NewAssociatedDeviceIPAddress = %v, want 192.168.178.20", response["NewAssociatedDeviceIPAddress"])
	}
}

func TestScriptRouter_HostActionErrors(t *testing.T) {
	router, err := NewFromScript(writeScript(t, twoHostScript))
	if err != nil {
		t.Fatalf("NewFromScript() failed: %v", err)
	}

	_, err = router.CallAction("WLANConfiguration1", "GetGenericAssociatedDeviceInfo",
		tr064Arg("NewAssociatedDeviceIndex", 2))
	if !fritzerr.IsCode(err, fritzerr.ErrCodeArrayIndex) {
		t.Errorf("Index beyond range: error = %v, want ARRAY_INDEX_ERROR", err)
	}

	_, err = router.CallAction("WLANConfiguration1", "GetGenericAssociatedDeviceInfo")
	if !fritzerr.IsCode(err, fritzerr.ErrCodeArgument) {
		t.Errorf("Missing index argument: error = %v, want ARGUMENT_ERROR", err)
	}

	_, err = router.CallAction("WLANConfiguration1", "GetSpecificAssociatedDeviceInfo",
		tr064Arg("NewAssociatedDeviceMACAddress", "00:00:00:00:00:00"))
	if !fritzerr.IsCode(err, fritzerr.ErrCodeArgument) {
		t.Errorf("Unknown MAC: error = %v, want ARGUMENT_ERROR", err)
	}
}

func TestScriptRouter_ExplicitActionWins(t *testing.T) {
	router, err := NewFromScript(writeScript(t, twoHostScript+`
[services."WLANConfiguration1".actions.GetTotalAssociations]
NewTotalAssociations = 99
`))
	if err != nil {
		t.Fatalf("NewFromScript() failed: %v", err)
	}

	response, err := router.CallAction("WLANConfiguration1", "GetTotalAssociations")
	if err != nil {
		t.Fatalf("GetTotalAssociations failed: %v", err)
	}
	if response["NewTotalAssociations"] != int64(99) {
		t.Errorf("NewTotalAssociations = %v, want the scripted 99", response["NewTotalAssociations"])
	}
}

func TestExampleScript(t *testing.T) {
	router, err := NewFromScript("../../fritzbox.example.toml")
	if err != nil {
		t.Fatalf("NewFromScript() failed: %v", err)
	}

	if router.Model() != "FRITZ!Box 7590" {
		t.Errorf("Model() = %q, want FRITZ!Box 7590", router.Model())
	}

	want := []string{"WLANConfiguration1", "WLANConfiguration2", "WLANConfiguration3"}
	if got := router.Services(); !reflect.DeepEqual(got, want) {
		t.Errorf("Services() = %v, want %v", got, want)
	}

	response, err := router.CallAction("WLANConfiguration1", "GetSSID")
	if err != nil {
		t.Fatalf("GetSSID failed: %v", err)
	}
	if response["NewSSID"] != "HomeNet" {
		t.Errorf("NewSSID = %v, want HomeNet", response["NewSSID"])
	}

	response, err = router.CallAction("WLANConfiguration1", "GetTotalAssociations")
	if err != nil {
		t.Fatalf("GetTotalAssociations failed: %v", err)
	}
	if response["NewTotalAssociations"] != 2 {
		t.Errorf("NewTotalAssociations = %v, want 2 hosts", response["NewTotalAssociations"])
	}
}

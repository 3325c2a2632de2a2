package tr064test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/tbeier/fritzkit/fritzerr"
	"github.com/tbeier/fritzkit/log"
)

// Script is the on-disk description of a fake router.
type Script struct {
	Device   DeviceInfo               `toml:"device"`
	Services map[string]ScriptService `toml:"services"`
}

// DeviceInfo identifies the scripted device.
type DeviceInfo struct {
	Model   string `toml:"model"`
	Version string `toml:"version"`
}

// ScriptService holds the scripted actions and the associated hosts of one
// service.
type ScriptService struct {
	Actions map[string]map[string]any `toml:"actions"`
	Hosts   []ScriptHost              `toml:"hosts"`
}

// ScriptHost is one associated device of a WLAN service.
type ScriptHost struct {
	MAC       string `toml:"mac"`
	IP        string `toml:"ip"`
	AuthState bool   `toml:"auth_state"`
	Signal    int    `toml:"signal"`
	Speed     int    `toml:"speed"`
}

// LoadScript reads a router script from a TOML file. Errors carry
// fritzerr.ErrCodeResource.
func LoadScript(path string) (*Script, error) {
	scriptFile := filepath.Clean(path)

	if !filepath.IsAbs(scriptFile) {
		abs, err := filepath.Abs(scriptFile)
		if err != nil {
			return nil, fritzerr.NewResourceError(fmt.Sprintf("failed to resolve path %q", path), err)
		}
		scriptFile = abs
	}

	content, err := os.ReadFile(scriptFile)
	if err != nil {
		return nil, fritzerr.NewResourceError(fmt.Sprintf("failed to read router script from %q", scriptFile), err)
	}

	var script Script
	if err := toml.Unmarshal(content, &script); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			return nil, fritzerr.NewResourceError(
				fmt.Sprintf("failed to parse %q at line %d, column %d", scriptFile, row, col), err)
		}
		return nil, fritzerr.NewResourceError(fmt.Sprintf("failed to parse %q", scriptFile), err)
	}

	log.Debugf("Router script loaded from %s", scriptFile)

	return &script, nil
}

// NewFromScript builds a Router from a TOML script file.
func NewFromScript(path string) (*Router, error) {
	script, err := LoadScript(path)
	if err != nil {
		return nil, err
	}
	return script.Router(), nil
}

// Router builds a Router serving the scripted responses. Action tables
// become static responses. For every service with a hosts list, handlers
// for GetTotalAssociations, GetGenericAssociatedDeviceInfo and
// GetSpecificAssociatedDeviceInfo are synthesized from the hosts, unless
// the script provides those actions explicitly.
func (s *Script) Router() *Router {
	router := NewRouter()
	router.SetDevice(s.Device)

	for name, service := range s.Services {
		for action, result := range service.Actions {
			router.Handle(name, action, result)
		}
		if len(service.Hosts) > 0 {
			registerHostActions(router, name, service)
		}
	}

	return router
}

func registerHostActions(router *Router, name string, service ScriptService) {
	hosts := service.Hosts

	if _, ok := service.Actions["GetTotalAssociations"]; !ok {
		router.Handle(name, "GetTotalAssociations", map[string]any{
			"NewTotalAssociations": len(hosts),
		})
	}

	if _, ok := service.Actions["GetGenericAssociatedDeviceInfo"]; !ok {
		router.HandleFunc(name, "GetGenericAssociatedDeviceInfo", func(args map[string]any) (map[string]any, error) {
			index, err := intArg(args, "NewAssociatedDeviceIndex")
			if err != nil {
				return nil, err
			}
			if index < 0 || index >= len(hosts) {
				return nil, fritzerr.NewArrayIndexError(fmt.Sprintf("device index out of range: %d", index), nil)
			}
			return hostResponse(hosts[index]), nil
		})
	}

	if _, ok := service.Actions["GetSpecificAssociatedDeviceInfo"]; !ok {
		router.HandleFunc(name, "GetSpecificAssociatedDeviceInfo", func(args map[string]any) (map[string]any, error) {
			mac, _ := args["NewAssociatedDeviceMACAddress"].(string)
			for _, host := range hosts {
				if host.MAC == mac {
					return hostResponse(host), nil
				}
			}
			return nil, fritzerr.NewArgumentError(fmt.Sprintf("unknown MAC address: %q", mac), nil)
		})
	}
}

func hostResponse(host ScriptHost) map[string]any {
	return map[string]any{
		"NewAssociatedDeviceMACAddress": host.MAC,
		"NewAssociatedDeviceIPAddress":  host.IP,
		"NewAssociatedDeviceAuthState":  host.AuthState,
		"NewX_AVM-DE_SignalStrength":    host.Signal,
		"NewX_AVM-DE_Speed":             host.Speed,
	}
}

func intArg(args map[string]any, name string) (int, error) {
	value, ok := args[name]
	if !ok {
		return 0, fritzerr.NewArgumentError(fmt.Sprintf("missing argument: %q", name), nil)
	}
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fritzerr.NewArgumentError(fmt.Sprintf("argument %q is not a number: %q", name, v), err)
		}
		return i, nil
	default:
		return 0, fritzerr.NewArgumentError(fmt.Sprintf("argument %q is not a number: %v", name, value), nil)
	}
}

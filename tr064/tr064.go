// Package tr064 defines the contracts for talking to TR-064 capable
// routers: the Caller and Registry interfaces consumed by the service
// facades, and the connection parameters with their defaults, file loading
// and validation.
package tr064

import "strings"

// Arg is one named input argument of an action call.
type Arg struct {
	Name  string
	Value any
}

// Caller executes TR-064 actions against a router. Implementations return
// the output arguments of the action as a flat map of vendor argument
// names ("NewSSID") to values.
type Caller interface {
	CallAction(service, action string, args ...Arg) (map[string]any, error)
}

// Registry lists the service names a router offers.
type Registry interface {
	Services() []string
}

// Connection is a full router endpoint: it can execute actions and
// enumerate the services they belong to.
type Connection interface {
	Caller
	Registry
}

// NormalizeServiceName expands the shorthand service notation accepted by
// CallAction implementations. "WLANConfiguration:2" becomes
// "WLANConfiguration2", and a name without a trailing digit gets "1"
// appended, so "DeviceInfo" addresses "DeviceInfo1". An already numbered
// name and the empty string are returned unchanged.
func NormalizeServiceName(name string) string {
	if name == "" {
		return name
	}
	if before, after, found := strings.Cut(name, ":"); found {
		return before + after
	}
	if last := name[len(name)-1]; last < '0' || last > '9' {
		return name + "1"
	}
	return name
}

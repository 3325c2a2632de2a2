// Package tr064test provides an in-memory tr064.Connection for tests and
// demos. A Router serves canned action responses, either registered in
// code with Handle and HandleFunc or loaded from a TOML script, and
// records every call it receives.
package tr064test

import (
	"fmt"
	"sort"

	"github.com/tbeier/fritzkit/fritzerr"
	"github.com/tbeier/fritzkit/log"
	"github.com/tbeier/fritzkit/tr064"
)

// HandlerFunc computes the response of one action from its input
// arguments.
type HandlerFunc func(args map[string]any) (map[string]any, error)

// Call records one executed action.
type Call struct {
	Service string
	Action  string
	Args    map[string]any
}

// Router is a fake TR-064 endpoint. The zero value is not usable, use
// NewRouter or NewFromScript. A Router is not safe for concurrent use.
type Router struct {
	device   DeviceInfo
	handlers map[string]map[string]HandlerFunc
	calls    []Call
}

var _ tr064.Connection = (*Router)(nil)

// NewRouter returns a Router without any services.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]map[string]HandlerFunc)}
}

// SetDevice sets the device identity reported by Device and Model.
func (r *Router) SetDevice(device DeviceInfo) {
	r.device = device
}

// Device returns the device identity.
func (r *Router) Device() DeviceInfo {
	return r.device
}

// Model returns the device model name.
func (r *Router) Model() string {
	return r.device.Model
}

// Handle registers a static response for one action. The result map is
// copied on every call, so callers may modify the returned response.
func (r *Router) Handle(service, action string, result map[string]any) {
	r.HandleFunc(service, action, func(map[string]any) (map[string]any, error) {
		response := make(map[string]any, len(result))
		for key, value := range result {
			response[key] = value
		}
		return response, nil
	})
}

// HandleFunc registers fn as the handler for one action, replacing any
// previous handler.
func (r *Router) HandleFunc(service, action string, fn HandlerFunc) {
	actions, ok := r.handlers[service]
	if !ok {
		actions = make(map[string]HandlerFunc)
		r.handlers[service] = actions
	}
	actions[action] = fn
}

// CallAction implements tr064.Caller. The service name is expanded with
// tr064.NormalizeServiceName before dispatch. Calls to unknown services
// and actions are recorded like successful ones and fail with
// fritzerr.ErrCodeService and fritzerr.ErrCodeAction respectively.
func (r *Router) CallAction(service, action string, args ...tr064.Arg) (map[string]any, error) {
	service = tr064.NormalizeServiceName(service)

	arguments := make(map[string]any, len(args))
	for _, arg := range args {
		arguments[arg.Name] = arg.Value
	}

	log.Debugf("Scripted router call: %s %s %v", service, action, arguments)
	r.calls = append(r.calls, Call{Service: service, Action: action, Args: arguments})

	actions, ok := r.handlers[service]
	if !ok {
		return nil, fritzerr.NewServiceError(fmt.Sprintf("unknown service: %q", service), nil)
	}

	fn, ok := actions[action]
	if !ok {
		return nil, fritzerr.NewActionError(fmt.Sprintf("unknown action: %q", action), nil)
	}

	return fn(arguments)
}

// Services implements tr064.Registry. The names are sorted.
func (r *Router) Services() []string {
	services := make([]string, 0, len(r.handlers))
	for service := range r.handlers {
		services = append(services, service)
	}
	sort.Strings(services)
	return services
}

// Calls returns a copy of the recorded calls in execution order.
func (r *Router) Calls() []Call {
	return append([]Call(nil), r.calls...)
}

// Reset clears the call log. Registered handlers are kept.
func (r *Router) Reset() {
	r.calls = nil
}

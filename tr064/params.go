package tr064

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/tbeier/fritzkit/fritzerr"
	"github.com/tbeier/fritzkit/log"
)

const (
	// DefaultAddress is the link-local address every FRITZ!Box answers on.
	DefaultAddress = "169.254.1.1"
	// DefaultPort is the TR-064 port for plain HTTP.
	DefaultPort = 49000
	// DefaultTLSPort is the TR-064 port for HTTPS.
	DefaultTLSPort = 49443
	// DefaultUsername is the fallback login of fritzbox routers.
	DefaultUsername = "dslf-config"

	// EnvUsername and EnvPassword name the environment variables consulted
	// when Params carries no explicit credentials.
	EnvUsername = "FRITZ_USERNAME"
	EnvPassword = "FRITZ_PASSWORD"
)

// Params holds the settings for reaching one router.
type Params struct {
	Address  string `toml:"address" validate:"omitempty,host_or_ip"`
	Port     int    `toml:"port" validate:"min=0,max=65535"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	UseTLS   bool   `toml:"use_tls"`
}

// ApplyDefaults fills every unset field. The username falls back to the
// FRITZ_USERNAME environment variable and then to DefaultUsername, the
// password to FRITZ_PASSWORD, and the port to the default matching UseTLS.
func (p *Params) ApplyDefaults() {
	if p.Address == "" {
		p.Address = DefaultAddress
	}
	if p.Username == "" {
		p.Username = os.Getenv(EnvUsername)
	}
	if p.Username == "" {
		p.Username = DefaultUsername
	}
	if p.Password == "" {
		p.Password = os.Getenv(EnvPassword)
	}
	if p.Port == 0 {
		if p.UseTLS {
			p.Port = DefaultTLSPort
		} else {
			p.Port = DefaultPort
		}
	}
}

// BaseURL returns the endpoint URL built from the parameters. A scheme
// prefix on Address is discarded, the scheme follows UseTLS.
func (p *Params) BaseURL() string {
	address := p.Address
	if i := strings.Index(address, "//"); i != -1 {
		address = address[i+2:]
	}
	scheme := "http"
	if p.UseTLS {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, address, p.Port)
}

// LoadParams reads connection parameters from a TOML file, applies the
// defaults to every field the file leaves unset and validates the result.
// Read and parse failures carry fritzerr.ErrCodeResource, validation
// failures fritzerr.ErrCodeValidation with the ValidationErrors as cause.
func LoadParams(path string) (*Params, error) {
	paramsFile := filepath.Clean(path)

	if !filepath.IsAbs(paramsFile) {
		abs, err := filepath.Abs(paramsFile)
		if err != nil {
			return nil, fritzerr.NewResourceError(fmt.Sprintf("failed to resolve path %q", path), err)
		}
		paramsFile = abs
	}

	content, err := os.ReadFile(paramsFile)
	if err != nil {
		return nil, fritzerr.NewResourceError(fmt.Sprintf("failed to read connection parameters from %q", paramsFile), err)
	}

	var params Params
	if err := toml.Unmarshal(content, &params); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			return nil, fritzerr.NewResourceError(
				fmt.Sprintf("failed to parse %q at line %d, column %d", paramsFile, row, col), err)
		}
		return nil, fritzerr.NewResourceError(fmt.Sprintf("failed to parse %q", paramsFile), err)
	}

	params.ApplyDefaults()

	if err := params.Validate(); err != nil {
		return nil, fritzerr.NewValidationError(fmt.Sprintf("invalid connection parameters in %q", paramsFile), err)
	}

	log.Debugf("Connection parameters loaded from %s", paramsFile)

	return &params, nil
}

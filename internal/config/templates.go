package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "toml":
		return tomlTemplate, nil
	case "yaml", "yml":
		return yamlTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const tomlTemplate = `mode = "parameter"
cache_forms = true
log_level = "info"
dns = "daq-dns"

[[items]]
name = "daq-dns/node01:1/ns::readout:2/temperature"
format = "F"

[[items]]
name = "daq-dns/node01/runctrl/state"
format = "I:1;C:0"
quality = 66049
`

const yamlTemplate = `mode: parameter
cache_forms: true
log_level: info
dns: daq-dns
items:
  - name: daq-dns/node01:1/ns::readout:2/temperature
    format: F
  - name: daq-dns/node01/runctrl/state
    format: "I:1;C:0"
    quality: 66049
`

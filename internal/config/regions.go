package config

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/contactsync/pkg/logging"
)

//go:embed regions.yaml
var regionsYAML []byte

// region is a known regional API host.
type region struct {
	Name string `yaml:"name"`
	Host string `yaml:"host"`
}

type regionFile struct {
	Regions []region `yaml:"regions"`
}

var (
	regionsOnce sync.Once
	regions     []region
)

// loadRegions parses the embedded allow-list once. A parse failure leaves
// the list empty, which only disables the advisory warning.
func loadRegions() []region {
	regionsOnce.Do(func() {
		var file regionFile
		if err := yaml.Unmarshal(regionsYAML, &file); err != nil {
			logging.Warn().Err(err).Msg("failed to parse embedded region list")
			return
		}
		regions = file.Regions
	})
	return regions
}

// KnownRegion reports whether host is one of the known regional API hosts,
// returning the region name when it is.
func KnownRegion(host string) (string, bool) {
	host = strings.ToLower(strings.TrimSpace(host))
	for _, r := range loadRegions() {
		if strings.EqualFold(r.Host, host) {
			return r.Name, true
		}
	}
	return "", false
}

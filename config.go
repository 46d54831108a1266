// SPDX-License-Identifier: EPL-2.0

package audioroute

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir is the directory holding mixer description files, one per
// codec vendor identifier.
var ConfigDir = "/etc/audioroute"

const (
	vendorNameFormat = "/sys/class/sound/hwC%dD0/chip_name"
	vendorUnknown    = "unknown"
)

// VendorName returns the card's codec vendor identifier as used in the
// description file name: the sysfs chip_name with spaces replaced by
// underscores, or "unknown" when the attribute cannot be read.
func VendorName(card uint) string {
	return vendorFromFile(fmt.Sprintf(vendorNameFormat, card))
}

func vendorFromFile(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return vendorUnknown
	}
	name := strings.TrimRight(string(raw), "\n")
	if name == "" {
		return vendorUnknown
	}
	return strings.ReplaceAll(name, " ", "_")
}

// ConfigPath returns the description file path for the given card:
// ConfigDir/mixer_paths_<vendor>.xml.
func ConfigPath(card uint) string {
	return filepath.Join(ConfigDir, fmt.Sprintf("mixer_paths_%s.xml", VendorName(card)))
}

package irhal

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// DetectChipName scans /sys/bus/gpio/devices for the RP1 (Pi 5) or
// BCM2835 (Pi 4 and earlier) GPIO controller label, falling back to
// gpiochip0, exactly as the teacher's BoardModel.GPIOChipName does.
func DetectChipName() string {
	for _, chip := range []string{"gpiochip0", "gpiochip4"} {
		labelPath := fmt.Sprintf("/sys/bus/gpio/devices/%s/label", chip)
		data, err := os.ReadFile(labelPath)
		if err != nil {
			continue
		}
		label := strings.TrimSpace(string(data))
		if strings.Contains(label, "pinctrl-rp1") || strings.Contains(label, "pinctrl-bcm2") {
			return chip
		}
	}
	return "gpiochip0"
}

// DetectModel identifies the running board from /proc/cpuinfo, falling back
// to the device-tree model file for boards (Pi 5) that omit it.
func DetectModel() BoardModel {
	data, err := os.ReadFile("/proc/cpuinfo")
	if err == nil {
		if m := matchModel(string(data)); m != BoardUnknown {
			return m
		}
	}
	if dt, err := os.ReadFile("/proc/device-tree/model"); err == nil {
		if m := matchModel(string(dt)); m != BoardUnknown {
			return m
		}
	}
	if runtime.GOOS == "linux" {
		return BoardGeneric
	}
	return BoardUnknown
}

func matchModel(text string) BoardModel {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "pi 5"):
		return BoardRaspberryPi5
	case strings.Contains(lower, "pi 4"):
		return BoardRaspberryPi4
	case strings.Contains(lower, "raspberry"):
		return BoardGeneric
	default:
		return BoardUnknown
	}
}

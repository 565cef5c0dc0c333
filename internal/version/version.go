package version

import (
	"fmt"
	"runtime"
)

const (
	// Version is the current version of FoodBridge
	Version = "0.3.0"

	// ProjectURL is the project homepage
	ProjectURL = "https://github.com/foodbridge/foodbridge"
)

// UserAgent returns the User-Agent string sent when fetching a remote directory
func UserAgent() string {
	return fmt.Sprintf("foodbridge/%s (%s; %s/%s; +%s)",
		Version,
		runtime.Version(),
		runtime.GOOS,
		runtime.GOARCH,
		ProjectURL,
	)
}

// GetVersion returns the current version
func GetVersion() string {
	return Version
}

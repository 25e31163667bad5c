package utils

// Overridden at build time with -ldflags "-X github.com/bytearena/sightline/common/utils.version=..."
var version = "dev"

func GetVersion() string {
	return version
}

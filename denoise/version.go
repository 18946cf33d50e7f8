package denoise

const version = "0.3.0"

// Version returns the static library version string.
func Version() string {
	return "dfttest-go " + version
}

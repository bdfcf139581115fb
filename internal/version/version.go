package version

// version is set at build time with -ldflags "-X github.com/vuejs/vue-cli/internal/version.version=...".
var version = "2.9.6"

func String() string {
	return version
}

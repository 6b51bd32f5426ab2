// Package version holds build metadata. Version is overridden at link time:
//
//	go build -ldflags "-X github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/version.Version=1.2.0"
package version

// Version is the application version.
var Version = "dev"

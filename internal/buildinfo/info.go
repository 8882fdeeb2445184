// Package buildinfo carries release metadata stamped in at link time:
//
//	go build -ldflags "-X github.com/konnector-tools/billgraph/internal/buildinfo.Version=v1.2.0" ./cmd/billgraph
package buildinfo

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

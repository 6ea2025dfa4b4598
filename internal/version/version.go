package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/yinjianfei/owlapi/internal/version.Version=...
	Commit  = "unknown" // -X github.com/yinjianfei/owlapi/internal/version.Commit=...
	Date    = "unknown" // -X github.com/yinjianfei/owlapi/internal/version.Date=...
)

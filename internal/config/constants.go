package config

// Environment variables read at startup.
const (
	// EnvAPIKey holds the Linode API key.
	EnvAPIKey = "LINODE_API_KEY"
)

// Legacy API identifiers for the two-stage install.
const (
	// StagingDistributionID is Debian 7 in the legacy API; it bootstraps
	// the install and is overwritten once the target OS boots.
	StagingDistributionID = 130

	// StagingKernelID is the "Latest 64 bit" kernel the staging OS
	// boots with.
	StagingKernelID = 138

	// TargetKernelID is pv-grub-x86-64, which hands control to the
	// GRUB installed on the target partition.
	TargetKernelID = 95

	// RootDeviceNum is the boot config slot of the root disk. Both boot
	// configs reference the same disk list, so the slot is the same for
	// the staging and the target config.
	RootDeviceNum = 1
)

// Defaults for the invocation surface.
const (
	// DefaultPlanID is the smallest plan tier.
	DefaultPlanID = 1

	// DefaultSwapMB is the default swap partition size.
	DefaultSwapMB = 2048

	// RootPasswordLength is the length of the generated staging root
	// password.
	RootPasswordLength = 24
)

// Remote-side paths and sources.
const (
	// RemoteCloudConfigPath is where the cloud-config payload lands on
	// the staging OS, and where the install command reads it from.
	RemoteCloudConfigPath = "/root/cloud-config.yaml"

	// InstallScriptURL is fetched and executed by the staging OS to
	// write the target OS onto the raw partition. The script takes the
	// node's public address, private address, gateway and discovery
	// token as positional arguments.
	InstallScriptURL = "https://raw.githubusercontent.com/Knight1/linodeapi/master/scripts/coreos-install.sh"
)

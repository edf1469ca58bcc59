package provisioning

import (
	"fmt"
	"strings"

	"github.com/Knight1/linodeapi/internal/config"
)

// payloadPhase pushes the caller's cloud-config to its fixed path on the
// staging OS, where the installer picks it up.
type payloadPhase struct{}

func (p *payloadPhase) Name() string { return "cloud-config" }

func (p *payloadPhase) Run(ctx *Context) error {
	if err := ctx.Comm.Push(ctx, config.RemoteCloudConfigPath, []byte(ctx.Config.CloudConfig)); err != nil {
		return fmt.Errorf("failed to push cloud-config: %w", err)
	}
	ctx.Observer.Printf("Pushed cloud-config to %s", config.RemoteCloudConfigPath)
	return nil
}

// InstallError is a failure of the remote install script. The script's
// output has already been shown to the operator when this is returned.
type InstallError struct {
	Output string
	Err    error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("remote install failed: %v", e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// installPhase runs the install script on the staging OS, handing it the
// public address, private address, gateway and discovery token. The script
// writes the target OS onto the raw partition.
type installPhase struct{}

func (p *installPhase) Name() string { return "install" }

func (p *installPhase) Run(ctx *Context) error {
	st := ctx.State
	command := fmt.Sprintf("curl --silent --location %s | bash -s -- %s %s %s %s",
		config.InstallScriptURL, st.PublicIP, st.PrivateIP, st.Gateway, st.Token)

	output, err := ctx.Comm.Execute(ctx, command)
	if out := strings.TrimSpace(output); out != "" {
		ctx.Observer.Printf("Installer output:\n%s", out)
	}
	if err != nil {
		return &InstallError{Output: output, Err: err}
	}
	return nil
}

package provisioning

import (
	"fmt"
)

// tokenPhase resolves the discovery token: the caller-supplied one when
// present, otherwise a fresh one from the token source, fetched exactly
// once per run.
type tokenPhase struct{}

func (p *tokenPhase) Name() string { return "discovery-token" }

func (p *tokenPhase) Run(ctx *Context) error {
	if ctx.Config.Token != "" {
		ctx.State.Token = ctx.Config.Token
		ctx.Observer.Printf("Using supplied discovery token")
		return nil
	}

	token, err := ctx.Tokens.NewToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch discovery token: %w", err)
	}
	ctx.State.Token = token
	ctx.Observer.Printf("Fetched discovery token %s", token)
	return nil
}

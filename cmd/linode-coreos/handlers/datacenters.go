package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Knight1/linodeapi/internal/config"
)

// Datacenters handles the datacenters command: it prints the provider's
// datacenter catalog.
func Datacenters(ctx context.Context, w io.Writer) error {
	apiKey := os.Getenv(config.EnvAPIKey)
	if apiKey == "" {
		return fmt.Errorf("%s is not set", config.EnvAPIKey)
	}

	dcs, err := newClient(apiKey).ListDatacenters(ctx)
	if err != nil {
		return fmt.Errorf("failed to list datacenters: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("ID\tLOCATION\tABBR"))
	for _, dc := range dcs {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", dc.ID, dc.Location, dc.Abbreviation)
	}
	return tw.Flush()
}

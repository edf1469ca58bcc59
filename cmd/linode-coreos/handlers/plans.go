package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/Knight1/linodeapi/internal/config"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// Plans handles the plans command: it prints the provider's plan catalog.
func Plans(ctx context.Context, w io.Writer) error {
	apiKey := os.Getenv(config.EnvAPIKey)
	if apiKey == "" {
		return fmt.Errorf("%s is not set", config.EnvAPIKey)
	}

	plans, err := newClient(apiKey).ListPlans(ctx)
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("ID\tLABEL\tRAM (MB)\tDISK (GB)\tHOURLY"))
	for _, p := range plans {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t$%.4f\n", p.ID, p.Label, p.RAMMB, p.DiskGB, p.Hourly)
	}
	return tw.Flush()
}

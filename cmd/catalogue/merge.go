package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/angelmondragon/furniture-catalogue-backend/internal/catalogue"
)

func newMergeCmd(open opener) *cobra.Command {
	var (
		projectID string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Print the merged catalogue of a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(projectID)
			if err != nil {
				return fmt.Errorf("invalid --project %q: %w", projectID, err)
			}
			switch format {
			case "table", "json", "csv":
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json, csv)", format)
			}

			ctx := cmd.Context()
			sess, err := open(ctx)
			if err != nil {
				return err
			}
			defer func() {
				_ = sess.close()
			}()

			rows, err := sess.services.Catalogue.Merge(ctx, id)
			if err != nil {
				return err
			}
			display := catalogue.ToDisplayRows(rows)

			switch format {
			case "json":
				return outputJSON(cmd, display)
			case "csv":
				newCatalogueTable(cmd, display).RenderCSV()
			default:
				newCatalogueTable(cmd, display).Render()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project id to merge")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, json or csv")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func outputJSON(cmd *cobra.Command, rows []catalogue.DisplayRow) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

func newCatalogueTable(cmd *cobra.Command, rows []catalogue.DisplayRow) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Lot", "Name", "Category", "Condition", "Area", "Zone", "Floor"})
	for _, row := range rows {
		t.AppendRow(table.Row{
			row.LotNumber,
			row.Name,
			row.CategoryName,
			row.Condition,
			row.Location.Area,
			row.Location.Zone,
			row.Location.Floor,
		})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d items", len(rows))})
	return t
}

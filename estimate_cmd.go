package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"smartconstruction/estimate"
	"smartconstruction/handlers"
	"smartconstruction/services"
)

// newEstimateCmd adds offline estimation next to the PocketBase serve command.
func newEstimateCmd(s handlers.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate construction costs without starting the server",
	}
	cmd.AddCommand(newEstimateRoomCmd(s), newEstimateProjectCmd(s))
	return cmd
}

func newEstimateRoomCmd(s handlers.Settings) *cobra.Command {
	spec := estimate.RoomSpec{
		Length:       services.DefaultRoomLength,
		Width:        services.DefaultRoomWidth,
		Height:       services.DefaultRoomHeight,
		WindowWidth:  services.DefaultRoomWindowWidth,
		WindowHeight: services.DefaultRoomWindowHeight,
	}
	material := estimate.Wood.String()

	cmd := &cobra.Command{
		Use:   "room",
		Short: "Estimate bricks, tiles and window cost for one room",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := estimate.ParseWindowMaterial(material)
			if err != nil {
				return err
			}
			spec.WindowMaterial = m

			b, err := estimate.EstimateRoomCost(spec, s.Rates)
			if err != nil {
				return err
			}
			return printBreakdown(cmd.OutOrStdout(), b)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&spec.Length, "length", spec.Length, "room length in feet")
	f.Float64Var(&spec.Width, "width", spec.Width, "room width in feet")
	f.Float64Var(&spec.Height, "height", spec.Height, "wall height in feet")
	f.Float64Var(&spec.WindowWidth, "window-width", spec.WindowWidth, "window width in feet")
	f.Float64Var(&spec.WindowHeight, "window-height", spec.WindowHeight, "window height in feet")
	f.StringVar(&material, "window-material", material, "window frame material (Wood or Aluminium)")
	return cmd
}

func newEstimateProjectCmd(s handlers.Settings) *cobra.Command {
	var xlsxPath, pdfPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "project <file.yaml|file.csv|file.xlsx>",
		Short: "Estimate a whole project described in a YAML file or a room sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := loadQuotationFile(args[0], s)
			if err != nil {
				return err
			}
			summary, err := services.CalcQuotationSummary(q, s.Rates)
			if err != nil {
				return errors.Wrap(err, "estimate")
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(summary); err != nil {
					return err
				}
			}

			now := time.Now()
			if s.Now != nil {
				now = s.Now()
			}
			data := services.BuildExportData(q, summary, services.GenerateQuotationNumber(now), now)
			if !asJSON {
				if err := printQuotation(out, data); err != nil {
					return err
				}
			}

			if xlsxPath != "" {
				b, err := services.GenerateExcel(data)
				if err != nil {
					return errors.Wrap(err, "generate excel")
				}
				if err := os.WriteFile(xlsxPath, b, 0o644); err != nil {
					return errors.Wrapf(err, "write %s", xlsxPath)
				}
				s.Metrics.ObserveExport("xlsx")
			}
			if pdfPath != "" {
				b, err := services.GeneratePDF(data)
				if err != nil {
					return errors.Wrap(err, "generate pdf")
				}
				if err := os.WriteFile(pdfPath, b, 0o644); err != nil {
					return errors.Wrapf(err, "write %s", pdfPath)
				}
				s.Metrics.ObserveExport("pdf")
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&xlsxPath, "xlsx", "", "also write the quotation workbook to this path")
	f.StringVar(&pdfPath, "pdf", "", "also write the quotation PDF to this path")
	f.BoolVar(&asJSON, "json", false, "print the summary as JSON")
	return cmd
}

// loadQuotationFile reads a quotation from YAML. Labour and fixed costs left
// out of the file keep the configured defaults, blank ids are minted and
// window materials are matched case-insensitively.
func loadQuotationFile(path string, s handlers.Settings) (services.Quotation, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".xlsx":
		return loadRoomSheet(path, s)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return services.Quotation{}, errors.Wrapf(err, "read %s", path)
	}

	q := services.NewQuotation(s.Labour, s.FixedCosts)
	if err := yaml.Unmarshal(raw, &q); err != nil {
		return services.Quotation{}, errors.Wrapf(err, "parse %s", path)
	}

	for i := range q.Floors {
		f := &q.Floors[i]
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		if f.Name == "" {
			f.Name = fmt.Sprintf("Floor %d", i+1)
		}
		for j := range f.Rooms {
			r := &f.Rooms[j]
			if r.ID == "" {
				r.ID = uuid.NewString()
			}
			if m, err := estimate.ParseWindowMaterial(r.WindowMaterial.String()); err == nil {
				r.WindowMaterial = m
			}
		}
	}
	return q, nil
}

// loadRoomSheet reads a room import sheet. Any invalid row fails the load.
func loadRoomSheet(path string, s handlers.Settings) (services.Quotation, error) {
	f, err := os.Open(path)
	if err != nil {
		return services.Quotation{}, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	result, err := services.ParseRoomFile(f, filepath.Base(path))
	if err != nil {
		return services.Quotation{}, errors.Wrapf(err, "parse %s", path)
	}
	if len(result.Errors) > 0 {
		first := result.Errors[0]
		return services.Quotation{}, errors.Errorf("%s: %d rows have errors (row %d: %s)",
			path, result.ErrorRows, first.Row, first.Message)
	}

	q := services.NewQuotation(s.Labour, s.FixedCosts).MergeImportedFloors(result.Floors)
	q.Project.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return q, nil
}

func printBreakdown(out io.Writer, b estimate.RoomCostBreakdown) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Wall area\t%s sq.ft\n", services.FormatQty(b.WallArea))
	fmt.Fprintf(tw, "Window area\t%s sq.ft\n", services.FormatQty(b.WindowArea))
	fmt.Fprintf(tw, "Net wall area\t%s sq.ft\n", services.FormatQty(b.NetWallArea))
	fmt.Fprintf(tw, "Floor area\t%s sq.ft\n", services.FormatQty(b.FloorArea))
	fmt.Fprintf(tw, "Bricks\t%s\t%s\n", services.FormatCount(b.BricksNeeded), services.FormatRupees(b.BrickCost))
	fmt.Fprintf(tw, "Tiles\t%s\t%s\n", services.FormatCount(b.TilesNeeded), services.FormatRupees(b.TileCost))
	fmt.Fprintf(tw, "Window\t\t%s\n", services.FormatRupees(b.WindowCost))
	fmt.Fprintf(tw, "Total\t\t%s\n", services.FormatRupees(b.Total))
	return tw.Flush()
}

func printQuotation(out io.Writer, data services.ExportData) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", data.Title, data.ReferenceNumber)
	fmt.Fprintln(tw, "#\tFloor / Room\tL x W x H (ft)\tWindow (ft)\tBricks\tTiles\tTotal")
	for _, r := range data.Rows {
		desc := strings.Repeat("  ", r.Level) + r.Description
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Index, desc, r.Dimensions, r.Window,
			services.FormatCount(r.Bricks), services.FormatCount(r.Tiles), services.FormatRupees(r.Total))
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Material Cost\t%s\n", services.FormatRupees(data.MaterialCost))
	fmt.Fprintf(tw, "Labour Cost\t%s\t%s\n", services.FormatRupees(data.LabourCost), data.LabourDetail)
	fmt.Fprintf(tw, "Fixed Costs\t%s\n", services.FormatRupees(data.FixedCosts))
	fmt.Fprintf(tw, "Grand Total\t%s\n", services.FormatRupees(data.GrandTotal))
	return tw.Flush()
}

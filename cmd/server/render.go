package main

import (
	"fmt"
	"os"

	"github.com/jengzang/sendnow-backend-go/internal/chart"
	"github.com/jengzang/sendnow-backend-go/internal/content"
	"github.com/jengzang/sendnow-backend-go/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	renderFormat string
	renderOut    string
	renderState  string
	renderData   string
	renderWidth  int
	renderHeight int
	renderRatios []string
)

var renderCmd = &cobra.Command{
	Use:   "render <kind>",
	Short: "Render a dashboard view to SVG or PNG",
	Long: `Renders one dashboard view. Without --data the built-in sample dataset is
used. Kinds: overview, heatmap, devices, time-spent, map, video.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", service.FormatSVG, "output format: svg or png")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (default stdout)")
	renderCmd.Flags().StringVar(&renderState, "state", "visible", "view state: visible or pending")
	renderCmd.Flags().StringVar(&renderData, "data", "", "JSON dataset file to render instead of the sample")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "PNG width in pixels (default: chart size)")
	renderCmd.Flags().StringSliceVar(&renderRatios, "ratio", nil, "section:ratio viewport intersections; sections under the reveal threshold render pending")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "PNG height in pixels (default: chart size)")
}

func runRender(cmd *cobra.Command, args []string) error {
	state, err := chart.ParseViewState(renderState)
	if err != nil {
		return err
	}
	intersections, err := chart.ParseIntersections(renderRatios)
	if err != nil {
		return err
	}
	intensity, err := cfg.IntensityScale()
	if err != nil {
		return err
	}

	svc := service.NewChartService(content.Default(), cfg.Charts.Markers, intensity, logger.Named("chart"))
	req := service.RenderRequest{
		Kind:   chart.Kind(args[0]),
		Format: renderFormat,
		State:  state,
		Width:  renderWidth,
		Height: renderHeight,

		Intersections: intersections,
	}

	var out *service.Rendered
	if renderData != "" {
		data, err := os.ReadFile(renderData)
		if err != nil {
			return fmt.Errorf("failed to read dataset: %w", err)
		}
		out, err = svc.RenderDataset(req, data)
		if err != nil {
			return err
		}
	} else {
		out, err = svc.RenderSample(req)
		if err != nil {
			return err
		}
	}

	if renderOut == "" {
		_, err = cmd.OutOrStdout().Write(out.Body)
		return err
	}
	if err := os.WriteFile(renderOut, out.Body, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOut, err)
	}
	logger.Info("chart written", zap.String("kind", args[0]), zap.String("path", renderOut), zap.Int("bytes", len(out.Body)))
	return nil
}

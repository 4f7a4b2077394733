// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/user/codesnap/pkg/pipeline"
	"github.com/user/codesnap/pkg/ports"
)

// Config contains everything one render needs. Nominal sizes are in
// unscaled pixels; the orchestrator applies Scale.
type Config struct {
	Document   pipeline.Document
	OutputPath string // Already resolved and expanded

	// Layout
	FontSize    float64
	LineHeight  float64
	Padding     float64
	Scale       float64
	LineNumbers bool
	StartLine   int

	// Style
	Background      color.NRGBA
	Foreground      color.NRGBA
	LineNumberColor color.NRGBA
	OuterBackground color.NRGBA
	BorderRadius    float64
	Decorations     bool

	// Shadow
	Shadow        bool
	ShadowBlur    float64
	ShadowOpacity float64
	ShadowOffsetX float64
	ShadowOffsetY float64
	OuterPadding  float64

	// Output
	Clipboard bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		FontSize:   20,
		LineHeight: 28,
		Padding:    80,
		Scale:      pipeline.DefaultRenderScale,
		StartLine:  1,

		Background:      pipeline.ParseHexColor("#282c34"),
		Foreground:      pipeline.ParseHexColor("#abb2bf"),
		LineNumberColor: pipeline.ParseHexColor("#5c6370"),
		OuterBackground: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		BorderRadius:    5,

		Shadow:        true,
		ShadowBlur:    20,
		ShadowOpacity: 0.5,
		ShadowOffsetY: 8,

		Clipboard: true,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	layoutStage  pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult]
	cardStage    pipeline.Stage[pipeline.CardInput, pipeline.CardResult]
	cornersStage pipeline.Stage[pipeline.CornerInput, pipeline.CornerResult]
	frameStage   pipeline.Stage[pipeline.FrameInput, pipeline.FrameResult]
	renderer     ports.Renderer
	fs           ports.FileSystem
	clipboard    ports.Clipboard
	sink         ports.DebugSink
	logger       ports.Logger
}

// New creates a new Orchestrator. clipboard may be nil.
func New(
	layoutStage pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult],
	cardStage pipeline.Stage[pipeline.CardInput, pipeline.CardResult],
	cornersStage pipeline.Stage[pipeline.CornerInput, pipeline.CornerResult],
	frameStage pipeline.Stage[pipeline.FrameInput, pipeline.FrameResult],
	renderer ports.Renderer,
	fs ports.FileSystem,
	clipboard ports.Clipboard,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		layoutStage:  layoutStage,
		cardStage:    cardStage,
		cornersStage: cornersStage,
		frameStage:   frameStage,
		renderer:     renderer,
		fs:           fs,
		clipboard:    clipboard,
		sink:         sink,
		logger:       logger,
	}
}

// RunResult describes the written image.
type RunResult struct {
	OutputPath string
	Width      int
	Height     int
	FileSize   int
	Copied     bool // Image was placed on the clipboard
}

// Run renders the document and writes the PNG to config.OutputPath.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	if config.OutputPath == "" {
		return RunResult{}, ErrNoOutputPath
	}
	o.logger.Info("Rendering %d lines", len(config.Document.Lines))

	// 1. Layout
	layout, err := o.layoutStage.Execute(ctx, o.buildLayoutInput(config))
	if err != nil {
		return RunResult{}, fmt.Errorf("layout stage: %w", err)
	}

	// 2. Card
	card, err := o.cardStage.Execute(ctx, o.buildCardInput(config, layout))
	if err != nil {
		return RunResult{}, fmt.Errorf("card stage: %w", err)
	}

	radius := pipeline.ScalePx(config.BorderRadius, layout.Scale)

	// 3. Round the card itself
	img := card.Image
	if radius > 0 {
		rounded, err := o.cornersStage.Execute(ctx, pipeline.CornerInput{Image: img, Radius: radius})
		if err != nil {
			return RunResult{}, fmt.Errorf("corners stage: %w", err)
		}
		img = rounded.Image
	}

	// 4. Shadow or margin
	frame, err := o.frameStage.Execute(ctx, o.buildFrameInput(config, layout, img))
	if err != nil {
		return RunResult{}, fmt.Errorf("shadow stage: %w", err)
	}
	img = frame.Image

	// 5. Round the framed image
	if radius > 0 {
		rounded, err := o.cornersStage.Execute(ctx, pipeline.CornerInput{Image: img, Radius: radius})
		if err != nil {
			return RunResult{}, fmt.Errorf("corners stage: %w", err)
		}
		img = rounded.Image
	}

	if o.sink.Enabled() {
		if err := o.sink.SaveFrame(img); err != nil {
			o.logger.Warn("Failed to save debug output: %s", err)
		}
	}

	bounds := img.Bounds()
	o.logger.Info("Rendered %dx%d image", bounds.Dx(), bounds.Dy())

	// 6. Encode and deliver
	data, err := o.renderer.EncodePNG(img)
	if err != nil {
		return RunResult{}, fmt.Errorf("encode image: %w", err)
	}

	if dir := filepath.Dir(config.OutputPath); dir != "." && dir != "" {
		if err := o.fs.MkdirAll(dir); err != nil {
			return RunResult{}, fmt.Errorf("create output directory: %w", err)
		}
	}

	result := RunResult{
		OutputPath: config.OutputPath,
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		FileSize:   len(data),
	}

	if config.Clipboard && o.clipboard != nil {
		if err := o.clipboard.WritePNG(data); err != nil {
			o.logger.Warn("Could not copy image to clipboard: %s", err)
		} else {
			result.Copied = true
			o.logger.Info("Copied image to clipboard")
		}
	}

	if err := o.save(config.OutputPath, data); err != nil {
		return RunResult{}, fmt.Errorf("save image: %w", err)
	}

	o.logger.Info("Output saved to %s", config.OutputPath)
	return result, nil
}

// save writes data next to path and renames it into place, so a failed
// write leaves whatever was at path untouched.
func (o *Orchestrator) save(path string, data []byte) error {
	tmp := partialPath(path)
	err := o.fs.WriteFile(tmp, data)
	if err == nil {
		err = o.fs.Rename(tmp, path)
	}
	if err != nil {
		if rmErr := o.fs.Remove(tmp); rmErr != nil {
			o.logger.Warn("Failed to remove partial file %s: %s", tmp, rmErr)
		}
		return err
	}
	return nil
}

// partialPath names the temporary file a render is written to.
func partialPath(path string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".partial")
}

func (o *Orchestrator) buildLayoutInput(config Config) pipeline.LayoutInput {
	return pipeline.LayoutInput{
		Document:    config.Document,
		FontSize:    config.FontSize,
		LineHeight:  config.LineHeight,
		Padding:     config.Padding,
		Scale:       config.Scale,
		LineNumbers: config.LineNumbers,
		StartLine:   config.StartLine,
	}
}

func (o *Orchestrator) buildCardInput(config Config, layout pipeline.LayoutResult) pipeline.CardInput {
	return pipeline.CardInput{
		Document: config.Document,
		Layout:   layout,
		Theme: pipeline.CardTheme{
			Background: config.Background,
			Foreground: config.Foreground,
			LineNumber: config.LineNumberColor,
		},
		LineNumbers: config.LineNumbers,
		StartLine:   config.StartLine,
		Decorations: config.Decorations,
	}
}

func (o *Orchestrator) buildFrameInput(config Config, layout pipeline.LayoutResult, card *image.NRGBA) pipeline.FrameInput {
	scale := layout.Scale
	return pipeline.FrameInput{
		Card:   card,
		Shadow: config.Shadow,
		ShadowSpec: pipeline.NewShadowSpec(
			config.ShadowBlur, config.ShadowOpacity,
			config.ShadowOffsetX, config.ShadowOffsetY, scale,
		),
		OuterBackground: config.OuterBackground,
		OuterPadding:    pipeline.ScalePx(config.OuterPadding, scale),
		Margin:          pipeline.ScalePx(float64(layout.Padding), 0.5),
	}
}

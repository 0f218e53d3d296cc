// Package pipeline provides the high-level orchestration for a single tailoring request.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/profile"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/request"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/sirupsen/logrus"
)

// Step names reported through ProgressEvent
const (
	StepParseRequest = "parse_request"
	StepLoadBullets  = "load_bullets"
	StepLoadProfile  = "load_profile"
	StepTailor       = "tailor_bullets"
	StepRender       = "render_docx"
)

// Step categories
const (
	CategoryInput    = "input"
	CategoryTailor   = "tailoring"
	CategoryDocument = "document"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Tailorer selects and rewrites candidate bullets for a job
type Tailorer interface {
	Tailor(ctx context.Context, jobDescription, jobTitle, companyName string, candidates []types.BulletEntry) ([]string, error)
}

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	BulletsPath string
	ProfilePath string
	// OutputDir names generated files when a request has no outputPath
	OutputDir string
	Tailorer  Tailorer
	// Logger defaults to a discarding logger
	Logger *logrus.Entry
	// Printer, when set, receives verbose summaries
	Printer    *observability.Printer
	Now        func() time.Time
	OnProgress ProgressCallback
}

// Result is the outcome of a successful run
type Result struct {
	DocxPath string
	Bullets  types.TailoredBullets
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9]`)

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			Content:  content,
		})
	}
}

// Execute reads one request from in, runs it and writes one JSON response to out.
// Empty input is answered with {"error": "No input received"} and a nil error.
// Any other failure is returned unchanged and nothing is written to out.
func Execute(ctx context.Context, in io.Reader, out io.Writer, opts RunOptions) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	req, err := request.Parse(raw)
	if errors.Is(err, request.ErrNoInput) {
		logger(&opts).Warn("no input received")
		_, werr := types.Response{Error: request.NoInputMessage}.WriteTo(out)
		return werr
	}
	if err != nil {
		return err
	}
	emitProgress(&opts, StepParseRequest, CategoryInput,
		fmt.Sprintf("Parsed request for %s at %s", req.JobTitle, req.CompanyName), req)

	result, err := Run(ctx, req, opts)
	if err != nil {
		return err
	}

	_, err = types.Response{DocxPath: result.DocxPath}.WriteTo(out)
	return err
}

// Run loads the reference files, tailors the bullets and writes the document.
// Steps run strictly in sequence and the first failure stops the run.
func Run(ctx context.Context, req *types.JobRequest, opts RunOptions) (*Result, error) {
	if opts.Tailorer == nil {
		return nil, errors.New("pipeline: no tailorer configured")
	}
	log := logger(&opts)
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	if opts.Printer != nil {
		opts.Printer.PrintJobRequest(req)
	}

	outPath, err := ResolveOutputPath(req.OutputPath, opts.OutputDir, req.JobTitle, req.CompanyName, now())
	if err != nil {
		return nil, err
	}

	bullets, err := profile.LoadBullets(opts.BulletsPath)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"path": opts.BulletsPath, "bullets": len(bullets)}).Debug("loaded master bullets")
	emitProgress(&opts, StepLoadBullets, CategoryInput,
		fmt.Sprintf("Loaded %d candidate bullets", len(bullets)), nil)

	userProfile, err := profile.LoadProfile(opts.ProfilePath)
	if err != nil {
		return nil, err
	}
	log.WithField("path", opts.ProfilePath).Debug("loaded profile")
	emitProgress(&opts, StepLoadProfile, CategoryInput,
		fmt.Sprintf("Loaded profile for %s", userProfile.Name), nil)

	tailored, err := opts.Tailorer.Tailor(ctx, req.JobDescription, req.JobTitle, req.CompanyName, bullets)
	if err != nil {
		return nil, err
	}
	if opts.Printer != nil {
		opts.Printer.PrintTailoredBullets(tailored)
	}
	emitProgress(&opts, StepTailor, CategoryTailor,
		fmt.Sprintf("Received %d tailored bullets", len(tailored)), tailored)

	if err := rendering.Build(userProfile, tailored, req.JobTitle, req.CompanyName, outPath); err != nil {
		return nil, err
	}
	log.WithField("path", outPath).Info("wrote resume")
	emitProgress(&opts, StepRender, CategoryDocument,
		fmt.Sprintf("Wrote %s", outPath), outPath)

	return &Result{DocxPath: outPath, Bullets: tailored}, nil
}

// ResolveOutputPath returns the absolute path the document is written to.
// An explicit path wins. Otherwise, with an output directory, the name is
// {title}_{company}_{unix millis}.docx with non-alphanumerics replaced by
// "_"; without one it is types.DefaultOutputPath. Relative paths resolve
// against the working directory.
func ResolveOutputPath(outputPath, outputDir, jobTitle, companyName string, now time.Time) (string, error) {
	path := strings.TrimSpace(outputPath)
	switch {
	case path != "":
	case outputDir != "":
		path = filepath.Join(outputDir, fmt.Sprintf("%s_%s_%d.docx",
			SafeName(jobTitle), SafeName(companyName), now.UnixMilli()))
	default:
		path = types.DefaultOutputPath
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path %s: %w", path, err)
	}
	return abs, nil
}

// SafeName replaces every character that is not an ASCII letter or digit with "_"
func SafeName(s string) string {
	return unsafeNameChars.ReplaceAllString(s, "_")
}

func logger(opts *RunOptions) *logrus.Entry {
	if opts.Logger == nil {
		opts.Logger = observability.Discard()
	}
	return opts.Logger
}

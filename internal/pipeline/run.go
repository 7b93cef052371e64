// Package pipeline provides the high-level orchestration for the resume generation process.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/ingestion"
	"github.com/jonathan/job-matcher/internal/llm"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/output"
	"github.com/jonathan/job-matcher/internal/review"
	"github.com/jonathan/job-matcher/internal/tailoring"
)

// Step names reported in progress events
const (
	StepLoadInputs     = "load_inputs"
	StepGenerateResume = "generate_resume"
	StepSaveResume     = "save_resume"
	StepReviewResume   = "review_resume"
	StepSaveFeedback   = "save_feedback"
)

// Step categories reported in progress events
const (
	CategoryIngestion  = "ingestion"
	CategoryGeneration = "generation"
	CategoryOutput     = "output"
)

// ErrInputsMissing is returned when an input is missing and the run was asked to fail on it.
var ErrInputsMissing = errors.New("missing master resume or job descriptions")

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	State    State  `json:"state"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Settings   *config.Settings
	Client     llm.Client
	Printer    *observability.Printer
	Logger     logrus.FieldLogger
	OnProgress ProgressCallback
}

// Result describes where a run stopped and what it wrote
type Result struct {
	State        State
	RunID        uuid.UUID
	ResumePath   string
	FeedbackPath string
}

// run carries per-invocation state through the steps
type run struct {
	opts   *RunOptions
	result *Result
	log    logrus.FieldLogger
}

// advance moves the run to the next state and reports it
func (r *run) advance(to State, step, category, message string, content any) {
	if !CanTransition(r.result.State, to) {
		// unreachable unless the step order below is edited incorrectly
		panic(fmt.Sprintf("illegal transition %s -> %s", r.result.State, to))
	}
	r.log.WithFields(logrus.Fields{"from": r.result.State, "to": to}).Debug("state transition")
	r.result.State = to

	if r.opts.OnProgress != nil {
		r.opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			State:    to,
			Message:  message,
			RunID:    r.result.RunID.String(),
			Content:  content,
		})
	}
}

// abort records a terminal failure and returns err unchanged
func (r *run) abort(step, category string, err error) error {
	r.advance(StateAborted, step, category, err.Error(), nil)
	return err
}

// Run executes one generation run: load both inputs, synthesize the tailored résumé,
// persist it, request the recruiter critique of that résumé, and persist the critique.
//
// A missing input ends the run in StateAborted before any remote call; the error is nil
// unless Settings.FailOnMissing is set, in which case it is ErrInputsMissing. A failed
// synthesis writes nothing and skips the critique. The returned Result is never nil.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	result := &Result{State: StateStart, RunID: uuid.New()}

	if opts.Settings == nil {
		return result, fmt.Errorf("settings are required")
	}
	if opts.Client == nil {
		return result, fmt.Errorf("client is required")
	}
	if opts.Printer == nil {
		opts.Printer = observability.NewPrinter(os.Stdout)
	}
	if opts.Logger == nil {
		opts.Logger = observability.DiscardLogger()
	}

	s := opts.Settings
	r := &run{
		opts:   &opts,
		result: result,
		log: opts.Logger.WithFields(logrus.Fields{
			"run_id":   result.RunID.String(),
			"provider": s.Provider,
			"model":    s.Model,
		}),
	}
	printer := opts.Printer
	client := llm.WithRetry(opts.Client, s.MaxRetries, s.RetryDelay, r.log)

	// Step 1: load inputs
	masterResume, jobDescriptions, missing, err := loadInputs(printer, s)
	if err != nil {
		return result, r.abort(StepLoadInputs, CategoryIngestion, fmt.Errorf("loading inputs failed: %w", err))
	}
	if missing {
		printer.Warn("Missing master resume or job descriptions.")
		r.advance(StateAborted, StepLoadInputs, CategoryIngestion, ErrInputsMissing.Error(), nil)
		if s.FailOnMissing {
			return result, ErrInputsMissing
		}
		return result, nil
	}
	inputs := []*ingestion.Metadata{
		ingestion.NewMetadata(s.ResumePath, masterResume),
		ingestion.NewMetadata(s.JobsPath, jobDescriptions),
	}
	for _, m := range inputs {
		r.log.WithFields(logrus.Fields{
			"path":   m.Path,
			"format": m.Format,
			"chars":  m.Chars,
			"sha256": m.ShortHash(),
		}).Debug("input loaded")
	}
	r.advance(StateInputsLoaded, StepLoadInputs, CategoryIngestion,
		fmt.Sprintf("Loaded %s and %s", s.ResumePath, s.JobsPath), inputs)

	// Step 2: résumé synthesis
	printer.Step("Generating ATS-optimized resume...")
	start := time.Now()
	resume, err := tailoring.GenerateResume(ctx, client, s.Model, masterResume, jobDescriptions)
	if err != nil {
		return result, r.abort(StepGenerateResume, CategoryGeneration, err)
	}
	r.log.WithField("latency", time.Since(start)).Debug("resume generated")
	r.advance(StateResumeGenerated, StepGenerateResume, CategoryGeneration, "Generated tailored resume", resume)

	// Step 3: persist résumé
	if err := output.WriteText(s.ResumeOut, resume); err != nil {
		return result, r.abort(StepSaveResume, CategoryOutput, err)
	}
	result.ResumePath = s.ResumeOut
	printer.Saved("Resume", s.ResumeOut)
	r.advance(StateResumePersisted, StepSaveResume, CategoryOutput, "Saved resume to "+s.ResumeOut, nil)

	// Step 4: recruiter critique of the generated résumé
	printer.Step("Sending resume to recruiter evaluation...")
	start = time.Now()
	feedback, err := review.ReviewResume(ctx, client, s.Model, resume, jobDescriptions)
	if err != nil {
		return result, r.abort(StepReviewResume, CategoryGeneration, err)
	}
	fields := logrus.Fields{"latency": time.Since(start)}
	if !review.HasAllSections(feedback) {
		fields["missing_headings"] = true
	}
	r.log.WithFields(fields).Debug("feedback generated")
	r.advance(StateFeedbackGenerated, StepReviewResume, CategoryGeneration, "Generated recruiter feedback", feedback)

	// Step 5: persist critique
	if err := output.WriteText(s.FeedbackOut, feedback); err != nil {
		return result, r.abort(StepSaveFeedback, CategoryOutput, err)
	}
	result.FeedbackPath = s.FeedbackOut
	printer.Saved("Recruiter feedback", s.FeedbackOut)
	r.advance(StateFeedbackPersisted, StepSaveFeedback, CategoryOutput, "Saved feedback to "+s.FeedbackOut, nil)

	if s.Verbose {
		printer.PrintFeedback(review.ParseFeedback(feedback))
	}

	r.advance(StateDone, StepSaveFeedback, CategoryOutput, "Run complete", nil)
	return result, nil
}

// loadInputs reads both inputs. Each missing input is reported separately; missing is
// true when at least one is absent. Any other failure is returned as an error.
func loadInputs(printer *observability.Printer, s *config.Settings) (masterResume, jobDescriptions string, missing bool, err error) {
	masterResume, err = ingestion.LoadMasterResume(s.ResumePath)
	if err != nil {
		if !ingestion.IsMissing(err) {
			return "", "", false, err
		}
		warnMissing(printer, "Master resume", s.ResumePath, err)
		missing = true
	}

	jobDescriptions, err = ingestion.LoadJobDescriptions(s.JobsPath)
	if err != nil {
		if !ingestion.IsMissing(err) {
			return "", "", false, err
		}
		warnMissing(printer, "Job descriptions", s.JobsPath, err)
		missing = true
	}

	return masterResume, jobDescriptions, missing, nil
}

func warnMissing(printer *observability.Printer, label, path string, err error) {
	if errors.Is(err, ingestion.ErrEmpty) {
		printer.Warn("%s file is empty: %s", label, path)
		return
	}
	printer.Warn("%s file not found: %s", label, path)
}

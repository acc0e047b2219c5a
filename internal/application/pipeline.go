package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/ideaforge/internal/domain"
	"github.com/bnema/ideaforge/internal/ports"
	"github.com/bnema/ideaforge/internal/prompts"
	"github.com/google/uuid"
)

const trendLimit = 10

// RunHooks lets the caller observe stage boundaries; the CLI drives its
// spinner from them. Nil hooks are fine.
type RunHooks struct {
	StageStarted  func(name string)
	StageFinished func(name string, err error)
}

func (h RunHooks) started(name string) {
	if h.StageStarted != nil {
		h.StageStarted(name)
	}
}

func (h RunHooks) finished(name string, err error) {
	if h.StageFinished != nil {
		h.StageFinished(name, err)
	}
}

type RunResult struct {
	Record           domain.SessionRecord
	Profile          domain.Profile
	Projects         []domain.ProjectIdea
	Presentation     string
	ResultsPath      string
	CSVPath          string
	PresentationPath string
}

type PipelineConfig struct {
	Generator ports.Generator
	Sources   []ports.TrendSource
	Artifacts ports.ArtifactStore
	History   ports.SessionRepository
	Clock     ports.Clock
	Model     string
}

// PipelineService turns a completed interview into ranked project
// recommendations by chaining the five prompt stages and persisting the
// results.
type PipelineService struct {
	generator ports.Generator
	sources   []ports.TrendSource
	artifacts ports.ArtifactStore
	history   ports.SessionRepository
	clock     ports.Clock
	model     string
}

func NewPipelineService(cfg PipelineConfig) *PipelineService {
	if cfg.Clock == nil {
		cfg.Clock = ports.SystemClock{}
	}

	return &PipelineService{
		generator: cfg.Generator,
		sources:   cfg.Sources,
		artifacts: cfg.Artifacts,
		history:   cfg.History,
		clock:     cfg.Clock,
		model:     cfg.Model,
	}
}

// Run executes the full pipeline for one completed interview. A failed
// stage aborts the run, records a failed history entry and returns the
// stage error. Trend source failures only degrade the generation input.
func (s *PipelineService) Run(ctx context.Context, iv *domain.Interview, hooks RunHooks) (RunResult, error) {
	summary, err := iv.Summary()
	if err != nil {
		return RunResult{}, err
	}

	outputDir, err := s.artifacts.EnsureDir()
	if err != nil {
		return RunResult{}, fmt.Errorf("prepare output dir: %w", err)
	}

	startedAt := s.clock.Now()
	run := &runState{
		sessionID: domain.NewSessionID(startedAt),
		runID:     uuid.NewString(),
		startedAt: startedAt,
		outputDir: outputDir,
	}
	profile := domain.BuildProfile(summary, run.sessionID, startedAt)

	brief, err := s.stage(ctx, run, hooks, prompts.StageOnboarding, ports.GenerateRequest{
		Agent:       prompts.OnboarderAgent,
		Role:        prompts.OnboarderRole,
		Instruction: prompts.OnboarderInstruction,
		Input:       prompts.OnboardingInput(iv.Questions(), summary),
	})
	if err != nil {
		return RunResult{}, s.recordFailure(ctx, run, summary, err)
	}

	analysisInput, err := prompts.AnalysisInput(profile, brief)
	if err != nil {
		return RunResult{}, s.recordFailure(ctx, run, summary, err)
	}
	analysis, err := s.stage(ctx, run, hooks, prompts.StageAnalysis, ports.GenerateRequest{
		Agent:       prompts.AnalystAgent,
		Role:        prompts.AnalystRole,
		Instruction: prompts.AnalystInstruction,
		Input:       analysisInput,
	})
	if err != nil {
		return RunResult{}, s.recordFailure(ctx, run, summary, err)
	}

	digest := s.trendDigest(ctx, profile)
	ideas, err := s.stage(ctx, run, hooks, prompts.StageGeneration, ports.GenerateRequest{
		Agent:       prompts.GeneratorAgent,
		Role:        prompts.GeneratorRole,
		Instruction: prompts.GeneratorInstruction,
		Input:       prompts.GenerationInput(analysis, digest),
	})
	if err != nil {
		return RunResult{}, s.recordFailure(ctx, run, summary, err)
	}

	ranked, err := s.stage(ctx, run, hooks, prompts.StageRanking, ports.GenerateRequest{
		Agent:       prompts.RankerAgent,
		Role:        prompts.RankerRole,
		Instruction: prompts.RankerInstruction,
		Input:       prompts.RankingInput(analysis, ideas),
	})
	if err != nil {
		return RunResult{}, s.recordFailure(ctx, run, summary, err)
	}

	projects, err := ParseProjectIdeas(ranked)
	if err != nil {
		return RunResult{}, s.recordFailure(ctx, run, summary, err)
	}

	presentation, err := s.stage(ctx, run, hooks, prompts.StagePresentation, ports.GenerateRequest{
		Agent:       prompts.PresenterAgent,
		Role:        prompts.PresenterRole,
		Instruction: prompts.PresenterInstruction,
		Input:       prompts.PresentationInput(profile, ranked),
	})
	if err != nil {
		return RunResult{}, s.recordFailure(ctx, run, summary, err)
	}

	finishedAt := s.clock.Now()
	doc := domain.ResultsDocument{
		SessionID:    run.sessionID,
		RunID:        run.runID,
		StartedAt:    startedAt,
		FinishedAt:   finishedAt,
		Model:        s.model,
		Profile:      profile,
		Stages:       run.outputs,
		Projects:     projects,
		Presentation: presentation,
	}

	resultsPath, err := s.artifacts.WriteResults(ctx, doc)
	if err != nil {
		return RunResult{}, fmt.Errorf("write results: %w", err)
	}
	csvPath, err := s.artifacts.WriteProjectsCSV(ctx, run.sessionID, projects)
	if err != nil {
		return RunResult{}, fmt.Errorf("write projects csv: %w", err)
	}
	presentationPath, err := s.artifacts.WritePresentation(ctx, run.sessionID, presentation)
	if err != nil {
		return RunResult{}, fmt.Errorf("write presentation: %w", err)
	}

	record := s.record(run, summary, domain.RunStatusCompleted, finishedAt)
	record.Projects = len(projects)
	if err := s.history.Append(ctx, record); err != nil {
		return RunResult{}, fmt.Errorf("append run history: %w", err)
	}

	return RunResult{
		Record:           record,
		Profile:          profile,
		Projects:         projects,
		Presentation:     presentation,
		ResultsPath:      resultsPath,
		CSVPath:          csvPath,
		PresentationPath: presentationPath,
	}, nil
}

// SaveFeedback persists the answered feedback questions for a finished
// run. Nothing is written when every question was skipped.
func (s *PipelineService) SaveFeedback(ctx context.Context, id domain.SessionID, questions domain.Questionnaire, summary domain.Summary) (string, error) {
	entries := make([]domain.FeedbackEntry, 0, len(summary.Entries))
	for _, q := range questions {
		if answer, ok := summary.Value(q.ID); ok {
			entries = append(entries, domain.FeedbackEntry{Question: q.Prompt, Answer: answer})
		}
	}
	if len(entries) == 0 {
		return "", nil
	}

	path, err := s.artifacts.WriteFeedback(ctx, id, entries)
	if err != nil {
		return "", fmt.Errorf("write feedback: %w", err)
	}

	return path, nil
}

type runState struct {
	sessionID domain.SessionID
	runID     string
	startedAt time.Time
	outputDir string
	stages    []domain.StageResult
	outputs   []domain.StageOutput
}

func (s *PipelineService) stage(ctx context.Context, run *runState, hooks RunHooks, name string, req ports.GenerateRequest) (string, error) {
	hooks.started(name)
	begin := s.clock.Now()
	output, err := s.generator.Generate(ctx, req)
	elapsed := s.clock.Now().Sub(begin)
	hooks.finished(name, err)

	if err != nil {
		run.stages = append(run.stages, domain.StageResult{
			Name:     name,
			Status:   domain.RunStatusFailed,
			Duration: elapsed,
			Error:    err.Error(),
		})
		return "", fmt.Errorf("%s stage: %w", name, err)
	}

	run.stages = append(run.stages, domain.StageResult{
		Name:     name,
		Status:   domain.RunStatusCompleted,
		Duration: elapsed,
	})
	run.outputs = append(run.outputs, domain.StageOutput{Name: name, Output: output})

	return output, nil
}

func (s *PipelineService) trendDigest(ctx context.Context, profile domain.Profile) string {
	topic := strings.Join(profile.Interests, " ")
	if topic == "" {
		topic = "software engineering"
	}

	var trends []domain.Trend
	var notes []string
	for _, source := range s.sources {
		if !source.Enabled() {
			continue
		}

		found, err := source.Fetch(ctx, topic, trendLimit)
		if err != nil {
			notes = append(notes, fmt.Sprintf("%s: %v", source.Name(), err))
			continue
		}
		trends = append(trends, found...)
	}

	return prompts.TrendDigest(trends, notes)
}

func (s *PipelineService) record(run *runState, summary domain.Summary, status domain.RunStatus, finishedAt time.Time) domain.SessionRecord {
	return domain.SessionRecord{
		ID:         run.sessionID,
		RunID:      run.runID,
		StartedAt:  run.startedAt,
		FinishedAt: finishedAt,
		Status:     status,
		Model:      s.model,
		Answered:   len(summary.Entries),
		Skipped:    summary.Skipped,
		OutputDir:  run.outputDir,
		Stages:     run.stages,
	}
}

func (s *PipelineService) recordFailure(ctx context.Context, run *runState, summary domain.Summary, stageErr error) error {
	record := s.record(run, summary, domain.RunStatusFailed, s.clock.Now())
	if err := s.history.Append(ctx, record); err != nil {
		return errors.Join(stageErr, fmt.Errorf("append run history: %w", err))
	}

	return stageErr
}

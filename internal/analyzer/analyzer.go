// Package analyzer orchestrates the analysis pipeline: section extraction,
// skill matching, base/ATS scoring, semantic matching, weighted aggregation
// and recommendation generation.
package analyzer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"resume-analyzer/internal/aggregate"
	"resume-analyzer/internal/document"
	"resume-analyzer/internal/entities"
	"resume-analyzer/internal/grammar"
	"resume-analyzer/internal/positions"
	"resume-analyzer/internal/recommend"
	"resume-analyzer/internal/scoring"
	"resume-analyzer/internal/sections"
	"resume-analyzer/internal/semantic"
	"resume-analyzer/internal/skills"
)

// Analyzer runs the pipeline. It holds only read-only configuration and the
// pluggable capabilities, so one Analyzer may serve any number of concurrent
// analyses; per-call state lives entirely on the stack of Analyze.
type Analyzer struct {
	cfg      *positions.Config
	entities entities.Extractor
	grammar  grammar.Checker
	engine   semantic.Engine
	logger   *zap.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithEntityExtractor replaces the default heuristic entity extractor.
func WithEntityExtractor(e entities.Extractor) Option {
	return func(a *Analyzer) { a.entities = e }
}

// WithGrammarChecker installs a grammar checker; the default reports nothing.
func WithGrammarChecker(c grammar.Checker) Option {
	return func(a *Analyzer) { a.grammar = c }
}

// WithSimilarityEngine replaces the default TF-IDF similarity engine. Passing
// nil forces the keyword-overlap fallback.
func WithSimilarityEngine(e semantic.Engine) Option {
	return func(a *Analyzer) { a.engine = e }
}

// WithLogger sets the logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// New builds an Analyzer over the given position configuration. A nil config
// selects the embedded defaults.
func New(cfg *positions.Config, opts ...Option) *Analyzer {
	if cfg == nil {
		cfg = positions.Default()
	}
	a := &Analyzer{
		cfg:      cfg,
		entities: entities.Heuristic{},
		grammar:  grammar.Noop{},
		engine:   semantic.TFIDF{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze produces a complete AnalysisResult for any input text, including
// the empty string. Unknown positions resolve to the configured default. The
// only error condition is context cancellation, in which case the in-progress
// result is discarded.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, position string) (*AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	resolved, pos := a.cfg.Resolve(position)
	doc := document.New(resumeText)

	a.logger.Debug("starting analysis",
		zap.String("position", resolved),
		zap.Int("word_count", doc.WordCount()),
	)

	spans, sentences := a.entities.Extract(doc.Raw())
	extracted := sections.ExtractWithSpans(doc, spans)

	redFlags := scoring.DetectRedFlags(doc, a.grammar)
	tech := scoring.ScoreTechSkills(doc)
	base := scoring.Base(doc, &extracted, tech, redFlags)

	skillMatch := skills.MatchPosition(doc, pos, a.cfg.Variations)
	requirements := skills.MatchRequirements(doc, pos.Requirements)
	ats := scoring.ATS(doc)
	quality := scoring.ExperienceQuality(sentences)
	match := semantic.Match(ctx, a.engine, doc, pos)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	weighted := aggregate.Weighted(aggregate.Components{
		Skills:            skillMatch.NormalizedScore(),
		ATSCompatibility:  float64(ats.Total),
		JobMatch:          match.SimilarityScore,
		ExperienceQuality: float64(quality.Score),
	}, pos.Weights)

	recommendations := recommend.Generate(recommend.Input{
		PositionLabel:      pos.Label,
		ATSTotal:           ats.Total,
		SemanticScore:      match.SimilarityScore,
		RedFlags:           redFlags,
		RequiredMissing:    requirements.RequiredMissing,
		PreferredMissing:   requirements.PreferredMissing,
		ExperienceQuality:  quality.Score,
		QuantifiedCount:    ats.Quantified.Count,
		CertificationCount: extracted.Certifications.Count,
		MatchingTermCount:  len(match.MatchingTerms),
	})

	result := &AnalysisResult{
		Meta: Meta{
			Fingerprint:   fingerprint(resolved, doc.Raw()),
			Position:      resolved,
			PositionLabel: pos.Label,
			WordCount:     doc.WordCount(),
			LineCount:     doc.LineCount(),
		},
		Sections:        extracted,
		Skills:          skillMatch,
		Required:        requirements,
		Base:            base,
		Tech:            tech,
		ATS:             ats,
		Quality:         quality,
		RedFlags:        redFlags,
		Semantic:        match,
		Weighted:        weighted,
		Recommendations: recommendations,
	}

	a.logger.Debug("analysis complete",
		zap.String("position", resolved),
		zap.Int("base_score", base.Final),
		zap.Float64("weighted_score", weighted.FinalScore),
		zap.String("grade", weighted.Grade),
	)

	return result, nil
}

package processor

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/glossary"
	"github.com/nguyentantai21042004/transcript-flow/internal/grammar"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

// Run normalizes, groups and splits lines, then applies the optional
// paragraph steps and extraction. Every call starts from fresh state.
func (p *implProcessor) Run(ctx context.Context, lines []string) (*Result, error) {
	sub, err := p.loadSubstituter()
	if err != nil {
		return nil, err
	}

	res := &Result{Unknowns: glossary.NewUnknowns()}
	speakerBlocks := transcript.GroupBySpeaker(transcript.Normalize(lines))
	p.logger.Debug(ctx, "Grouped %d speaker blocks", len(speakerBlocks))

	grammarDown := false
	for _, sb := range speakerBlocks {
		pb := p.splitter.SplitBlock(sb)

		for i, para := range pb.Paragraphs {
			if p.cfg.Grammar.AutoFix || p.cfg.Grammar.Enabled {
				para = grammar.AutoFix(para)
			}

			if sub != nil {
				var found glossary.Unknowns
				para, found = sub.Substitute(para)
				res.Unknowns.Merge(found)
			}

			if p.grammarEnabled() && !grammarDown {
				issues, err := p.checker.Check(ctx, para)
				if err != nil {
					p.logger.Warn(ctx, "Grammar check unavailable, skipping the rest of this transcript: %v", err)
					grammarDown = true
				} else {
					p.logger.Debug(ctx, "%d grammar issues for %s", len(issues), pb.Speaker)
					for _, issue := range issues {
						res.GrammarReview = append(res.GrammarReview, formatIssue(pb.Speaker, issue))
					}
				}
			}

			pb.Paragraphs[i] = para
		}
		res.Blocks = append(res.Blocks, pb)
	}

	if p.cfg.Summary.Enabled {
		res.Summary = p.summarize(ctx, res.Blocks)
		res.Actions = p.extractor.Extract(ctx, res.Blocks)
	}

	return res, nil
}

func (p *implProcessor) grammarEnabled() bool {
	return p.cfg.Grammar.Enabled && p.checker != nil
}

func (p *implProcessor) loadSubstituter() (*glossary.Substituter, error) {
	if !p.cfg.Glossary.Enabled || p.store == nil {
		return nil, nil
	}
	g, err := p.store.LoadGlossary()
	if err != nil {
		return nil, err
	}
	ignored, err := p.store.LoadIgnored()
	if err != nil {
		return nil, err
	}
	return glossary.NewSubstituter(g, ignored), nil
}

func (p *implProcessor) summarize(ctx context.Context, blocks []transcript.ParagraphBlock) string {
	if p.summarizer == nil || len(blocks) == 0 {
		return ""
	}
	summary, err := p.summarizer.Summarize(ctx, blocks)
	if err != nil {
		p.logger.Warn(ctx, "Summary skipped: %v", err)
		return ""
	}
	return summary
}

func formatIssue(speaker string, issue grammar.Issue) string {
	return fmt.Sprintf("%s: %s | '%s' → %s", speaker, issue.Message, issue.Context, strings.Join(issue.Replacements, ", "))
}

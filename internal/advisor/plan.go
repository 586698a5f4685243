package advisor

import (
	"context"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/launchpad/internal/venture"
)

// fallbackName is used to keep later plan steps coherent when the
// naming step failed. It is never persisted as a chosen name.
const fallbackName = "My Startup"

// FullPlan aggregates the results of the one-click launch chain. Steps
// that failed leave their phase at its empty default.
type FullPlan struct {
	Naming    venture.NamingPhase
	Logo      venture.LogoPhase
	Website   venture.WebsitePhase
	Marketing venture.MarketingPhase
}

// GenerateFullPlan runs the launch chain: naming, logo, website plan,
// marketing plan. Each step is best effort; a failed step is logged and
// skipped while the rest still run. Steps are paced to stay under the
// provider's rate limits. Only context cancellation aborts the chain.
func (s *Service) GenerateFullPlan(ctx context.Context, idea venture.IdeaPhase, logoStyle string) (*FullPlan, error) {
	plan := &FullPlan{}

	name := fallbackName
	if naming, err := s.GenerateNames(ctx, idea); err != nil {
		s.logger.Warn("full plan: naming step failed", zap.Error(err))
	} else {
		plan.Naming = venture.NamingPhase{
			Suggestions:  naming.Names,
			SelectedName: naming.Names[0],
			Rationale:    naming.Rationale,
		}
		name = naming.Names[0]
	}

	if err := s.pause(ctx); err != nil {
		return plan, err
	}
	if logoStyle == "" {
		logoStyle = venture.LogoStyleModern
	}
	if logo, err := s.GenerateLogo(ctx, idea, name, logoStyle); err != nil {
		s.logger.Warn("full plan: logo step failed", zap.Error(err))
	} else {
		plan.Logo = venture.LogoPhase{
			Prompt:   logo.Prompt,
			ImageURL: logo.ImageURL,
			Style:    logoStyle,
		}
	}

	if err := s.pause(ctx); err != nil {
		return plan, err
	}
	if website, err := s.GenerateWebsitePlan(ctx, idea, name); err != nil {
		s.logger.Warn("full plan: website step failed", zap.Error(err))
	} else {
		plan.Website = venture.WebsitePhase{
			Sitemap:      website.Sitemap,
			HeroCopy:     website.HeroCopy,
			ColorPalette: website.ColorPalette,
		}
	}

	if err := s.pause(ctx); err != nil {
		return plan, err
	}
	if marketing, err := s.GenerateMarketing(ctx, idea, name); err != nil {
		s.logger.Warn("full plan: marketing step failed", zap.Error(err))
	} else {
		plan.Marketing = venture.MarketingPhase{
			Strategy:    marketing.Strategy,
			SocialPosts: marketing.SocialPosts,
			Checklist:   marketing.Checklist,
		}
	}

	return plan, nil
}

func (s *Service) pause(ctx context.Context) error {
	if s.cfg.PlanStepDelay <= 0 {
		return nil
	}
	return s.sleep(ctx, s.cfg.PlanStepDelay)
}

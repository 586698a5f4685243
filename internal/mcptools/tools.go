package mcptools

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/launchpad/internal/venture"
)

// Input/output types for MCP tools.

type projectCreateInput struct {
	Name string `json:"name" jsonschema:"required,Project name"`
}

type projectOutput struct {
	ID       string   `json:"id" jsonschema:"Project ID"`
	Name     string   `json:"name" jsonschema:"Project name"`
	Progress int      `json:"progress" jsonschema:"Completion percentage over the core build steps"`
	Badges   []string `json:"badges" jsonschema:"Earned badges"`
}

type projectListInput struct{}

type projectListOutput struct {
	Projects  []projectOutput `json:"projects" jsonschema:"All projects"`
	CurrentID string          `json:"current_id,omitempty" jsonschema:"ID of the currently selected project"`
}

type projectSelectInput struct {
	ProjectID string `json:"project_id" jsonschema:"required,Project to make current"`
}

type generateNamesInput struct {
	ProjectID string `json:"project_id" jsonschema:"required,Project to generate names for"`
}

type generateNamesOutput struct {
	Names     []string `json:"names" jsonschema:"Suggested business names"`
	Rationale string   `json:"rationale" jsonschema:"Naming direction rationale"`
}

type fullPlanInput struct {
	ProjectID string `json:"project_id" jsonschema:"required,Project to plan"`
	LogoStyle string `json:"logo_style,omitempty" jsonschema:"Logo style: minimal, modern, playful, or tech"`
}

type fullPlanOutput struct {
	SelectedName     string `json:"selected_name,omitempty" jsonschema:"Name chosen by the naming step"`
	LogoGenerated    bool   `json:"logo_generated" jsonschema:"Whether the logo step produced an image"`
	WebsitePlanned   bool   `json:"website_planned" jsonschema:"Whether the website step produced a plan"`
	MarketingPlanned bool   `json:"marketing_planned" jsonschema:"Whether the marketing step produced a plan"`
	Progress         int    `json:"progress" jsonschema:"Project completion percentage after the plan"`
}

type boardroomInput struct {
	ProjectID string `json:"project_id" jsonschema:"required,Project to advise"`
	Question  string `json:"question" jsonschema:"required,Question for the advisory board"`
}

type boardroomOutput struct {
	Visionary string `json:"visionary" jsonschema:"The Visionary's answer"`
	Growth    string `json:"growth" jsonschema:"The Growth Hacker's answer"`
	Skeptic   string `json:"skeptic" jsonschema:"The Skeptic's answer"`
}

type mentorChatInput struct {
	ProjectID string `json:"project_id" jsonschema:"required,Project context for the chat"`
	Mentor    string `json:"mentor,omitempty" jsonschema:"Mentor archetype, e.g. Steve Jobs"`
	Message   string `json:"message" jsonschema:"required,The founder's message"`
}

type mentorChatOutput struct {
	Reply string `json:"reply" jsonschema:"The mentor's reply"`
}

func (s *Server) toProjectOutput(p *venture.Project) projectOutput {
	return projectOutput{
		ID:       p.ID,
		Name:     p.Name,
		Progress: venture.Progress(&p.Data),
		Badges:   venture.Badges(&p.Data),
	}
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "project_create",
		Description: "Create a new startup project and make it current",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args projectCreateInput) (*mcp.CallToolResult, projectOutput, error) {
		p, err := s.store.Create(args.Name)
		if err != nil {
			return nil, projectOutput{}, err
		}
		s.logger.Info("mcp: project created", zap.String("project_id", p.ID))
		return nil, s.toProjectOutput(p), nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "project_list",
		Description: "List all startup projects with progress and badges",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args projectListInput) (*mcp.CallToolResult, projectListOutput, error) {
		current, err := s.store.CurrentID()
		if err != nil {
			return nil, projectListOutput{}, err
		}
		projects := s.store.List()
		out := projectListOutput{
			Projects:  make([]projectOutput, 0, len(projects)),
			CurrentID: current,
		}
		for i := range projects {
			out.Projects = append(out.Projects, s.toProjectOutput(&projects[i]))
		}
		return nil, out, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "project_select",
		Description: "Switch the current project",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args projectSelectInput) (*mcp.CallToolResult, projectOutput, error) {
		p, err := s.session.Use(args.ProjectID)
		if err != nil {
			return nil, projectOutput{}, err
		}
		return nil, s.toProjectOutput(p), nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "generate_names",
		Description: "Generate business name suggestions for a project's idea",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args generateNamesInput) (*mcp.CallToolResult, generateNamesOutput, error) {
		var out generateNamesOutput
		_, err := s.session.Dispatch(ctx, args.ProjectID, func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
			result, err := s.advisor.GenerateNames(ctx, p.Data.Idea)
			if err != nil {
				return venture.DataPatch{}, err
			}
			out = generateNamesOutput{Names: result.Names, Rationale: result.Rationale}
			naming := p.Data.Naming
			naming.Suggestions = result.Names
			naming.Rationale = result.Rationale
			return venture.DataPatch{Naming: &naming}, nil
		})
		if err != nil {
			return nil, generateNamesOutput{}, err
		}
		return nil, out, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "generate_full_plan",
		Description: "Run the one-click launch chain: naming, logo, website, and marketing. Steps are best effort; failures skip the step.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args fullPlanInput) (*mcp.CallToolResult, fullPlanOutput, error) {
		var out fullPlanOutput
		updated, err := s.session.Dispatch(ctx, args.ProjectID, func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
			plan, err := s.advisor.GenerateFullPlan(ctx, p.Data.Idea, args.LogoStyle)
			if err != nil {
				return venture.DataPatch{}, err
			}
			var patch venture.DataPatch
			if len(plan.Naming.Suggestions) > 0 {
				patch.Naming = &plan.Naming
				out.SelectedName = plan.Naming.SelectedName
			}
			if plan.Logo.Prompt != "" || plan.Logo.ImageURL != "" {
				patch.Logo = &plan.Logo
				out.LogoGenerated = plan.Logo.ImageURL != ""
			}
			if plan.Website.Sitemap != "" {
				patch.Website = &plan.Website
				out.WebsitePlanned = true
			}
			if plan.Marketing.Strategy != "" {
				marketing := p.Data.Marketing
				marketing.Strategy = plan.Marketing.Strategy
				marketing.SocialPosts = plan.Marketing.SocialPosts
				marketing.Checklist = plan.Marketing.Checklist
				patch.Marketing = &marketing
				out.MarketingPlanned = true
			}
			return patch, nil
		})
		if err != nil {
			return nil, fullPlanOutput{}, err
		}
		out.Progress = venture.Progress(&updated.Data)
		return nil, out, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "boardroom_ask",
		Description: "Put a question to the advisory board: the Visionary, the Growth Hacker, and the Skeptic",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args boardroomInput) (*mcp.CallToolResult, boardroomOutput, error) {
		if args.Question == "" {
			return nil, boardroomOutput{}, fmt.Errorf("question is required")
		}
		var out boardroomOutput
		_, err := s.session.Dispatch(ctx, args.ProjectID, func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
			name := p.Name
			if p.Data.Naming.SelectedName != "" {
				name = p.Data.Naming.SelectedName
			}
			result, err := s.advisor.AskBoardroom(ctx, p.Data.Idea, name, args.Question)
			if err != nil {
				return venture.DataPatch{}, err
			}
			out = boardroomOutput{
				Visionary: result.Visionary,
				Growth:    result.Growth,
				Skeptic:   result.Skeptic,
			}
			boardroom := p.Data.Boardroom
			venture.AppendBoardroomEntry(&boardroom, args.Question, result.Responses(), time.Now())
			return venture.DataPatch{Boardroom: &boardroom}, nil
		})
		if err != nil {
			return nil, boardroomOutput{}, err
		}
		return nil, out, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "mentor_chat",
		Description: "Chat with a celebrity mentor persona about the project",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args mentorChatInput) (*mcp.CallToolResult, mentorChatOutput, error) {
		out, err := s.mentorChat(ctx, args)
		if err != nil {
			return nil, mentorChatOutput{}, err
		}
		return nil, out, nil
	})
}

// mentorChat runs one mentor exchange and persists both sides of it,
// the same transcript the HTTP surface writes.
func (s *Server) mentorChat(ctx context.Context, args mentorChatInput) (mentorChatOutput, error) {
	if args.Message == "" {
		return mentorChatOutput{}, fmt.Errorf("message is required")
	}

	var out mentorChatOutput
	_, err := s.session.Dispatch(ctx, args.ProjectID, func(ctx context.Context, p *venture.Project) (venture.DataPatch, error) {
		reply, err := s.advisor.ChatWithMentor(ctx, p, args.Mentor, p.Data.Mentor.Messages, args.Message)
		if err != nil {
			return venture.DataPatch{}, err
		}
		out = mentorChatOutput{Reply: reply}

		now := time.Now()
		mentor := p.Data.Mentor
		mentor.Messages = append(mentor.Messages,
			venture.MentorMessage{
				ID:        uuid.New().String(),
				Role:      venture.MentorRoleUser,
				Text:      args.Message,
				Timestamp: now,
			},
			venture.MentorMessage{
				ID:        uuid.New().String(),
				Role:      venture.MentorRoleMentor,
				Text:      reply,
				Timestamp: now,
			},
		)
		return venture.DataPatch{Mentor: &mentor}, nil
	})
	if err != nil {
		return mentorChatOutput{}, err
	}
	return out, nil
}

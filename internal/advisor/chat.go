package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/launchpad/internal/genai"
	"github.com/fyrsmithlabs/launchpad/internal/venture"
)

// ChatWithAssistant answers a free-form question with full project
// context. Returns plain text, no structured constraint.
func (s *Service) ChatWithAssistant(ctx context.Context, project *venture.Project, message string) (string, error) {
	summary := projectSummary(project)
	prompt := fmt.Sprintf(`You are the founder's AI co-founder: supportive, sharp, and direct.
Current project state:
%s

The founder says: %q

Reply helpfully in 2-4 sentences. Reference the project state when it is
relevant. Plain text only, no markdown headings.`, summary, message)

	return s.generateText(ctx, prompt)
}

// Mentor archetypes selectable for the mentor chat.
const (
	MentorSteveJobs   = "Steve Jobs"
	MentorElonMusk    = "Elon Musk"
	MentorOprah       = "Oprah Winfrey"
	MentorWarrenB     = "Warren Buffett"
	MentorDefaultRole = MentorSteveJobs
)

// ChatWithMentor continues the mentor conversation in the voice of the
// chosen archetype.
func (s *Service) ChatWithMentor(ctx context.Context, project *venture.Project, mentor string, history []venture.MentorMessage, message string) (string, error) {
	if mentor == "" {
		mentor = MentorDefaultRole
	}

	var transcript strings.Builder
	for _, m := range history {
		role := "Founder"
		if m.Role == venture.MentorRoleMentor {
			role = mentor
		}
		fmt.Fprintf(&transcript, "%s: %s\n", role, m.Text)
	}

	prompt := fmt.Sprintf(`You are %s mentoring a startup founder. Stay fully in character:
their speech patterns, philosophy, and famous attitudes.

The startup:
%s

Conversation so far:
%s
Founder: %s

Reply as %s in 2-4 sentences. No stage directions, no quotation marks,
just the spoken reply.`,
		mentor, projectSummary(project), transcript.String(), message, mentor)

	return s.generateText(ctx, prompt)
}

// GenerateSpeech renders text as speech and returns the base64 PCM16
// payload (24 kHz mono).
func (s *Service) GenerateSpeech(ctx context.Context, text string) (string, error) {
	resp, err := s.client.Generate(ctx, &genai.Request{
		Model:      s.cfg.TTSModel,
		Prompt:     text,
		Modalities: []genai.Modality{genai.ModalityAudio},
		Voice:      ttsVoice,
	})
	if err != nil {
		return "", err
	}
	blob := resp.InlineData()
	if blob == nil {
		return "", errors.New("model returned no audio payload")
	}
	return blob.Data, nil
}

// projectSummary renders the parts of the project state worth showing
// the model: the idea, chosen name, and which phases are done.
func projectSummary(p *venture.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s\n", p.Name)
	d := p.Data
	if d.Idea.Description != "" {
		fmt.Fprintf(&b, "Idea: %s\nAudience: %s\nIndustry: %s\n",
			d.Idea.Description, d.Idea.TargetAudience, d.Idea.Industry)
	}
	if d.Naming.SelectedName != "" {
		fmt.Fprintf(&b, "Chosen name: %s\n", d.Naming.SelectedName)
	}
	var done []string
	if d.Logo.ImageURL != "" {
		done = append(done, "logo")
	}
	if d.Website.Sitemap != "" {
		done = append(done, "website plan")
	}
	if d.Marketing.Strategy != "" {
		done = append(done, "marketing plan")
	}
	if len(d.PitchDeck.Slides) > 0 {
		done = append(done, "pitch deck")
	}
	if len(done) > 0 {
		fmt.Fprintf(&b, "Completed: %s\n", strings.Join(done, ", "))
	}
	return b.String()
}

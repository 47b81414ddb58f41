// internal/agent/service.go

package agent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/tundeajayi/sparkmatch-backend/internal/conversation"
	"github.com/tundeajayi/sparkmatch-backend/internal/generation"
	"github.com/tundeajayi/sparkmatch-backend/internal/matching"
	"github.com/tundeajayi/sparkmatch-backend/internal/preferences"
	"github.com/tundeajayi/sparkmatch-backend/internal/profile"
)

var ErrNotParticipant = errors.New("user is not part of this conversation")

// approachStyles maps a recommended matching approach to a flirting
// style preset.
var approachStyles = map[string]string{
	"confident": "direct",
	"playful":   "playful",
	"genuine":   "romantic",
	"casual":    "casual",
	"cautious":  "intellectual",
}

// Service orchestrates matching, conversations, and message generation.
type Service interface {
	CreateUser(ctx context.Context, dto *CreateUserDTO) (*profile.Profile, error)
	GetUser(ctx context.Context, userID string) (*profile.Profile, error)
	AnalyzeMatches(ctx context.Context, dto *AnalyzeMatchesDTO) (*AnalyzeMatchesResponse, error)
	StartConversation(ctx context.Context, dto *StartConversationDTO) (*conversation.State, error)
	Chat(ctx context.Context, dto *ChatDTO) (*ChatResponse, error)
	Starters(ctx context.Context, conversationID string, dto *StartersDTO) (*StartersResponse, error)
	GetConversation(ctx context.Context, conversationID string) (*conversation.Summary, error)
	GetMessages(ctx context.Context, conversationID string) (*MessagesResponse, error)
	GetAnalysis(ctx context.Context, conversationID string) (*conversation.EngagementSnapshot, error)
	AnalyzeBehavior(ctx context.Context, dto *AnalyzeBehaviorDTO) (*AnalyzeBehaviorResponse, error)
	GetPreferences(ctx context.Context, userID string) (*matching.PreferenceProfile, error)
}

type service struct {
	profiles   profile.Service
	engine     matching.Engine
	store      conversation.Store
	analyzer   *conversation.Analyzer
	generator  generation.Generator
	fallback   generation.Generator
	matchLimit int
}

// NewService wires the agent service. generator may be nil; every
// generation then uses the fallback. matchLimit is the number of
// matches returned when a request does not ask for a specific count.
func NewService(
	profiles profile.Service,
	engine matching.Engine,
	store conversation.Store,
	analyzer *conversation.Analyzer,
	generator generation.Generator,
	fallback generation.Generator,
	matchLimit int,
) Service {
	if matchLimit < 1 {
		matchLimit = 10
	}
	return &service{
		profiles:   profiles,
		engine:     engine,
		store:      store,
		analyzer:   analyzer,
		generator:  generator,
		fallback:   fallback,
		matchLimit: matchLimit,
	}
}

func (s *service) CreateUser(ctx context.Context, dto *CreateUserDTO) (*profile.Profile, error) {
	p := &profile.Profile{
		Name:             dto.Name,
		Age:              dto.Age,
		Location:         dto.Location,
		Bio:              dto.Bio,
		Photos:           dto.Photos,
		Hobbies:          dto.Hobbies,
		MusicGenres:      dto.MusicGenres,
		PersonalityTypes: dto.PersonalityTypes,
		BehaviorSignals:  dto.BehaviorSignals,
		Lifestyle:        dto.Lifestyle,
		DealBreakers:     dto.DealBreakers,
		MustHaves:        dto.MustHaves,
		AgeRangeMin:      dto.AgeRangeMin,
		AgeRangeMax:      dto.AgeRangeMax,
	}

	// Fill preference gaps from the bio before validating, the same
	// signals the behavior analyzer reads.
	if len(p.Hobbies) == 0 || len(p.MusicGenres) == 0 {
		extracted := preferences.ExtractFromProfile(dto.Bio, dto.Hobbies)
		if len(p.Hobbies) == 0 {
			p.Hobbies = extracted.Hobbies
		}
		if len(p.MusicGenres) == 0 {
			for _, g := range extracted.MusicGenres {
				p.MusicGenres = append(p.MusicGenres, string(g))
			}
		}
	}

	return s.profiles.CreateProfile(ctx, p)
}

func (s *service) GetUser(ctx context.Context, userID string) (*profile.Profile, error) {
	return s.profiles.GetProfile(ctx, userID)
}

func (s *service) AnalyzeMatches(ctx context.Context, dto *AnalyzeMatchesDTO) (*AnalyzeMatchesResponse, error) {
	p, err := s.profiles.GetProfile(ctx, dto.UserID)
	if err != nil {
		return nil, err
	}

	limit := dto.Limit
	if limit <= 0 {
		limit = s.matchLimit
	}

	candidates, err := s.profiles.Candidates(ctx, dto.UserID, limit*5)
	if err != nil {
		return nil, err
	}

	refs := make([]*matching.CandidateProfile, len(candidates))
	for i := range candidates {
		refs[i] = &candidates[i]
	}

	matches := s.engine.FindBestMatches(ctx, p.MatchingProfile(), refs, limit)
	return &AnalyzeMatchesResponse{
		UserID:  dto.UserID,
		Matches: matches,
		Total:   len(matches),
	}, nil
}

func (s *service) StartConversation(ctx context.Context, dto *StartConversationDTO) (*conversation.State, error) {
	if _, err := s.profiles.GetProfile(ctx, dto.UserID); err != nil {
		return nil, err
	}
	if _, err := s.profiles.GetProfile(ctx, dto.MatchUserID); err != nil {
		return nil, fmt.Errorf("match profile: %w", err)
	}

	return s.store.Create(ctx, []string{dto.UserID, dto.MatchUserID}, dto.MatchUserID)
}

// Chat records the incoming message, picks an approach from the current
// engagement, and generates a styled reply. Generation failures degrade
// to canned fallback messages rather than failing the request.
func (s *service) Chat(ctx context.Context, dto *ChatDTO) (*ChatResponse, error) {
	state, err := s.store.Get(ctx, dto.ConversationID)
	if err != nil {
		return nil, err
	}
	if !state.HasParticipant(dto.UserID) {
		return nil, ErrNotParticipant
	}

	receiverID := otherParticipant(state, dto.UserID)
	state, err = s.store.Append(ctx, dto.ConversationID, conversation.Message{
		SenderID:    dto.UserID,
		ReceiverID:  receiverID,
		Content:     dto.Message,
		MessageType: "text",
	})
	if err != nil {
		return nil, err
	}

	snapshot := s.analyzer.Analyze(state)
	style := generation.StyleFor(s.styleFor(ctx, state, dto.FlirtingStyle))
	shared := s.sharedInterests(ctx, state)

	approach := conversation.SelectApproach(conversation.SelectorInput{
		Snapshot:        snapshot,
		IncomingMessage: dto.Message,
		SharedInterests: shared,
		Intensity:       style.Intensity,
	})

	req := generation.ReplyRequest{
		Style:           style,
		Approach:        approach,
		IncomingMessage: dto.Message,
		ContextSummary:  contextSummary(state),
		SharedInterests: shared,
	}

	reply, usedFallback, err := s.generateReply(ctx, req)
	if err != nil {
		return nil, err
	}

	state, err = s.store.Append(ctx, dto.ConversationID, conversation.Message{
		SenderID:      receiverID,
		ReceiverID:    dto.UserID,
		Content:       reply,
		MessageType:   "text",
		IsAIGenerated: true,
	})
	if err != nil {
		return nil, err
	}

	if tone := toneFor(approach); tone != state.Tone {
		if err := s.store.SetTone(ctx, dto.ConversationID, tone); err != nil {
			log.Printf("Failed to update conversation tone: %v", err)
		}
	}

	return &ChatResponse{
		ConversationID: dto.ConversationID,
		Reply:          reply,
		Approach:       approach,
		UsedFallback:   usedFallback,
		Engagement:     s.analyzer.Analyze(state),
	}, nil
}

// toneFor tracks the conversation tone alongside the chosen approach.
func toneFor(approach conversation.Approach) string {
	switch approach {
	case conversation.ApproachPlayfulTeasing:
		return "playful"
	case conversation.ApproachComplimentBase:
		return "flirty"
	case conversation.ApproachQuestionBased:
		return "curious"
	case conversation.ApproachSharedInterest:
		return "warm"
	default:
		return "neutral"
	}
}

func (s *service) Starters(ctx context.Context, conversationID string, dto *StartersDTO) (*StartersResponse, error) {
	state, err := s.store.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	req := generation.OpenerRequest{
		Style:           generation.StyleFor(dto.FlirtingStyle),
		SharedInterests: s.sharedInterests(ctx, state),
		Count:           dto.Count,
	}
	if state.MatchUserID != "" {
		if match, err := s.profiles.GetProfile(ctx, state.MatchUserID); err == nil {
			req.MatchName = match.Name
			req.MatchBio = match.Bio
		}
	}

	usedFallback := false
	var starters []string
	if s.generator != nil {
		starters, err = s.generator.GenerateOpeners(ctx, req)
	}
	if s.generator == nil || err != nil {
		if err != nil {
			log.Printf("Opener generation failed, using fallback: %v", err)
		}
		usedFallback = true
		starters, err = s.fallback.GenerateOpeners(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	return &StartersResponse{
		ConversationID: conversationID,
		Starters:       starters,
		UsedFallback:   usedFallback,
	}, nil
}

func (s *service) GetConversation(ctx context.Context, conversationID string) (*conversation.Summary, error) {
	state, err := s.store.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	return s.analyzer.Summarize(state), nil
}

func (s *service) GetMessages(ctx context.Context, conversationID string) (*MessagesResponse, error) {
	state, err := s.store.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	return &MessagesResponse{
		ConversationID: conversationID,
		Messages:       state.Messages,
		Total:          len(state.Messages),
	}, nil
}

func (s *service) GetAnalysis(ctx context.Context, conversationID string) (*conversation.EngagementSnapshot, error) {
	state, err := s.store.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	return s.analyzer.Analyze(state), nil
}

func (s *service) AnalyzeBehavior(ctx context.Context, dto *AnalyzeBehaviorDTO) (*AnalyzeBehaviorResponse, error) {
	signals := preferences.AnalyzeBehavior(dto.Messages, dto.Bio)

	out := make([]string, 0, len(signals))
	for _, signal := range signals {
		out = append(out, string(signal))
	}
	return &AnalyzeBehaviorResponse{
		UserID:          dto.UserID,
		BehaviorSignals: out,
	}, nil
}

func (s *service) GetPreferences(ctx context.Context, userID string) (*matching.PreferenceProfile, error) {
	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs := p.MatchingProfile().Preferences
	return &prefs, nil
}

func (s *service) generateReply(ctx context.Context, req generation.ReplyRequest) (string, bool, error) {
	if s.generator != nil {
		reply, err := s.generator.GenerateReply(ctx, req)
		if err == nil {
			return reply, false, nil
		}
		log.Printf("Reply generation failed, using fallback: %v", err)
	}

	reply, err := s.fallback.GenerateReply(ctx, req)
	if err != nil {
		return "", true, err
	}
	return reply, true, nil
}

// styleFor picks the flirting style: an explicit request wins, otherwise
// the matching engine's recommended approach for the match decides.
func (s *service) styleFor(ctx context.Context, state *conversation.State, requested string) string {
	if requested != "" {
		return requested
	}
	if state.MatchUserID == "" {
		return ""
	}

	userID := otherParticipant(state, state.MatchUserID)
	analysis, err := s.analyzeMatch(ctx, userID, state.MatchUserID)
	if err != nil {
		return ""
	}
	return approachStyles[analysis.RecommendedApproach]
}

func (s *service) sharedInterests(ctx context.Context, state *conversation.State) []string {
	if state.MatchUserID == "" {
		return nil
	}
	userID := otherParticipant(state, state.MatchUserID)

	analysis, err := s.analyzeMatch(ctx, userID, state.MatchUserID)
	if err != nil {
		return nil
	}
	return analysis.SharedInterests
}

func (s *service) analyzeMatch(ctx context.Context, userID, matchUserID string) (*matching.MatchAnalysis, error) {
	user, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	match, err := s.profiles.GetProfile(ctx, matchUserID)
	if err != nil {
		return nil, err
	}

	candidate := match.Candidate()
	return s.engine.AnalyzeCompatibility(ctx, user.MatchingProfile(), &candidate), nil
}

// contextSummary flattens the last few messages into a prompt-friendly
// transcript.
func contextSummary(state *conversation.State) string {
	const window = 6

	msgs := state.Messages
	if len(msgs) > window {
		msgs = msgs[len(msgs)-window:]
	}

	var parts []string
	for _, msg := range msgs {
		role := "them"
		if msg.IsAIGenerated {
			role = "you"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", role, msg.Content))
	}
	return strings.Join(parts, " | ")
}

func otherParticipant(state *conversation.State, userID string) string {
	for _, p := range state.Participants {
		if p != userID {
			return p
		}
	}
	return userID
}

package chat

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"barabom/internal/domain/family"
	"barabom/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("message not found")
)

// Pets resolves the pet persona answering in chat.
type Pets interface {
	DefaultPet(ctx context.Context) (family.Pet, error)
}

// Broadcaster pushes new messages to connected clients. Optional
// collaborator; the websocket hub implements it.
type Broadcaster interface {
	BroadcastMessage(m Message)
}

type Service struct {
	repo       Repository
	pets       Pets
	broadcast  Broadcaster // may be nil
	log        logger.Logger
	now        func() time.Time
	rand       *rand.Rand
	replyDelay time.Duration
}

// NewService wires the chat thread. replyDelay is how long the simulated pet
// "types" before answering; <= 0 disables the simulated replies entirely.
func NewService(repo Repository, pets Pets, broadcast Broadcaster, replyDelay time.Duration, log logger.Logger) *Service {
	return &Service{
		repo:       repo,
		pets:       pets,
		broadcast:  broadcast,
		log:        log,
		now:        time.Now,
		rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		replyDelay: replyDelay,
	}
}

func (s *Service) List(ctx context.Context) ([]Message, error) {
	return s.repo.List(ctx)
}

// Send appends a family message and schedules the simulated pet reply.
// The reply timer is fire-and-forget: if the process stops first, the reply
// simply never happens and nothing needs rolling back.
func (s *Service) Send(ctx context.Context, author, avatar, content string) (Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Message{}, ErrInvalidInput
	}
	if strings.TrimSpace(author) == "" {
		author = "나"
	}
	if strings.TrimSpace(avatar) == "" {
		avatar = "🙂"
	}

	m := Message{
		ID:        uuid.NewString(),
		Kind:      KindFamily,
		Author:    author,
		Avatar:    avatar,
		Content:   content,
		Timestamp: s.now(),
		Read:      true,
	}

	if err := s.repo.Append(ctx, m); err != nil {
		s.log.Error("chat: append failed", map[string]any{"err": err.Error()})
		return Message{}, err
	}

	if s.broadcast != nil {
		s.broadcast.BroadcastMessage(m)
	}

	if s.replyDelay > 0 {
		time.AfterFunc(s.replyDelay, s.sendPetReply)
	}

	return m, nil
}

func (s *Service) MarkAllRead(ctx context.Context) error {
	all, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, m := range all {
		if m.Read {
			continue
		}
		m.Read = true
		if err := s.repo.Update(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, m := range all {
		if !m.Read {
			count++
		}
	}
	return count, nil
}

// sendPetReply runs on the reply timer, detached from the request that
// scheduled it.
func (s *Service) sendPetReply() {
	ctx := context.Background()

	petName := "초코"
	if pet, err := s.pets.DefaultPet(ctx); err == nil {
		petName = pet.Name
	}

	m := Message{
		ID:        uuid.NewString(),
		Kind:      KindAI,
		Author:    petName,
		Avatar:    "🐶",
		Content:   replyTemplates[s.rand.Intn(len(replyTemplates))],
		Timestamp: s.now(),
		Read:      false,
	}

	if err := s.repo.Append(ctx, m); err != nil {
		s.log.Warn("chat: pet reply append failed", map[string]any{"err": err.Error()})
		return
	}
	if s.broadcast != nil {
		s.broadcast.BroadcastMessage(m)
	}
}

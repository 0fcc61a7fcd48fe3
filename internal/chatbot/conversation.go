package chatbot

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TypingDelay simulates the bot composing its answer. It is a fixed timer,
// not tied to any real computation.
const TypingDelay = 1500 * time.Millisecond

var ErrConversationNotFound = errors.New("conversation not found")

type Message struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	IsBot     bool      `json:"is_bot"`
	Timestamp time.Time `json:"timestamp"`
}

type conversation struct {
	userID   uuid.UUID
	messages []Message
}

// Conversations holds open chatbot widgets. State lives only in memory and
// only while the widget is open; closing it discards everything.
type Conversations struct {
	mu    sync.Mutex
	open  map[uuid.UUID]*conversation
	delay time.Duration
}

func NewConversations() *Conversations {
	return &Conversations{
		open:  make(map[uuid.UUID]*conversation),
		delay: TypingDelay,
	}
}

// Open starts a conversation seeded with the greeting and returns its id
// and initial messages.
func (c *Conversations) Open(userID uuid.UUID) (uuid.UUID, []Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := uuid.New()
	conv := &conversation{
		userID: userID,
		messages: []Message{{
			ID:        uuid.New(),
			Text:      Greeting,
			IsBot:     true,
			Timestamp: time.Now(),
		}},
	}
	c.open[id] = conv
	return id, append([]Message(nil), conv.messages...)
}

// Send appends the user's message immediately and schedules the bot's
// response after the typing delay. The returned message is the user's.
func (c *Conversations) Send(convID, userID uuid.UUID, text string) (*Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	conv, ok := c.open[convID]
	if !ok || conv.userID != userID {
		return nil, ErrConversationNotFound
	}

	msg := Message{
		ID:        uuid.New(),
		Text:      text,
		IsBot:     false,
		Timestamp: time.Now(),
	}
	conv.messages = append(conv.messages, msg)

	reply := Respond(text)
	time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// The widget may have been closed while the bot was "typing";
		// the reply is silently dropped in that case.
		if conv, ok := c.open[convID]; ok {
			conv.messages = append(conv.messages, Message{
				ID:        uuid.New(),
				Text:      reply,
				IsBot:     true,
				Timestamp: time.Now(),
			})
		}
	})

	return &msg, nil
}

// Messages returns the conversation so far, oldest first.
func (c *Conversations) Messages(convID, userID uuid.UUID) ([]Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	conv, ok := c.open[convID]
	if !ok || conv.userID != userID {
		return nil, ErrConversationNotFound
	}
	return append([]Message(nil), conv.messages...), nil
}

// Close discards the conversation.
func (c *Conversations) Close(convID, userID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	conv, ok := c.open[convID]
	if !ok || conv.userID != userID {
		return ErrConversationNotFound
	}
	delete(c.open, convID)
	return nil
}

// SetDelay overrides the typing delay; used by tests.
func (c *Conversations) SetDelay(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delay = d
}

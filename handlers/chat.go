package handlers

import (
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aarushinuvoai/Bid-For-Cure/models"
)

const chatWelcome = "Hello! I'm here to help you with your medical queries. How can I assist you today?"

// chatRule pairs a predicate over the lowercased input with a canned reply.
// Rules are evaluated in order; the first match wins.
type chatRule struct {
	matches func(input string) bool
	reply   string
}

var chatRules = []chatRule{
	{
		matches: func(input string) bool {
			return strings.Contains(input, "looking for hospitals in my area") ||
				strings.Contains(input, "looking for hospitals") ||
				strings.Contains(input, "find hospitals")
		},
		reply: "okay what is your budget?",
	},
	{
		matches: func(input string) bool {
			if strings.Contains(input, "my budget is around") || strings.Contains(input, "budget is around") {
				return true
			}
			return strings.Contains(input, "budget") &&
				(strings.Contains(input, "100000") || strings.Contains(input, "500000") || strings.Contains(input, "1000000"))
		},
		reply: "okay here are the Hospitals\n\n1. Apollo Hospital\n\n2. Divine Hospital",
	},
}

var chatFallbacks = []string{
	"Thank you for your message. I'm here to help you with your medical queries.",
	"I understand your concern. Let me help you find the best solution.",
	"That's a great question! Based on your profile, I can suggest some options.",
	"I'm processing your request. Please give me a moment to provide you with the best assistance.",
}

// ChatHandler is the scripted bid assistant. Conversations live in memory
// only, keyed by the session email; there is no backend behind it.
type ChatHandler struct {
	mu            sync.Mutex
	conversations map[string][]models.ChatMessage
}

func NewChatHandler() *ChatHandler {
	return &ChatHandler{
		conversations: make(map[string][]models.ChatMessage),
	}
}

func (h *ChatHandler) GetMessages(c *gin.Context) {
	email, _ := c.Get("email")

	h.mu.Lock()
	messages := append([]models.ChatMessage(nil), h.conversation(email.(string))...)
	h.mu.Unlock()

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    messages,
	})
}

// SendMessage appends the user message and exactly one bot reply chosen by
// the rule table, falling back to a random generic response.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	email, _ := c.Get("email")

	var req models.SendChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Message text is required",
		})
		return
	}

	userMessage := models.ChatMessage{
		ID:        uuid.New().String(),
		Text:      req.Text,
		Sender:    models.ChatSenderUser,
		Timestamp: time.Now(),
	}

	botMessage := models.ChatMessage{
		ID:        uuid.New().String(),
		Text:      replyFor(req.Text),
		Sender:    models.ChatSenderBot,
		Timestamp: time.Now(),
	}

	h.mu.Lock()
	log := h.conversation(email.(string))
	log = append(log, userMessage, botMessage)
	h.conversations[email.(string)] = log
	h.mu.Unlock()

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data: models.ChatReply{
			UserMessage: userMessage,
			BotMessage:  botMessage,
		},
	})
}

// ResetConversation drops the log back to the seeded welcome message, the
// same as a page reload.
func (h *ChatHandler) ResetConversation(c *gin.Context) {
	email, _ := c.Get("email")

	h.mu.Lock()
	delete(h.conversations, email.(string))
	h.mu.Unlock()

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Conversation reset",
	})
}

// conversation returns the caller's log, seeding it on first use. Callers
// must hold h.mu.
func (h *ChatHandler) conversation(email string) []models.ChatMessage {
	log, ok := h.conversations[email]
	if !ok {
		log = []models.ChatMessage{{
			ID:        uuid.New().String(),
			Text:      chatWelcome,
			Sender:    models.ChatSenderBot,
			Timestamp: time.Now(),
		}}
		h.conversations[email] = log
	}
	return log
}

func replyFor(text string) string {
	input := strings.ToLower(strings.TrimSpace(text))
	for _, rule := range chatRules {
		if rule.matches(input) {
			return rule.reply
		}
	}
	return chatFallbacks[rand.Intn(len(chatFallbacks))]
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aarushinuvoai/Bid-For-Cure/models"
)

func newChatRouter(handler *ChatHandler) *gin.Engine {
	router := gin.New()
	router.Use(sessionStub("pat@example.com", RolePatient))
	router.GET("/chat/messages", handler.GetMessages)
	router.POST("/chat/messages", handler.SendMessage)
	router.DELETE("/chat/messages", handler.ResetConversation)
	return router
}

func sendChat(t *testing.T, router *gin.Engine, text string) models.ChatReply {
	t.Helper()
	body, _ := json.Marshal(models.SendChatRequest{Text: text})
	req := httptest.NewRequest("POST", "/chat/messages", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeResponse(t, w)
	data, _ := json.Marshal(resp.Data)
	var reply models.ChatReply
	if err := json.Unmarshal(data, &reply); err != nil {
		t.Fatalf("failed to decode chat reply: %v", err)
	}
	return reply
}

func getChatLog(t *testing.T, router *gin.Engine) []models.ChatMessage {
	t.Helper()
	req := httptest.NewRequest("GET", "/chat/messages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := decodeResponse(t, w)
	data, _ := json.Marshal(resp.Data)
	var messages []models.ChatMessage
	json.Unmarshal(data, &messages)
	return messages
}

func TestChatSeedsWelcomeMessage(t *testing.T) {
	router := newChatRouter(NewChatHandler())

	messages := getChatLog(t, router)
	if len(messages) != 1 {
		t.Fatalf("expected seeded conversation of 1 message, got %d", len(messages))
	}
	if messages[0].Sender != models.ChatSenderBot || messages[0].Text != chatWelcome {
		t.Errorf("unexpected seed message: %+v", messages[0])
	}
}

func TestChatHospitalSearchRule(t *testing.T) {
	router := newChatRouter(NewChatHandler())

	reply := sendChat(t, router, "I am Looking For Hospitals in my area")
	if reply.BotMessage.Text != "okay what is your budget?" {
		t.Errorf("unexpected reply %q", reply.BotMessage.Text)
	}
}

func TestChatBudgetRule(t *testing.T) {
	router := newChatRouter(NewChatHandler())

	reply := sendChat(t, router, "my budget is around 500000")
	if !strings.Contains(reply.BotMessage.Text, "Apollo Hospital") ||
		!strings.Contains(reply.BotMessage.Text, "Divine Hospital") {
		t.Errorf("budget reply should list both hospitals, got %q", reply.BotMessage.Text)
	}
}

func TestChatFallbackIsFromFixedSet(t *testing.T) {
	router := newChatRouter(NewChatHandler())

	for i := 0; i < 10; i++ {
		reply := sendChat(t, router, "hello there")
		found := false
		for _, fallback := range chatFallbacks {
			if reply.BotMessage.Text == fallback {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("fallback reply %q is not in the fixed set", reply.BotMessage.Text)
		}
	}
}

func TestChatAppendsInOrder(t *testing.T) {
	router := newChatRouter(NewChatHandler())

	sendChat(t, router, "find hospitals")
	sendChat(t, router, "anything else")

	messages := getChatLog(t, router)
	if len(messages) != 5 {
		t.Fatalf("expected welcome + 2 exchanges = 5 messages, got %d", len(messages))
	}
	wantSenders := []string{
		models.ChatSenderBot,
		models.ChatSenderUser, models.ChatSenderBot,
		models.ChatSenderUser, models.ChatSenderBot,
	}
	for i, want := range wantSenders {
		if messages[i].Sender != want {
			t.Errorf("message %d sender = %q, want %q", i, messages[i].Sender, want)
		}
	}
}

func TestChatReset(t *testing.T) {
	router := newChatRouter(NewChatHandler())

	sendChat(t, router, "find hospitals")

	req := httptest.NewRequest("DELETE", "/chat/messages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	messages := getChatLog(t, router)
	if len(messages) != 1 || messages[0].Text != chatWelcome {
		t.Fatalf("expected conversation reset to seed, got %d messages", len(messages))
	}
}

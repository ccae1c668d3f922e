package models

import "time"

const (
	ChatSenderUser = "user"
	ChatSenderBot  = "bot"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

type SendChatRequest struct {
	Text string `json:"text" binding:"required"`
}

type ChatReply struct {
	UserMessage ChatMessage `json:"user_message"`
	BotMessage  ChatMessage `json:"bot_message"`
}

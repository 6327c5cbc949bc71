package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"

	"github.com/tripline/tripline-backend/logger"
)

const nonTextReply = "你傳的不是文字呦～"

// MessagingAPI is the reply surface of the LINE messaging client.
type MessagingAPI interface {
	ReplyMessage(request *messaging_api.ReplyMessageRequest) (*messaging_api.ReplyMessageResponse, error)
}

// WebhookHandler receives LINE platform callbacks and echoes text
// messages back to the sender.
type WebhookHandler struct {
	bot           MessagingAPI
	channelSecret string
}

func NewWebhookHandler(bot MessagingAPI, channelSecret string) *WebhookHandler {
	return &WebhookHandler{bot: bot, channelSecret: channelSecret}
}

// Index answers the liveness probe the platform console pings.
func (h *WebhookHandler) Index(c *gin.Context) {
	c.String(http.StatusOK, "Line Bot Server is running!")
}

// HandleWebhook verifies the callback signature and replies to each
// message event. It always answers 200 so the platform never marks the
// endpoint as failing; processing errors are only logged.
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	log := logger.GetLogger()

	cb, err := webhook.ParseRequest(h.channelSecret, c.Request)
	if err != nil {
		log.Errorw("Failed to parse webhook request", "error", err)
		c.String(http.StatusOK, "OK")
		return
	}

	for _, event := range cb.Events {
		messageEvent, ok := event.(webhook.MessageEvent)
		if !ok {
			continue
		}

		reply := nonTextReply
		if text, ok := messageEvent.Message.(webhook.TextMessageContent); ok {
			reply = text.Text
		}

		_, err := h.bot.ReplyMessage(&messaging_api.ReplyMessageRequest{
			ReplyToken: messageEvent.ReplyToken,
			Messages: []messaging_api.MessageInterface{
				messaging_api.TextMessage{Text: reply},
			},
		})
		if err != nil {
			log.Errorw("Failed to reply to message", "error", err)
		}
	}

	c.String(http.StatusOK, "OK")
}

package chatControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/format"
	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
)

const (
	maxPromptProducts = 20
	gatewayModel      = "gpt-4o-mini"
)

type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1"`
	Mode     string        `json:"mode"` // "assistant" (default) or "stylist"
}

// getGatewayConfig reads the chat gateway endpoint and key from the environment.
func getGatewayConfig() (apiURL, apiKey string, err error) {
	apiURL = os.Getenv("AI_GATEWAY_URL")
	apiKey = os.Getenv("AI_GATEWAY_KEY")
	if apiURL == "" || apiKey == "" {
		return "", "", fmt.Errorf("ai gateway configuration missing")
	}
	return apiURL, apiKey, nil
}

// buildSystemPrompt grounds the assistant in the live catalog. Only a bounded
// slice of recent products goes into the prompt.
func buildSystemPrompt(db *gorm.DB, mode string) string {
	var products []models.Product
	db.Preload("Category").
		Order("created_at DESC").
		Limit(maxPromptProducts).
		Find(&products)

	var b strings.Builder
	if mode == "stylist" {
		b.WriteString("You are an interior stylist for a furniture store. Suggest pieces and combinations from the catalog below. Keep answers short and concrete.\n\n")
	} else {
		b.WriteString("You are a helpful shopping assistant for a furniture store. Answer questions about the catalog below. If a product is not listed, say so.\n\n")
	}
	b.WriteString("Catalog:\n")
	for _, p := range products {
		fmt.Fprintf(&b, "- %s (%s): %s, %s, in stock: %v\n",
			p.Name, p.Category.Name, format.Price(p.Price), p.Material, p.InStock)
	}
	return b.String()
}

// StreamChat proxies the conversation to an OpenAI-compatible gateway and
// relays the event stream to the client as it arrives.
//
// POST /functions/chat
func StreamChat(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		messages := make([]ChatMessage, 0, len(req.Messages)+1)
		messages = append(messages, ChatMessage{Role: "system", Content: buildSystemPrompt(db, req.Mode)})
		messages = append(messages, req.Messages...)

		relayChat(c, messages)
	}
}

// relayChat forwards the prepared conversation to the gateway. Rate-limit and
// quota failures pass through with their own status so the storefront can
// show the right message; a 200 streams the event-stream body verbatim.
func relayChat(c *gin.Context, messages []ChatMessage) {
	apiURL, apiKey, err := getGatewayConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"model":    gatewayModel,
		"messages": messages,
		"stream":   true,
	})

	upstreamReq, err := http.NewRequestWithContext(c.Request.Context(), "POST", apiURL, bytes.NewBuffer(payload))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build gateway request"})
		return
	}
	upstreamReq.Header.Set("Content-Type", "application/json")
	upstreamReq.Header.Set("Accept", "text/event-stream")
	upstreamReq.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{Timeout: 120 * time.Second}
	resp, err := client.Do(upstreamReq)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reach chat gateway"})
		return
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Please try again shortly."})
		return
	case http.StatusPaymentRequired:
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Chat quota exhausted."})
		return
	default:
		body, _ := io.ReadAll(resp.Body)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("chat gateway error (%d): %s", resp.StatusCode, string(body))})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	buf := make([]byte, 4096)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := c.Writer.Write(buf[:n]); werr != nil {
				return
			}
			flusher.Flush()
		}
		if err != nil {
			return
		}
	}
}

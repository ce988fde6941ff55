package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"rental-chat-service/internal/services"

	"github.com/gin-gonic/gin"
)

const interceptorTimeout = 15 * time.Second

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// MessageInterceptor inspects successful responses of the create-message route
// and hands anything shaped like a message to the notifier. The response itself
// is never altered or delayed.
func MessageInterceptor(notifier services.MessageNotifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		w := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w

		c.Next()

		status := w.Status()
		if status < 200 || status >= 300 {
			return
		}
		if !strings.Contains(w.Header().Get("Content-Type"), "application/json") {
			return
		}

		ev, ok := ExtractMessageEvent(w.body.Bytes())
		if !ok {
			return
		}
		ev.Source = "http"

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), interceptorTimeout)
			defer cancel()
			notifier.NotifyMessage(ctx, ev)
		}()
	}
}

// ExtractMessageEvent reads a created message from a JSON body. Ids may be plain
// strings or populated objects carrying "id" or "_id"; the message may also be
// wrapped in "data" or "message".
func ExtractMessageEvent(body []byte) (services.MessageEvent, bool) {
	var doc map[string]interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		slog.Debug("Interceptor ignored non-object body", "error", err)
		return services.MessageEvent{}, false
	}

	for _, wrapper := range []string{"data", "message"} {
		if inner, ok := doc[wrapper].(map[string]interface{}); ok {
			doc = inner
			break
		}
	}

	ev := services.MessageEvent{
		MessageID:  firstID(doc, "id", "_id", "messageId"),
		SenderID:   firstID(doc, "senderId", "sender"),
		ReceiverID: firstID(doc, "receiverId", "receiver"),
		CarID:      firstID(doc, "carId", "car"),
	}
	if ev.SenderID == "" || ev.ReceiverID == "" || ev.CarID == "" {
		return services.MessageEvent{}, false
	}

	if content, ok := doc["content"].(string); ok {
		ev.Content = content
	} else if text, ok := doc["text"].(string); ok {
		ev.Content = text
	}
	if images, ok := doc["images"].([]interface{}); ok {
		for _, img := range images {
			if s, ok := img.(string); ok && s != "" {
				ev.Images = append(ev.Images, s)
			}
		}
	}
	return ev, true
}

func firstID(doc map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if id := idOf(doc[key]); id != "" {
			return id
		}
	}
	return ""
}

func idOf(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]interface{}:
		if id, ok := val["id"].(string); ok && id != "" {
			return id
		}
		if id, ok := val["_id"].(string); ok {
			return id
		}
		// Extended JSON: {"_id": {"$oid": "..."}}
		if oid, ok := val["_id"].(map[string]interface{}); ok {
			if s, ok := oid["$oid"].(string); ok {
				return s
			}
		}
		if s, ok := val["$oid"].(string); ok {
			return s
		}
	}
	return ""
}

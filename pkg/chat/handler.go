package chat

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"investormatch/pkg/response"
)

// Handler exposes the message log over REST and a live WebSocket feed.
type Handler struct {
	manager *ConnectionManager
	logger  interface {
		Printf(string, ...interface{})
	}
	store MessageStore // optional; nil means the log collaborator is down
}

func NewHandler(manager *ConnectionManager) *Handler {
	return &Handler{
		manager: manager,
		logger:  log.New(log.Writer(), "[chat] ", log.LstdFlags),
	}
}

// SetStore injects the message store for persistence.
func (h *Handler) SetStore(s MessageStore) {
	h.store = s
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/messages", h.getMessages)
	router.POST("/api/messages/send", h.sendMessage)
	router.GET("/ws/messages", h.handleWebSocket)
}

type sendMessageRequest struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// In production, validate origin properly
		return true
	},
}

// @Summary      Message log
// @Description  Returns every message sorted by timestamp ascending
// @Tags         messages
// @Produce      json
// @Success      200  {object}  map[string]any "Messages"
// @Failure      500  {object}  response.ErrorResponse "Message store unavailable"
// @Router       /api/messages [get]
func (h *Handler) getMessages(c *gin.Context) {
	if h.store == nil {
		response.SendError(c, http.StatusInternalServerError, "message store is unavailable")
		return
	}

	messages, err := h.store.List(c.Request.Context())
	if err != nil {
		h.logger.Printf("list messages failed: %v", err)
		response.SendError(c, http.StatusInternalServerError, "failed to load messages")
		return
	}

	response.SendOK(c, http.StatusOK, gin.H{
		"messages": messages,
		"count":    len(messages),
	})
}

// @Summary      Send a message
// @Description  Appends a message to the log; the server assigns the timestamp
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        request body sendMessageRequest true "Message"
// @Success      200  {object}  map[string]any "Stored message"
// @Failure      400  {object}  response.ErrorResponse "Missing required fields"
// @Failure      500  {object}  response.ErrorResponse "Message store unavailable"
// @Router       /api/messages/send [post]
func (h *Handler) sendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	var missing []string
	if strings.TrimSpace(req.Sender) == "" {
		missing = append(missing, "sender")
	}
	if strings.TrimSpace(req.Content) == "" {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		response.SendError(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	if h.store == nil {
		response.SendError(c, http.StatusInternalServerError, "message store is unavailable")
		return
	}

	msg := Message{
		ID:        uuid.New().String(),
		Sender:    req.Sender,
		Content:   req.Content,
		Timestamp: time.Now().UTC(),
	}

	if err := h.store.Append(c.Request.Context(), msg); err != nil {
		h.logger.Printf("append message failed: %v", err)
		response.SendError(c, http.StatusInternalServerError, "failed to store message")
		return
	}

	h.manager.Broadcast(msg)

	response.SendOK(c, http.StatusOK, gin.H{"message": msg})
}

// handleWebSocket upgrades the connection and streams newly appended
// messages until the client goes away.
func (h *Handler) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Printf("websocket upgrade error: %v", err)
		return
	}

	client := h.manager.AddClient(uuid.New().String(), conn)
	h.logger.Printf("subscriber %s connected", client.ID)

	go h.readLoop(client)
	go h.writeLoop(client)
}

// readLoop drains the connection so pong frames are processed and a close
// from the peer is noticed. Inbound data frames are ignored; the log is
// written through the REST endpoint.
func (h *Handler) readLoop(client *Client) {
	defer func() {
		h.manager.RemoveClient(client.ID)
		client.Conn.Close()
		h.logger.Printf("subscriber %s disconnected", client.ID)
	}()

	client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		select {
		case <-client.Done:
			return
		default:
		}

		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Printf("websocket error for subscriber %s: %v", client.ID, err)
			}
			return
		}
	}
}

// writeLoop pushes broadcast messages and keepalive pings to the client.
func (h *Handler) writeLoop(client *Client) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-client.Done:
			return

		case msg, ok := <-client.Send:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.Conn.WriteJSON(msg); err != nil {
				h.logger.Printf("write error for subscriber %s: %v", client.ID, err)
				return
			}

		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.logger.Printf("ping error for subscriber %s: %v", client.ID, err)
				return
			}
		}
	}
}

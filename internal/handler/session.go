package handler

import (
	"net/http"
	"time"

	"tzlon-api/internal/conversion"
	"tzlon-api/internal/models"
	"tzlon-api/internal/selection"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Views queued for a slow websocket client before older ones are dropped.
	viewBuffer = 8
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SessionHandler handles selection sessions shared by the map, slider and form views
type SessionHandler struct {
	store SessionStore
}

// Store interface for dependency injection
type SessionStore interface {
	Create() (string, *selection.Selection)
	Get(id string) (*selection.Selection, bool)
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(store SessionStore) *SessionHandler {
	return &SessionHandler{store: store}
}

type degreesRequest struct {
	Longitude *float64 `json:"longitude" binding:"required"`
}

type hoursRequest struct {
	Hours *float64 `json:"hours" binding:"required"`
}

type mapClickRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// Create handles POST /sessions requests
//
//	@Summary	Start a selection session
//	@Success	201	{object}	map[string]interface{}
//	@Router		/sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	id, sel := h.store.Create()
	c.JSON(http.StatusCreated, gin.H{"id": id, "view": sel.View()})
}

// Get handles GET /sessions/:id requests
//
//	@Summary	Current selection of a session
//	@Param		id	path		string	true	"session id"
//	@Success	200	{object}	selection.View
//	@Failure	404	{object}	map[string]string
//	@Router		/sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	sel, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sel.View())
}

// SetDegrees handles PUT /sessions/:id/degrees requests
func (h *SessionHandler) SetDegrees(c *gin.Context) {
	var req degreesRequest
	if !bindJSON(c, &req) {
		return
	}
	if sel, ok := h.lookup(c); ok {
		c.JSON(http.StatusOK, sel.SetFromDegrees(*req.Longitude))
	}
}

// SetHours handles PUT /sessions/:id/hours requests
func (h *SessionHandler) SetHours(c *gin.Context) {
	var req hoursRequest
	if !bindJSON(c, &req) {
		return
	}
	if sel, ok := h.lookup(c); ok {
		c.JSON(http.StatusOK, sel.SetFromHours(*req.Hours))
	}
}

// SetMapClick handles PUT /sessions/:id/map-click requests
func (h *SessionHandler) SetMapClick(c *gin.Context) {
	var req mapClickRequest
	if !bindJSON(c, &req) {
		return
	}
	if sel, ok := h.lookup(c); ok {
		c.JSON(http.StatusOK, sel.SetFromMapClick(*req.Latitude, *req.Longitude))
	}
}

// SetDMS handles PUT /sessions/:id/dms requests
func (h *SessionHandler) SetDMS(c *gin.Context) {
	var req models.LongitudeInput
	if !bindJSON(c, &req) {
		return
	}
	dms := conversion.DMS{Sign: req.Direction.Sign(), Degrees: req.Degrees, Minutes: req.Minutes, Seconds: req.Seconds}
	if err := dms.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if sel, ok := h.lookup(c); ok {
		c.JSON(http.StatusOK, sel.SetFromDMS(dms))
	}
}

// SetHMS handles PUT /sessions/:id/hms requests
func (h *SessionHandler) SetHMS(c *gin.Context) {
	var req models.TimezoneInput
	if !bindJSON(c, &req) {
		return
	}
	hms := conversion.HMS{Sign: req.Sign, Hours: req.Hours, Minutes: req.Minutes, Seconds: req.Seconds}
	if err := hms.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if sel, ok := h.lookup(c); ok {
		c.JSON(http.StatusOK, sel.SetFromHMS(hms))
	}
}

// Watch handles GET /sessions/:id/ws requests. The current view is sent on
// connect, then one message per update until either side goes away.
func (h *SessionHandler) Watch(c *gin.Context) {
	sel, ok := h.lookup(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	views := make(chan selection.View, viewBuffer)
	cancel := sel.Subscribe(func(v selection.View) {
		for {
			select {
			case views <- v:
				return
			default:
			}
			// Drop the oldest queued view; every view is a full snapshot.
			select {
			case <-views:
			default:
			}
		}
	})
	defer cancel()

	// The read loop only exists to process control frames and notice the
	// client going away.
	gone := make(chan struct{})
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	if err := writeView(conn, sel.View()); err != nil {
		return
	}
	for {
		select {
		case v := <-views:
			if err := writeView(conn, v); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-sel.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "session expired"),
				time.Now().Add(writeWait))
			return
		case <-gone:
			return
		}
	}
}

func writeView(conn *websocket.Conn, v selection.View) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}

func (h *SessionHandler) lookup(c *gin.Context) (*selection.Selection, bool) {
	sel, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return sel, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

package notifications

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/romana/rlog"

	"restaurant-api/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers send the frontend origin; same-host tools send none.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clientMessage is the only inbound frame the server understands.
type clientMessage struct {
	Event string `json:"event"`
}

// ServeWS upgrades the request to a websocket session on the hub.
// Sessions may ask to join the admins group; the request is honored
// only for ADMIN-role callers, everyone else stays subscribed to
// nothing and simply idles.
func ServeWS(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			rlog.Warnf("websocket upgrade failed: %v", err)
			return
		}

		id := uuid.NewString()
		session := hub.Register(id)
		isAdmin := c.GetString("role") == string(models.RoleAdmin)
		rlog.Infof("websocket session %s connected (admin=%v)", id, isAdmin)

		go writePump(conn, session)
		readPump(conn, hub, id, isAdmin)
	}
}

// readPump consumes inbound frames until the peer goes away, then
// tears the session down. Unregistering closes the send channel, which
// in turn ends the write pump.
func readPump(conn *websocket.Conn, hub *Hub, id string, isAdmin bool) {
	defer func() {
		hub.Unregister(id)
		conn.Close()
		rlog.Infof("websocket session %s disconnected", id)
	}()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				rlog.Debugf("websocket session %s read error: %v", id, err)
			}
			return
		}
		if msg.Event == "join-admin" && isAdmin {
			hub.Join(id, GroupAdmins)
			rlog.Infof("session %s joined the admins group", id)
		}
	}
}

func writePump(conn *websocket.Conn, session *Session) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case ev, ok := <-session.Events():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Memory Matching Game
//
// Two players share a board of face-down card pairs and take turns
// revealing two cards at a time. The server is authoritative: it owns the
// shuffled board, whose turn it is, the pending flip pair, and the scores.
// Clients only forward flip intents and render whatever the server
// broadcasts.
//
// Features:
// - WebSockets per game ID: /memory/:gameid and /memory/:gameid/ws
// - First connection takes seat 1, second takes seat 2, later ones are refused
// - The first client to upload a deck seeds the doubled, shuffled board
// - Matched pairs stay revealed and score a point; the matcher keeps the turn
// - Mismatched pairs stay revealed for a configurable delay, then the turn passes
// - Winner announced once every pair is found (ties go to seat 2)
// - Restart reshuffles the same deck and zeroes scores, from any state
// - Players identified by cookie (playerID)
// - Sessions created on first join, destroyed when the last player leaves
// - Idle sessions auto-reaped after a configurable timeout
// - Random 8-char game IDs via crypto/rand, with server-side collision check
// - In-browser QR button to share the current session, backed by go-qrcode

package main

import (
	"crypto/rand"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

// Game phases, as broadcast to clients.
const (
	phaseAwaitingDeck = "awaiting_deck"
	phaseReady        = "ready"
	phaseLocked       = "locked"
	phaseFinished     = "finished"
)

// Reject codes sent with error messages. Rejections are unicast to the
// offending client and never change session state.
const (
	rejectInvalidDeck     = "invalid_deck"
	rejectInvalidPhase    = "invalid_phase"
	rejectNotYourTurn     = "not_your_turn"
	rejectInvalidIndex    = "invalid_index"
	rejectAlreadyRevealed = "already_revealed"
)

// Messages coming from clients
type ClientMessage struct {
	Type  string `json:"type"`            // "initialize_deck", "flip", "restart"
	Cards []Card `json:"cards,omitempty"` // initialize_deck
	Index *int   `json:"index,omitempty"` // flip
}

// SeatMessage is unicast to a joining client with its assigned seat.
type SeatMessage struct {
	Type string `json:"type"` // "seat_assigned"
	Seat int    `json:"seat"`
}

// StateMessage is the full snapshot broadcast on every structural state
// change. It is sufficient for a stateless renderer to redraw the board.
// Card identities are included up front; face-down rendering is purely
// client-side.
type StateMessage struct {
	Type        string      `json:"type"`  // "game_state"
	Phase       string      `json:"phase"` // awaiting_deck, ready, locked, finished
	Board       []Card      `json:"board"`
	FaceUp      []int       `json:"face_up"`
	Scores      map[int]int `json:"scores"`
	CurrentSeat int         `json:"current_seat"`
}

// FlipRevealedMessage announces an accepted flip immediately, before (and
// independent of) pair resolution.
type FlipRevealedMessage struct {
	Type  string `json:"type"` // "flip_revealed"
	Seat  int    `json:"seat"`
	Index int    `json:"index"`
}

// MatchResultMessage announces the outcome of a completed pair.
type MatchResultMessage struct {
	Type     string      `json:"type"` // "match_result"
	Match    bool        `json:"match"`
	First    int         `json:"first"`
	Second   int         `json:"second"`
	Scores   map[int]int `json:"scores"`
	NextSeat int         `json:"next_seat"`
}

// WinnerMessage announces the end of the game.
type WinnerMessage struct {
	Type   string      `json:"type"` // "winner"
	Seat   int         `json:"seat"`
	Scores map[int]int `json:"scores"`
}

// PlayerLeftMessage informs remaining clients that a seat was freed.
type PlayerLeftMessage struct {
	Type string `json:"type"` // "player_left"
	Seat int    `json:"seat"`
}

// SimpleMessage is for generic notifications ("game_full", etc.)
type SimpleMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ErrorMessage is unicast when a request is rejected.
type ErrorMessage struct {
	Type    string `json:"type"` // "error"
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Client struct {
	conn     *websocket.Conn
	send     chan any
	playerID string
	seat     int // 0 until a seat is assigned
}

type clientCommand struct {
	client *Client
	msg    ClientMessage
}

// Hub is one game session: the authoritative state machine plus its
// connected clients. All transitions run on the hub goroutine or under
// h.mu, so no two flips for the same session are ever processed
// concurrently.
type Hub struct {
	id      string
	clients map[*Client]bool
	seats   map[int]*Client

	register chan *Client
	unreg    chan *Client
	cmds     chan clientCommand

	mu sync.RWMutex

	createdAt  time.Time
	lastActive time.Time

	phase       string
	board       []Card
	faceUp      map[int]bool
	pending     []int
	scores      map[int]int
	currentSeat int

	flipTimer *time.Timer
	closed    bool
	onEmpty   func()
}

func newHub(gameID string) *Hub {
	now := time.Now()
	return &Hub{
		id:          gameID,
		clients:     make(map[*Client]bool),
		seats:       make(map[int]*Client),
		register:    make(chan *Client),
		unreg:       make(chan *Client),
		cmds:        make(chan clientCommand),
		createdAt:   now,
		lastActive:  now,
		phase:       phaseAwaitingDeck,
		faceUp:      make(map[int]bool),
		scores:      map[int]int{1: 0, 2: 0},
		currentSeat: 1,
	}
}

func (h *Hub) run(cfg *Config) {
	for {
		select {
		case c := <-h.register:
			h.handleRegister(cfg, c)

		case c := <-h.unreg:
			h.handleUnregister(cfg, c)

		case cmd := <-h.cmds:
			switch cmd.msg.Type {
			case "initialize_deck":
				h.handleInitializeDeck(cfg, cmd)
			case "flip":
				h.handleFlip(cfg, cmd)
			case "restart":
				h.handleRestart(cfg, cmd)
			}
		}
	}
}

func otherSeat(seat int) int {
	if seat == 1 {
		return 2
	}
	return 1
}

// sendLocked queues a message for one client, dropping the client if its
// send buffer is full. Assumes h.mu is held.
func (h *Hub) sendLocked(c *Client, msg any) {
	select {
	case c.send <- msg:
	default:
		h.dropLocked(c)
	}
}

// broadcastLocked queues a message for every connected client. Assumes
// h.mu is held.
func (h *Hub) broadcastLocked(msg any) {
	for client := range h.clients {
		h.sendLocked(client, msg)
	}
}

func (h *Hub) dropLocked(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	if c.seat != 0 && h.seats[c.seat] == c {
		delete(h.seats, c.seat)
	}
}

// snapshotLocked builds the stateless-renderer snapshot. Pending flips are
// face-up on screen, so they are included alongside resolved pairs.
func (h *Hub) snapshotLocked() StateMessage {
	faceUp := make([]int, 0, len(h.faceUp)+len(h.pending))
	for i := range h.faceUp {
		faceUp = append(faceUp, i)
	}
	faceUp = append(faceUp, h.pending...)
	sort.Ints(faceUp)

	scores := map[int]int{1: h.scores[1], 2: h.scores[2]}

	board := make([]Card, len(h.board))
	copy(board, h.board)

	return StateMessage{
		Type:        "game_state",
		Phase:       h.phase,
		Board:       board,
		FaceUp:      faceUp,
		Scores:      scores,
		CurrentSeat: h.currentSeat,
	}
}

func (h *Hub) scoresCopyLocked() map[int]int {
	return map[int]int{1: h.scores[1], 2: h.scores[2]}
}

func (h *Hub) stopFlipTimerLocked() {
	if h.flipTimer != nil {
		h.flipTimer.Stop()
		h.flipTimer = nil
	}
}

// handleRegister assigns the next free seat (1 then 2) to a new
// connection, or refuses it when both seats are taken.
func (h *Hub) handleRegister(cfg *Config, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	seat := 0
	switch {
	case h.seats[1] == nil:
		seat = 1
	case h.seats[2] == nil:
		seat = 2
	}

	if seat == 0 || h.closed {
		// Third connection (or a race with teardown): refuse without
		// touching session state. Closing the send channel lets the write
		// pump flush the notice and hang up.
		c.send <- SimpleMessage{
			Type:    "game_full",
			Message: "This game already has two players.",
		}
		close(c.send)
		return
	}

	c.seat = seat
	h.seats[seat] = c
	h.clients[c] = true

	logf(cfg, "GAMES: Player %q took seat %d in %s", c.playerID, seat, h.id)

	h.sendLocked(c, SeatMessage{
		Type: "seat_assigned",
		Seat: seat,
	})

	// Every joiner gets a snapshot so it can render immediately; once the
	// second seat fills, the whole room is brought up to date (covers a
	// late joiner catching up to an in-progress board).
	if seat == 2 {
		h.broadcastLocked(h.snapshotLocked())
	} else {
		h.sendLocked(c, h.snapshotLocked())
	}
}

// handleUnregister frees the departing client's seat and destroys the
// session once the room is empty.
func (h *Hub) handleUnregister(cfg *Config, c *Client) {
	h.mu.Lock()

	h.lastActive = time.Now()

	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}

	delete(h.clients, c)
	close(c.send)

	seat := c.seat
	if seat != 0 && h.seats[seat] == c {
		delete(h.seats, seat)
	}

	if seat != 0 {
		logf(cfg, "GAMES: Player %q left seat %d in %s", c.playerID, seat, h.id)
		h.broadcastLocked(PlayerLeftMessage{
			Type: "player_left",
			Seat: seat,
		})
	}

	if len(h.clients) == 0 {
		h.closed = true
		h.stopFlipTimerLocked()
		onEmpty := h.onEmpty
		h.mu.Unlock()

		if onEmpty != nil {
			onEmpty()
		}
		logf(cfg, "GAMES: Ended empty game %s", h.id)
		return
	}

	h.mu.Unlock()
}

// handleInitializeDeck seeds the board from a client-supplied deck. Only
// valid before a board exists; the deck itself must be non-empty with
// distinct names.
func (h *Hub) handleInitializeDeck(cfg *Config, cmd clientCommand) {
	c := cmd.client

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	if h.phase != phaseAwaitingDeck {
		h.sendLocked(c, ErrorMessage{
			Type:    "error",
			Code:    rejectInvalidPhase,
			Message: "The board has already been set.",
		})
		return
	}

	board, err := newBoard(cmd.msg.Cards)
	if err != nil {
		h.sendLocked(c, ErrorMessage{
			Type:    "error",
			Code:    rejectInvalidDeck,
			Message: err.Error(),
		})
		return
	}

	h.board = board
	h.faceUp = make(map[int]bool)
	h.pending = nil
	h.scores = map[int]int{1: 0, 2: 0}
	h.currentSeat = 1
	h.phase = phaseReady

	logf(cfg, "GAMES: Board of %d cards set in %s", len(board), h.id)

	h.broadcastLocked(h.snapshotLocked())
}

// handleFlip validates a flip intent from one seat and, on the second
// accepted flip of a turn, resolves the pair.
func (h *Hub) handleFlip(cfg *Config, cmd clientCommand) {
	c := cmd.client

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	if c.seat == 0 {
		return
	}

	if h.phase != phaseReady {
		h.sendLocked(c, ErrorMessage{
			Type:    "error",
			Code:    rejectInvalidPhase,
			Message: "The board is not accepting flips right now.",
		})
		return
	}

	if c.seat != h.currentSeat {
		h.sendLocked(c, ErrorMessage{
			Type:    "error",
			Code:    rejectNotYourTurn,
			Message: "It is not your turn.",
		})
		return
	}

	if cmd.msg.Index == nil || *cmd.msg.Index < 0 || *cmd.msg.Index >= len(h.board) {
		h.sendLocked(c, ErrorMessage{
			Type:    "error",
			Code:    rejectInvalidIndex,
			Message: "That card does not exist.",
		})
		return
	}
	index := *cmd.msg.Index

	// Already-matched cards and the pending card itself (no self-pairing)
	// are both off limits.
	if h.faceUp[index] || (len(h.pending) == 1 && h.pending[0] == index) {
		h.sendLocked(c, ErrorMessage{
			Type:    "error",
			Code:    rejectAlreadyRevealed,
			Message: "That card is already revealed.",
		})
		return
	}

	h.pending = append(h.pending, index)

	h.broadcastLocked(FlipRevealedMessage{
		Type:  "flip_revealed",
		Seat:  c.seat,
		Index: index,
	})

	if len(h.pending) < 2 {
		h.broadcastLocked(h.snapshotLocked())
		return
	}

	first, second := h.pending[0], h.pending[1]

	if h.board[first].Name == h.board[second].Name {
		h.resolveMatchLocked(cfg, first, second)
		return
	}

	// Mismatch: lock the board and let both clients see the pair before
	// the turn visibly passes. The timer callback re-checks the pair so a
	// restart or teardown in the meantime makes it a no-op.
	h.phase = phaseLocked
	h.flipTimer = time.AfterFunc(cfg.flipDelay, func() {
		h.resolveMismatch(cfg, first, second)
	})
	h.broadcastLocked(h.snapshotLocked())
}

// resolveMatchLocked handles a completed matching pair: the indices stay
// revealed, the matcher scores and keeps the turn, and the game ends once
// every pair is found. Assumes h.mu is held.
func (h *Hub) resolveMatchLocked(cfg *Config, first, second int) {
	h.scores[h.currentSeat]++
	h.faceUp[first] = true
	h.faceUp[second] = true
	h.pending = nil

	h.broadcastLocked(MatchResultMessage{
		Type:     "match_result",
		Match:    true,
		First:    first,
		Second:   second,
		Scores:   h.scoresCopyLocked(),
		NextSeat: h.currentSeat,
	})

	totalPairs := len(h.board) / 2
	if h.scores[1]+h.scores[2] < totalPairs {
		h.broadcastLocked(h.snapshotLocked())
		return
	}

	// Ties go to seat 2.
	winner := 2
	if h.scores[1] > h.scores[2] {
		winner = 1
	}
	h.phase = phaseFinished

	logf(cfg, "GAMES: Seat %d won %s (%d-%d)", winner, h.id, h.scores[1], h.scores[2])

	h.broadcastLocked(WinnerMessage{
		Type:   "winner",
		Seat:   winner,
		Scores: h.scoresCopyLocked(),
	})
	h.broadcastLocked(h.snapshotLocked())
}

// resolveMismatch fires after the reveal delay: the pair is re-hidden
// client-side and the turn passes. Safe to call on a dead or restarted
// session.
func (h *Hub) resolveMismatch(cfg *Config, first, second int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed || h.phase != phaseLocked {
		return
	}
	if len(h.pending) != 2 || h.pending[0] != first || h.pending[1] != second {
		return
	}

	h.pending = nil
	h.flipTimer = nil
	h.currentSeat = otherSeat(h.currentSeat)
	h.phase = phaseReady

	h.broadcastLocked(MatchResultMessage{
		Type:     "match_result",
		Match:    false,
		First:    first,
		Second:   second,
		Scores:   h.scoresCopyLocked(),
		NextSeat: h.currentSeat,
	})
	h.broadcastLocked(h.snapshotLocked())
}

// handleRestart resets scores and turn state from any phase. The existing
// deck is kept but reshuffled, so a rematch can't be played from memory.
func (h *Hub) handleRestart(cfg *Config, cmd clientCommand) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	h.stopFlipTimerLocked()
	h.pending = nil
	h.faceUp = make(map[int]bool)
	h.scores = map[int]int{1: 0, 2: 0}
	h.currentSeat = 1

	if len(h.board) > 0 {
		shuffleSlots(h.board)
		h.phase = phaseReady
	} else {
		h.phase = phaseAwaitingDeck
	}

	logf(cfg, "GAMES: Game %s restarted", h.id)

	h.broadcastLocked(h.snapshotLocked())
}

// closeAll disconnects all clients of this hub (used by reaper).
func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	h.stopFlipTimerLocked()

	for c := range h.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(h.clients, c)
	}
	h.seats = make(map[int]*Client)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const playerCookieName = "memorygame_id"

func getOrSetPlayerID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(playerCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		log.Println("rand.Read error:", err)
		return ""
	}
	id := hex.EncodeToString(buf)

	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// GameManager holds a set of hubs keyed by game ID, so each $path/$gameid
// is its own isolated session. Sessions are created on first join and
// removed when the last player leaves or after the idle timeout.
type GameManager struct {
	mu          sync.Mutex
	hubs        map[string]*Hub
	idleTimeout time.Duration
}

func newGameManager(idleTimeout time.Duration) *GameManager {
	gm := &GameManager{
		hubs:        make(map[string]*Hub),
		idleTimeout: idleTimeout,
	}
	if idleTimeout > 0 {
		go gm.reaperLoop()
	}
	return gm
}

func (gm *GameManager) getHub(cfg *Config, gameID string) *Hub {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if hub, ok := gm.hubs[gameID]; ok {
		return hub
	}

	hub := newHub(gameID)
	hub.onEmpty = func() {
		gm.remove(gameID)
	}
	gm.hubs[gameID] = hub
	go hub.run(cfg)
	return hub
}

func (gm *GameManager) lookup(gameID string) (*Hub, bool) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	hub, ok := gm.hubs[gameID]
	return hub, ok
}

func (gm *GameManager) remove(gameID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	delete(gm.hubs, gameID)
}

// newGameID generates a crypto-random game ID and ensures it doesn't
// collide with existing games.
func (gm *GameManager) newGameID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 8)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}
		id := string(out)

		gm.mu.Lock()
		_, exists := gm.hubs[id]
		gm.mu.Unlock()

		if !exists {
			return id
		}
	}
}

// reaperLoop periodically removes hubs that have been idle longer than idleTimeout.
func (gm *GameManager) reaperLoop() {
	ticker := time.NewTicker(gm.idleTimeout / 2)
	for range ticker.C {
		cutoff := time.Now().Add(-gm.idleTimeout)

		gm.mu.Lock()
		for id, hub := range gm.hubs {
			hub.mu.RLock()
			last := hub.lastActive
			hub.mu.RUnlock()

			if last.Before(cutoff) {
				delete(gm.hubs, id)
				go hub.closeAll()
			}
		}
		gm.mu.Unlock()
	}
}

// WebSocket handler that picks the hub based on :gameid
func serveWSForManager(cfg *Config, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if gameID == "" {
			http.Error(w, "missing game id", http.StatusBadRequest)
			return
		}

		playerID := getOrSetPlayerID(w, r)
		if playerID == "" {
			http.Error(w, "unable to assign player id", http.StatusInternalServerError)
			return
		}

		hub := gm.getHub(cfg, gameID)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			conn:     conn,
			send:     make(chan any, 8),
			playerID: playerID,
		}

		hub.register <- client

		go client.writePump()
		client.readPump(hub)
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unreg <- c
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "initialize_deck", "flip", "restart":
			h.cmds <- clientCommand{
				client: c,
				msg:    msg,
			}
		default:
			// ignore unknown types
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// serveGameState exposes the renderer snapshot of a session as JSON.
// Unknown session IDs 404 rather than implicitly creating a session.
func serveGameState(cfg *Config, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")

		hub, ok := gm.lookup(gameID)
		if !ok {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		hub.mu.RLock()
		snapshot := hub.snapshotLocked()
		hub.mu.RUnlock()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		securityHeaders(cfg, w)

		_ = json.NewEncoder(w).Encode(snapshot)
	}
}

// QR handler: generates a PNG QR code for the current game URL using go-qrcode.
func qrHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	gameID := ps.ByName("gameid")
	if gameID == "" {
		http.Error(w, "missing game id", http.StatusBadRequest)
		return
	}

	// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at /.../:gameid/qr; strip trailing "/qr" to get the game URL.
	path := strings.TrimSuffix(r.URL.Path, "/qr")

	url := scheme + "://" + r.Host + path

	const qrSize = 320 // mobile-friendly size
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// ---- Static file paths ----

//go:embed assets/memory/index.html
var indexHTML []byte

func getIndexHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_ = getOrSetPlayerID(w, r)

		_, _ = w.Write(indexHTML)
	}
}

// redirectNewGame handles GET /path by generating a new random game ID
// (with server-side collision detection) and redirecting to /path/:gameid.
func redirectNewGame(cfg *Config, path string, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gameID := gm.newGameID()
		logf(cfg, "GAMES: Created game %s/%s", path, gameID)
		http.Redirect(w, r, cfg.prefix+path+"/"+gameID, http.StatusTemporaryRedirect)
	}
}

// registerMemoryGame sets up routes so that:
//   - $path                  → redirects to new random game (8-char ID)
//   - $path/:gameid          → HTML client
//   - $path/:gameid/ws       → WebSocket for that game
//   - $path/:gameid/qr       → PNG QR code for that game URL
//   - $path/:gameid/state    → JSON snapshot of the session
func registerMemoryGame(cfg *Config, path string, mux *httprouter.Router, errs chan<- error) {
	gm := newGameManager(cfg.sessionTimeout)

	// Root path → redirect to new random game
	mux.GET(cfg.prefix+path, redirectNewGame(cfg, path, gm))

	// Per-game client view (HTML)
	mux.GET(cfg.prefix+path+"/:gameid", getIndexHandler(cfg))

	// Shared assets (no gameid in route)
	mux.GET(cfg.prefix+"/assets/memory/*asset", serveAssets(cfg, errs))

	// Per-game websocket
	mux.GET(cfg.prefix+path+"/:gameid/ws", serveWSForManager(cfg, gm))

	// Per-game QR code
	mux.GET(cfg.prefix+path+"/:gameid/qr", qrHandler)

	// Per-game snapshot
	mux.GET(cfg.prefix+path+"/:gameid/state", serveGameState(cfg, gm))
}

// Package inbox renders the conversation surfaces: the inbox list, the
// chat view with its embedded offer flow, and the send endpoints.
package inbox

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"stytchup/backend"
	"stytchup/middleware"
	"stytchup/models"
	"stytchup/realtime"
	"stytchup/utils"
	"stytchup/web"
)

type Handlers struct {
	Backend       *backend.Client
	Views         *web.Templates
	Hub           *realtime.Hub
	RazorpayKeyID string
}

// conversationRow is the inbox list entry after resolving who the other
// participant is against the authenticated user id.
type conversationRow struct {
	ID        string
	Other     models.ChatUser
	LastText  string
	UpdatedAt time.Time
}

func (h *Handlers) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.FromRequest(r)

	convos, err := h.Backend.Conversations(r.Context(), sess.Token)
	if err != nil {
		log.Println("inbox list:", err)
		convos = nil // degrade to the empty state
	}

	rows := make([]conversationRow, 0, len(convos))
	for _, c := range convos {
		row := conversationRow{
			ID:        c.ID,
			Other:     c.Other(sess.UserID),
			UpdatedAt: c.UpdatedAt,
		}
		if len(c.Messages) > 0 {
			row.LastText = c.Messages[0].Text
		}
		rows = append(rows, row)
	}

	h.Views.Render(w, http.StatusOK, "inbox.html", web.Page{
		Title:   "Messages",
		Session: sess,
		Data:    rows,
	})
}

type conversationView struct {
	ID            string
	MyID          string
	Messages      []models.Message
	RazorpayKeyID string
}

// Conversation renders the chat page. Messages the hub delivered while the
// history fetch was in flight are merged in by id, so a message that raced
// the fetch appears exactly once; from there the page keeps itself current
// over the viewer websocket.
func (h *Handlers) Conversation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := middleware.FromRequest(r)
	id := ps.ByName("id")

	history, err := h.Backend.Messages(r.Context(), sess.Token, id)
	if err != nil {
		log.Println("conversation history:", err)
		history = nil
	}

	h.Views.Render(w, http.StatusOK, "conversation.html", web.Page{
		Title:   "Chat",
		Session: sess,
		Data: conversationView{
			ID:            id,
			MyID:          sess.UserID,
			Messages:      MergeMessages(history, h.liveMessages(id)),
			RazorpayKeyID: h.RazorpayKeyID,
		},
	})
}

// liveMessages decodes whatever the hub still holds for the room.
// Undecodable frames are skipped; they were push-channel noise, not chat.
func (h *Handlers) liveMessages(room string) []models.Message {
	if h.Hub == nil {
		return nil
	}
	var out []models.Message
	for _, raw := range h.Hub.Recent(room) {
		var m models.Message
		if err := json.Unmarshal(raw, &m); err != nil || m.ID == "" {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Create starts (or resumes) a conversation with a designer and lands the
// user in it.
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.FromRequest(r)
	target := r.FormValue("targetUserId")
	if target == "" {
		http.Error(w, "Missing targetUserId", http.StatusBadRequest)
		return
	}

	id, err := h.Backend.CreateConversation(r.Context(), sess.Token, target)
	if err != nil {
		log.Println("create conversation:", err)
		http.Error(w, "Could not start conversation", http.StatusBadGateway)
		return
	}
	http.Redirect(w, r, "/inbox/"+id, http.StatusSeeOther)
}

// SendMessage posts a plain chat message. Whitespace-only input is refused
// before any backend request is made; the echo arrives over the push
// channel, so success returns no body.
func (h *Handlers) SendMessage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := middleware.FromRequest(r)
	id := ps.ByName("id")

	var in struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid body")
		return
	}
	text := strings.TrimSpace(in.Text)
	if text == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "empty message")
		return
	}

	if err := h.Backend.SendMessage(r.Context(), sess.Token, id, text); err != nil {
		log.Println("send message:", err)
		utils.RespondWithError(w, http.StatusBadGateway, "send failed")
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// SendOffer posts an offer message. The price arrives in major units from
// the form and is converted to paise here; malformed prices never reach
// the backend.
func (h *Handlers) SendOffer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := middleware.FromRequest(r)
	id := ps.ByName("id")

	var in struct {
		Title string `json:"title"`
		Price string `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid body")
		return
	}

	title, price, err := parseOffer(in.Title, in.Price)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Backend.SendOffer(r.Context(), sess.Token, id, title, price); err != nil {
		log.Println("send offer:", err)
		utils.RespondWithError(w, http.StatusBadGateway, "send failed")
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// parseOffer validates the two offer fields: a non-empty title and a
// parseable positive price, returned in minor units.
func parseOffer(title, price string) (string, int64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", 0, errors.New("offer title is required")
	}
	minor, err := utils.ParsePriceToMinor(price)
	if err != nil {
		return "", 0, err
	}
	return title, minor, nil
}
